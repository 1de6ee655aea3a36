package validator

import (
	"fmt"
	"unicode/utf8"

	playground "github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/arcanaland/richcard/internal/card"
	"github.com/arcanaland/richcard/internal/cardfile"
)

// Display limits for card body text. Longer text is truncated on device.
const (
	MaxTextLength          = 750
	MaxTextLengthWithImage = 500
)

// CapabilityWebLink is the surface capability a card button needs.
const CapabilityWebLink = "WEB_LINK"

var validate = playground.New()

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found. Warnings don't count.
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	// Capabilities of the target surface. Nil skips capability checks.
	Capabilities []string
	Results      ValidationResults
}

func NewValidator(capabilities []string) *Validator {
	return &Validator{
		Capabilities: capabilities,
		Results:      ValidationResults{},
	}
}

// Validate checks a card against the platform's rules for basic cards.
func (v *Validator) Validate(c card.Card) ValidationResults {
	v.Results = ValidationResults{}

	v.validateContent(c)
	v.validateText(c)
	v.validateImage(c)
	v.validateButton(c)

	return v.Results
}

// ValidateFile loads a card document and validates its card.
func (v *Validator) ValidateFile(path string) (ValidationResults, error) {
	doc, err := cardfile.Load(path)
	if err != nil {
		return ValidationResults{}, err
	}

	results := v.Validate(doc.BuildCard())
	for _, key := range doc.Undecoded {
		results.Warnings = append(results.Warnings, fmt.Sprintf("unknown key: %s", key))
	}
	v.Results = results
	return results, nil
}

func (v *Validator) errorf(format string, args ...interface{}) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...interface{}) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// validateContent checks the card has something to show. A card without
// text or image is allowed but shows nothing useful.
func (v *Validator) validateContent(c card.Card) {
	if !c.HasText() && !c.HasImage() {
		v.warnf("card has neither text nor image")
	}
}

func (v *Validator) validateText(c card.Card) {
	if c.Text == nil {
		return
	}

	limit := MaxTextLength
	if c.HasImage() {
		limit = MaxTextLengthWithImage
	}
	if n := utf8.RuneCountInString(*c.Text); n > limit {
		v.warnf("text is %d characters long, surfaces show at most %d", n, limit)
	}
}

func (v *Validator) validateImage(c card.Card) {
	if c.Image == nil {
		if c.ImageFill != nil {
			v.warnf("imageFill is set but the card has no image")
		}
		return
	}

	img := c.Image
	if img.URL == "" {
		v.errorf("image.url is required")
	} else if err := validate.Var(img.URL, "url"); err != nil {
		v.errorf("image.url is not a valid URL: %s", img.URL)
	}

	if img.Alt == "" {
		v.errorf("image.alt is required for accessibility")
	}

	if img.Height < 0 {
		v.errorf("image.height must not be negative: %d", img.Height)
	}
	if img.Width < 0 {
		v.errorf("image.width must not be negative: %d", img.Width)
	}
}

func (v *Validator) validateButton(c card.Card) {
	if c.Button == nil {
		return
	}

	if c.Button.Name == "" {
		v.errorf("button.name is required")
	}

	switch u := c.Button.URL(); {
	case u == "":
		v.errorf("button.open.url is required")
	case validate.Var(u, "url") != nil:
		v.errorf("button.open.url is not a valid URL: %s", u)
	}

	if v.Capabilities != nil && !lo.Contains(v.Capabilities, CapabilityWebLink) {
		v.warnf("button requires the %s surface capability", CapabilityWebLink)
	}
}
