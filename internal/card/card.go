package card

// Card represents a basic card in an assistant response.
//
// Basic cards present key or summary information and can link out to the web
// through a single button. They have no interaction capabilities without the
// button, and the button needs a surface with the WEB_LINK capability.
//
// Every field is optional. A nil field is absent and is left out of the JSON
// form; an empty string is a value. Text is required by the platform unless
// an image is present, but that is left to the validator.
type Card struct {
	Title     *string    `json:"title,omitempty"`
	Subtitle  *string    `json:"subtitle,omitempty"`
	Text      *string    `json:"text,omitempty"` // limited markdown subset
	Image     *Image     `json:"image,omitempty"`
	ImageFill *ImageFill `json:"imageFill,omitempty"`
	Button    *Link      `json:"button,omitempty"`
}

// Options holds the fields a Card is built from.
type Options struct {
	Title     *string
	Subtitle  *string
	Text      *string
	Image     *Image
	ImageFill *ImageFill
	Button    *Link
}

// New builds a Card from opts. Only the fields set in opts are copied; the
// nested Image and Link are shared with opts, not cloned.
func New(opts Options) Card {
	return Card{
		Title:     opts.Title,
		Subtitle:  opts.Subtitle,
		Text:      opts.Text,
		Image:     opts.Image,
		ImageFill: opts.ImageFill,
		Button:    opts.Button,
	}
}

// HasText reports whether the card carries body text.
func (c Card) HasText() bool {
	return c.Text != nil && *c.Text != ""
}

// HasImage reports whether the card carries a hero image.
func (c Card) HasImage() bool {
	return c.Image != nil
}

// String returns a pointer to s.
func String(s string) *string {
	return &s
}

// Fill returns a pointer to f.
func Fill(f ImageFill) *ImageFill {
	return &f
}
