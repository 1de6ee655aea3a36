package card

import (
	"fmt"
	"strings"
)

// Image represents an image shown in a card. The display height of a card's
// hero image is fixed to 192dp, so Height and Width are hints only.
type Image struct {
	URL    string `json:"url" toml:"url"`
	Alt    string `json:"alt" toml:"alt"`
	Height int    `json:"height,omitempty" toml:"height"`
	Width  int    `json:"width,omitempty" toml:"width"`
}

// Link represents a named web link, used as a card button.
type Link struct {
	Name string   `json:"name" toml:"name"`
	Open *OpenURL `json:"open,omitempty" toml:"open"`
}

// URL returns the link target, or "" when none is set.
func (l Link) URL() string {
	if l.Open == nil {
		return ""
	}
	return l.Open.URL
}

// OpenURL is the target of a Link.
type OpenURL struct {
	URL  string  `json:"url" toml:"url"`
	Hint URLHint `json:"hint,omitempty" toml:"hint"`
}

// URLHint tells the surface how to open a link.
type URLHint string

const (
	HintUnspecified URLHint = "LINK_UNSPECIFIED"
	HintAMP         URLHint = "AMP"
)

// ParseURLHint parses a hint name, case-insensitively.
func ParseURLHint(s string) (URLHint, error) {
	switch URLHint(strings.ToUpper(s)) {
	case HintUnspecified:
		return HintUnspecified, nil
	case HintAMP:
		return HintAMP, nil
	}
	return "", fmt.Errorf("unknown url hint: %q", s)
}

// UnmarshalText rejects hints the platform does not know.
func (h *URLHint) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*h = ""
		return nil
	}
	parsed, err := ParseURLHint(string(b))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
