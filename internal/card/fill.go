package card

import (
	"fmt"
	"strings"
)

// ImageFill describes how the background of a card image is filled when the
// image does not match the display area.
type ImageFill int

const (
	FillUnspecified ImageFill = iota
	FillGray                  // gray bars
	FillWhite                 // white bars
	FillCropped               // scaled and cropped to fill the area
)

var fillNames = map[ImageFill]string{
	FillUnspecified: "UNSPECIFIED",
	FillGray:        "GRAY",
	FillWhite:       "WHITE",
	FillCropped:     "CROPPED",
}

func (f ImageFill) String() string {
	if name, ok := fillNames[f]; ok {
		return name
	}
	return fmt.Sprintf("ImageFill(%d)", int(f))
}

// ParseImageFill parses a fill mode name, case-insensitively.
func ParseImageFill(s string) (ImageFill, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for f, name := range fillNames {
		if name == upper {
			return f, nil
		}
	}
	return FillUnspecified, fmt.Errorf("unknown image fill: %q", s)
}

// MarshalText encodes the fill mode by name for both JSON and TOML.
func (f ImageFill) MarshalText() ([]byte, error) {
	name, ok := fillNames[f]
	if !ok {
		return nil, fmt.Errorf("unknown image fill: %d", int(f))
	}
	return []byte(name), nil
}

func (f *ImageFill) UnmarshalText(b []byte) error {
	parsed, err := ParseImageFill(string(b))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
