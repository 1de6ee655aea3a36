package validator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcanaland/richcard/internal/card"
)

func validImage() *card.Image {
	return &card.Image{URL: "https://example.com/x.png", Alt: "logo"}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		card         card.Card
		capabilities []string
		errors       int
		warnings     []string
	}{
		{
			name:     "empty card only warns",
			card:     card.New(card.Options{}),
			warnings: []string{"card has neither text nor image"},
		},
		{
			name:     "empty text without image warns",
			card:     card.New(card.Options{Text: card.String("")}),
			warnings: []string{"card has neither text nor image"},
		},
		{
			name: "text only",
			card: card.New(card.Options{Text: card.String("hello")}),
		},
		{
			name: "image only",
			card: card.New(card.Options{Image: validImage()}),
		},
		{
			name:   "image without url or alt",
			card:   card.New(card.Options{Image: &card.Image{}}),
			errors: 2,
		},
		{
			name:   "image with bad url and negative size",
			card:   card.New(card.Options{Image: &card.Image{URL: "not a url", Alt: "x", Height: -1, Width: -2}}),
			errors: 3,
		},
		{
			name:     "fill without image",
			card:     card.New(card.Options{Text: card.String("x"), ImageFill: card.Fill(card.FillGray)}),
			warnings: []string{"imageFill is set but the card has no image"},
		},
		{
			name: "button without name or url",
			card: card.New(card.Options{
				Text:   card.String("x"),
				Button: &card.Link{},
			}),
			errors: 2,
		},
		{
			name: "button with bad url",
			card: card.New(card.Options{
				Text:   card.String("x"),
				Button: &card.Link{Name: "Go", Open: &card.OpenURL{URL: "nowhere"}},
			}),
			errors: 1,
		},
		{
			name: "button on surface without web links",
			card: card.New(card.Options{
				Text:   card.String("x"),
				Button: &card.Link{Name: "Go", Open: &card.OpenURL{URL: "https://example.com"}},
			}),
			capabilities: []string{"RICH_RESPONSE"},
			warnings:     []string{"button requires the WEB_LINK surface capability"},
		},
		{
			name: "button on web surface",
			card: card.New(card.Options{
				Text:   card.String("x"),
				Button: &card.Link{Name: "Go", Open: &card.OpenURL{URL: "https://example.com"}},
			}),
			capabilities: []string{"WEB_LINK"},
		},
		{
			name:     "long text",
			card:     card.New(card.Options{Text: card.String(strings.Repeat("a", MaxTextLength+1))}),
			warnings: []string{"text is 751 characters long, surfaces show at most 750"},
		},
		{
			name: "long text with image",
			card: card.New(card.Options{
				Text:  card.String(strings.Repeat("a", MaxTextLengthWithImage+1)),
				Image: validImage(),
			}),
			warnings: []string{"text is 501 characters long, surfaces show at most 500"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := NewValidator(tt.capabilities).Validate(tt.card)
			require.Len(t, results.Errors, tt.errors, results.Errors)
			require.Equal(t, tt.warnings, results.Warnings)
			require.Equal(t, tt.errors == 0, results.Valid())
		})
	}
}

func TestValidate_ResetsBetweenRuns(t *testing.T) {
	v := NewValidator(nil)
	v.Validate(card.New(card.Options{Image: &card.Image{}}))

	results := v.Validate(card.New(card.Options{Text: card.String("ok")}))
	require.True(t, results.Valid())
	require.Empty(t, results.Warnings)
}

func TestValidateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.toml")
	require.NoError(t, os.WriteFile(path, []byte("[card]\ntitle = \"x\"\nsize = 3\n"), 0644))

	results, err := NewValidator(nil).ValidateFile(path)
	require.NoError(t, err)
	require.True(t, results.Valid())
	require.Equal(t, []string{
		"card has neither text nor image",
		"unknown key: card.size",
	}, results.Warnings)

	_, err = NewValidator(nil).ValidateFile(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
