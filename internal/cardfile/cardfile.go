package cardfile

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"

	"github.com/arcanaland/richcard/internal/card"
	"github.com/arcanaland/richcard/internal/prompt"
)

// Document represents a card document on disk
type Document struct {
	Card        CardSection         `toml:"card"`
	Simple      *prompt.Simple      `toml:"simple"`
	Suggestions []prompt.Suggestion `toml:"suggestions"`

	// Path the document was loaded from
	Path string `toml:"-"`
	// Keys present in the file that no field consumed
	Undecoded []string `toml:"-"`
}

// CardSection is the [card] table of a document
type CardSection struct {
	Title     *string         `toml:"title"`
	Subtitle  *string         `toml:"subtitle"`
	Text      *string         `toml:"text"`
	Image     *card.Image     `toml:"image"`
	ImageFill *card.ImageFill `toml:"image_fill"`
	Button    *card.Link      `toml:"button"`
}

// Load loads a card document from a TOML file
func Load(path string) (*Document, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("card file not found: %s", path)
	}

	var doc Document
	md, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	doc.Path = path
	doc.setUndecoded(md)

	log.WithFields(log.Fields{
		"path":      path,
		"undecoded": len(doc.Undecoded),
	}).Debug("loaded card document")

	return &doc, nil
}

// Decode parses a card document from TOML text
func Decode(data string) (*Document, error) {
	var doc Document
	md, err := toml.Decode(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("error parsing card document: %w", err)
	}
	doc.setUndecoded(md)
	return &doc, nil
}

func (d *Document) setUndecoded(md toml.MetaData) {
	for _, key := range md.Undecoded() {
		d.Undecoded = append(d.Undecoded, key.String())
	}
	sort.Strings(d.Undecoded)
}

// BuildCard builds the document's card. Keys absent from the file stay unset.
func (d *Document) BuildCard() card.Card {
	return card.New(card.Options{
		Title:     d.Card.Title,
		Subtitle:  d.Card.Subtitle,
		Text:      d.Card.Text,
		Image:     d.Card.Image,
		ImageFill: d.Card.ImageFill,
		Button:    d.Card.Button,
	})
}

// BuildPrompt builds the response prompt the card is sent in
func (d *Document) BuildPrompt() (*prompt.Prompt, error) {
	var items []prompt.Item
	if d.Simple != nil {
		items = append(items, *d.Simple)
	}
	items = append(items, d.BuildCard())
	for _, s := range d.Suggestions {
		items = append(items, s)
	}
	return prompt.New(items...)
}
