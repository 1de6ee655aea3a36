package prompt

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/arcanaland/richcard/internal/card"
)

// ErrUnsupportedItem is returned when a value cannot be placed in a prompt.
var ErrUnsupportedItem = errors.New("unsupported prompt item")

// Prompt represents the outbound response prompt a card is attached to
type Prompt struct {
	Override    *bool        `json:"override,omitempty"`
	FirstSimple *Simple      `json:"firstSimple,omitempty"`
	Content     *Content     `json:"content,omitempty"`
	LastSimple  *Simple      `json:"lastSimple,omitempty"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
	Link        *card.Link   `json:"link,omitempty"`
}

// Content holds the rich content of a prompt
type Content struct {
	Card *card.Card `json:"card,omitempty"`
}

// Simple is a spoken and displayed text response
type Simple struct {
	Speech string `json:"speech,omitempty" toml:"speech"`
	Text   string `json:"text,omitempty" toml:"text"`
}

// Suggestion is a suggestion chip
type Suggestion struct {
	Title string `json:"title" toml:"title"`
}

// Item is anything that can be added to a prompt: Simple, card.Card,
// Suggestion or card.Link, by value or by pointer.
type Item interface{}

// New returns a prompt holding items.
func New(items ...Item) (*Prompt, error) {
	p := &Prompt{}
	if err := p.Add(items...); err != nil {
		return nil, err
	}
	return p, nil
}

// Add places each item in its prompt slot. The first Simple becomes
// firstSimple and the next lastSimple; a later card or link replaces an
// earlier one.
func (p *Prompt) Add(items ...Item) error {
	for _, item := range items {
		switch v := item.(type) {
		case Simple:
			p.addSimple(v)
		case *Simple:
			p.addSimple(*v)
		case string:
			p.addSimple(Simple{Speech: v, Text: v})
		case card.Card:
			p.Content = &Content{Card: &v}
		case *card.Card:
			p.Content = &Content{Card: v}
		case Suggestion:
			p.Suggestions = append(p.Suggestions, v)
		case *Suggestion:
			p.Suggestions = append(p.Suggestions, *v)
		case card.Link:
			p.Link = &v
		case *card.Link:
			p.Link = v
		default:
			return fmt.Errorf("%w: %T", ErrUnsupportedItem, item)
		}
	}
	return nil
}

func (p *Prompt) addSimple(s Simple) {
	if p.FirstSimple == nil {
		p.FirstSimple = &s
		return
	}
	p.LastSimple = &s
}

// Card returns the prompt's card, or nil.
func (p *Prompt) Card() *card.Card {
	if p.Content == nil {
		return nil
	}
	return p.Content.Card
}

// Marshal encodes p as compact JSON.
func Marshal(p *Prompt) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("error encoding prompt: %w", err)
	}
	return data, nil
}

// MarshalIndent encodes p as indented JSON.
func MarshalIndent(p *Prompt) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error encoding prompt: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a prompt from JSON.
func Unmarshal(data []byte) (*Prompt, error) {
	var p Prompt
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("error decoding prompt: %w", err)
	}
	return &p, nil
}
