package cmd

import (
	"fmt"

	"github.com/arcanaland/richcard/internal/cardfile"
	"github.com/arcanaland/richcard/internal/config"
)

// openCard loads a card document by library name or path. With no name the
// default card from the config is used.
func openCard(args []string) (*cardfile.Document, error) {
	var name string
	if len(args) > 0 {
		name = args[0]
	} else {
		defaultCard, err := config.GetDefaultCard()
		if err != nil {
			return nil, fmt.Errorf("error getting default card: %w", err)
		}
		name = defaultCard
	}

	doc, err := cardfile.NewLibrary(config.GetCardLibraryPath()).Open(name)
	if err != nil {
		return nil, fmt.Errorf("error loading card: %w", err)
	}
	return doc, nil
}
