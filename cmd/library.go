package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arcanaland/richcard/internal/cardfile"
	"github.com/arcanaland/richcard/internal/config"
)

const welcomeCard = `[simple]
speech = "This is a card."
text = "This is a card."

[card]
title = "Card Title"
subtitle = "Card Subtitle"
text = "Card **Content**"

[card.image]
url = "https://developers.google.com/assistant/assistant_96.png"
alt = "Google Assistant logo"
`

// libraryCmd represents the library command group
var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage cards in your card library",
	Long:  `Commands for managing card documents in your card library.`,
}

// libraryListCmd represents the library ls command
var libraryListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available cards in your card library",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetCardLibraryPath()

		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Fprintf(out, "Card library at %s does not exist.\n", libraryPath)
			fmt.Fprintln(out, "Run 'richcard library init' to create it.")
			return nil
		}

		defaultCard, err := config.GetDefaultCard()
		if err != nil {
			return fmt.Errorf("error getting default card: %w", err)
		}

		library := cardfile.NewLibrary(libraryPath)
		names, err := library.List()
		if err != nil {
			return err
		}

		if len(names) == 0 {
			fmt.Fprintln(out, "No cards found in your card library.")
			fmt.Fprintln(out, "You can add cards by copying them to:", libraryPath)
			return nil
		}

		for _, name := range names {
			doc, err := library.OpenName(name)
			if err != nil {
				fmt.Fprintf(out, "  %s (invalid: %v)\n", name, err)
				continue
			}

			title := "untitled"
			if t := doc.Card.Title; t != nil && *t != "" {
				title = *t
			}

			if name == defaultCard {
				fmt.Fprintf(out, "* %s (%s) [DEFAULT]\n", name, title)
			} else {
				fmt.Fprintf(out, "  %s (%s)\n", name, title)
			}
		}
		return nil
	},
}

// librarySetDefaultCmd represents the library set-default command
var librarySetDefaultCmd = &cobra.Command{
	Use:   "set-default [card_name]",
	Short: "Set the default card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cardName := args[0]

		library := cardfile.NewLibrary(config.GetCardLibraryPath())
		if _, err := library.Open(cardName); err != nil {
			return fmt.Errorf("not a valid card: %w", err)
		}

		if err := config.SetDefaultCard(cardName); err != nil {
			return fmt.Errorf("error setting default card: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default card set to: %s\n", cardName)
		return nil
	},
}

// libraryInitCmd represents the library init command
var libraryInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the card library with an example card",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		library := cardfile.NewLibrary(config.GetCardLibraryPath())

		if err := library.Init(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Card library initialized at:", library.Dir)

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}
		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())

		if _, err := library.Resolve(cfg.DefaultCard); err == nil {
			return nil
		}

		examplePath := filepath.Join(library.Dir, cfg.DefaultCard+".toml")
		if err := os.WriteFile(examplePath, []byte(welcomeCard), 0644); err != nil {
			return fmt.Errorf("error writing example card: %w", err)
		}
		fmt.Fprintln(out, "Example card written to:", examplePath)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(libraryCmd)
	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(librarySetDefaultCmd)
	libraryCmd.AddCommand(libraryInitCmd)
}
