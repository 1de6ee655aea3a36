package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/richcard/internal/config"
	"github.com/arcanaland/richcard/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a card document",
	Long: `Validate checks that a card document parses and that its card follows the
platform rules for basic cards. A card with neither text nor image is only a
warning; a missing image URL or button link is an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cardPath := args[0]

		if _, err := os.Stat(cardPath); os.IsNotExist(err) {
			return fmt.Errorf("card file not found: %s", cardPath)
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		v := validator.NewValidator(cfg.SurfaceCapabilities)
		results, err := v.ValidateFile(cardPath)
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if results.Valid() {
			fmt.Fprintf(out, "✅ Card '%s' is valid.\n", cardPath)
		} else {
			fmt.Fprintf(out, "❌ Card '%s' has %d validation errors:\n", cardPath, len(results.Errors))
			for i, e := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, e)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if !results.Valid() {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}
