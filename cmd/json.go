package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/richcard/internal/prompt"
)

var jsonCmd = &cobra.Command{
	Use:   "json [card]",
	Short: "Print a card as the JSON sent to the assistant platform",
	Long: `Json prints the card in its wire form. With --envelope the whole response
prompt is printed, including the simple response and suggestions from the
card document.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := openCard(args)
		if err != nil {
			return err
		}

		envelope, _ := cmd.Flags().GetBool("envelope")
		indent, _ := cmd.Flags().GetBool("indent")

		var data []byte
		if envelope {
			p, err := doc.BuildPrompt()
			if err != nil {
				return err
			}
			if indent {
				data, err = prompt.MarshalIndent(p)
			} else {
				data, err = prompt.Marshal(p)
			}
			if err != nil {
				return err
			}
		} else {
			c := doc.BuildCard()
			if indent {
				data, err = json.MarshalIndent(c, "", "  ")
			} else {
				data, err = json.Marshal(c)
			}
			if err != nil {
				return fmt.Errorf("error encoding card: %w", err)
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(jsonCmd)

	jsonCmd.Flags().BoolP("envelope", "e", false, "Print the full response prompt")
	jsonCmd.Flags().BoolP("indent", "i", false, "Indent the output")
}
