package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "richcard",
	Short: "Tool for authoring and previewing assistant response cards",
	Long: `Richcard is a command-line tool for writing, checking and previewing the basic
cards an assistant attaches to its responses. Cards are kept as TOML documents in
a card library and can be validated, shown in the terminal, printed as the JSON
sent to the assistant platform, or served over HTTP.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
