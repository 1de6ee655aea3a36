package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arcanaland/richcard/internal/cardfile"
	"github.com/arcanaland/richcard/internal/config"
	"github.com/arcanaland/richcard/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the card library as JSON over HTTP",
	Long: `Serve exposes the card library for inspection:

  GET /cards                 list card names
  GET /cards/{name}          the card JSON
  GET /cards/{name}/prompt   the full response prompt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		library := cardfile.NewLibrary(config.GetCardLibraryPath())
		return server.NewServer(addr, library).Run(ctx)
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "127.0.0.1:8080", "Address to listen on")
}
