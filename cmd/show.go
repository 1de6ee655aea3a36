package cmd

import (
	"errors"
	"path/filepath"

	colorize "github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arcanaland/richcard/internal/card"
	"github.com/arcanaland/richcard/internal/config"
	"github.com/arcanaland/richcard/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show [card]",
	Short: "Preview a card in the terminal",
	Long: `Show draws a card the way a display surface would lay it out, with local
images converted to ANSI art. Remote images are described by their alt text.

The card is looked up by name in your card library (XDG_DATA_HOME/richcard/cards)
or taken as a path. If no card is given, the default card from your config is used.

Examples:
  richcard show
  richcard show welcome
  richcard show ./cards/menu.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		doc, err := openCard(args)
		if err != nil {
			return err
		}
		c := doc.BuildCard()

		noColor, _ := cmd.Flags().GetBool("no-color")
		useColor := cfg.Color && !noColor && !colorize.NoColor

		r := render.NewRenderer(cmd.OutOrStdout(), cfg.Width, useColor)
		return r.Render(c, cardArt(c, filepath.Dir(doc.Path)))
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("no-color", false, "Disable colored output")
}

// cardArt returns ANSI art for the card image, or "" when the image is
// remote or can't be converted
func cardArt(c card.Card, baseDir string) string {
	if c.Image == nil || c.Image.URL == "" {
		return ""
	}

	imagePath, err := render.LocalPath(c.Image.URL, baseDir)
	if err != nil {
		if !errors.Is(err, render.ErrRemoteImage) {
			log.Warnf("resolving image: %v", err)
		}
		return ""
	}

	cacheDir := filepath.Join(config.GetCacheDir(), "ansi_cache")
	art, err := render.LoadArt(imagePath, cacheDir, render.ArtWidth, render.ArtHeight)
	if err != nil {
		log.Warnf("converting image to ANSI art: %v", err)
		return ""
	}
	return art
}
