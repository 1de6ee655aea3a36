package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/richcard/internal/card"
)

const (
	defaultWidth = 80
	minInfoWidth = 20
	spacing      = 4
)

// Renderer draws a card preview in the terminal, with the image as ANSI art
// on the left and the card fields on the right
type Renderer struct {
	Out   io.Writer
	Width int
	Color bool
}

// NewRenderer returns a renderer writing to out. A width of 0 uses the
// terminal width.
func NewRenderer(out io.Writer, width int, useColor bool) *Renderer {
	if width <= 0 {
		width = TerminalWidth()
	}
	return &Renderer{Out: out, Width: width, Color: useColor}
}

// TerminalWidth returns the width of stdout, or 80 when it isn't a terminal
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

func (r *Renderer) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if r.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Render writes the card. art may be empty, in which case the image, if
// any, is described by its alt text.
func (r *Renderer) Render(c card.Card, art string) error {
	var artLines []string
	if art = strings.TrimRight(art, "\n"); art != "" {
		artLines = strings.Split(art, "\n")
	}

	artWidth := 0
	for _, line := range artLines {
		if w := visibleLen(line); w > artWidth {
			artWidth = w
		}
	}

	infoStartCol := 0
	if artWidth > 0 {
		infoStartCol = artWidth + spacing
	}
	infoWidth := r.Width - infoStartCol - 4
	if infoWidth < minInfoWidth {
		infoWidth = minInfoWidth
	}

	infoLines := r.infoLines(c, infoWidth, len(artLines) > 0)

	var b strings.Builder
	b.WriteString("\n")
	for i := 0; i < max(len(artLines), len(infoLines)); i++ {
		line := "  "
		if i < len(artLines) {
			line += artLines[i] + strings.Repeat(" ", infoStartCol-visibleLen(artLines[i]))
		} else {
			line += strings.Repeat(" ", infoStartCol)
		}
		if i < len(infoLines) {
			line += infoLines[i]
		}
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if _, err := io.WriteString(r.Out, b.String()); err != nil {
		return fmt.Errorf("error writing card: %w", err)
	}
	return nil
}

func (r *Renderer) infoLines(c card.Card, width int, hasArt bool) []string {
	var lines []string
	label := r.paint(color.FgCyan)

	if c.Title != nil {
		lines = append(lines, r.paint(color.Bold, color.FgHiWhite).Sprint(*c.Title))
	}
	if c.Subtitle != nil {
		lines = append(lines, label.Sprint(*c.Subtitle))
	}

	if c.Text != nil {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, Markdown(*c.Text, width, r.Color)...)
	}

	if c.Image != nil && !hasArt {
		lines = append(lines, "")
		lines = append(lines, r.paint(color.Faint).Sprintf("[image: %s]", c.Image.Alt))
		if c.Image.URL != "" {
			lines = append(lines, r.paint(color.Faint).Sprint(c.Image.URL))
		}
	}

	if c.ImageFill != nil {
		lines = append(lines, label.Sprint("Fill: ")+c.ImageFill.String())
	}

	if c.Button != nil {
		lines = append(lines, "")
		button := r.paint(color.Bold, color.FgHiBlue).Sprintf("[ %s ]", c.Button.Name)
		if u := c.Button.URL(); u != "" {
			button += " -> " + r.paint(color.Underline).Sprint(u)
		}
		lines = append(lines, button)
	}

	return lines
}
