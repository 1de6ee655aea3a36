package render

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

var (
	linkPattern      = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)
	paragraphPattern = regexp.MustCompile(`\n[ \t]*\n`)
)

// style holds the attributes applied to emphasised text
type style struct {
	bold   *color.Color
	italic *color.Color
	both   *color.Color
}

func newStyle(enabled bool) style {
	s := style{
		bold:   color.New(color.Bold),
		italic: color.New(color.Italic),
		both:   color.New(color.Bold, color.Italic),
	}
	for _, c := range []*color.Color{s.bold, s.italic, s.both} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

func (s style) apply(word string, bold, italic bool) string {
	switch {
	case bold && italic:
		return s.both.Sprint(word)
	case bold:
		return s.bold.Sprint(word)
	case italic:
		return s.italic.Sprint(word)
	}
	return word
}

// Markdown formats card body text for the terminal and wraps it to width.
// It understands the subset cards support: **bold**, __bold__, *italic*,
// _italic_, [links](url), blank-line paragraphs and two-space line breaks.
func Markdown(text string, width int, enabled bool) []string {
	s := newStyle(enabled)
	text = linkPattern.ReplaceAllString(strings.ReplaceAll(text, "\r\n", "\n"), "$1 <$2>")

	var lines []string
	for i, paragraph := range paragraphPattern.Split(strings.TrimSpace(text), -1) {
		if i > 0 {
			lines = append(lines, "")
		}
		for _, segment := range hardBreaks(paragraph) {
			lines = append(lines, wrapWords(s.words(segment), width)...)
		}
	}
	return lines
}

// hardBreaks splits a paragraph at lines ending in two spaces and joins the
// remaining soft breaks
func hardBreaks(paragraph string) []string {
	var segments []string
	var current []string
	for _, line := range strings.Split(paragraph, "\n") {
		current = append(current, strings.TrimSpace(line))
		if strings.HasSuffix(line, "  ") {
			segments = append(segments, strings.Join(current, " "))
			current = nil
		}
	}
	if len(current) > 0 {
		segments = append(segments, strings.Join(current, " "))
	}
	return segments
}

// token is a word split into its emphasis markers, in text order
type token struct {
	open  []string
	core  string
	close []string
	punct string
}

// closer locates a trailing marker by token and position
type closer struct{ token, index int }

func tokenize(word string) token {
	var t token
	for m := leadingMarker(word); m != ""; m = leadingMarker(word) {
		t.open = append(t.open, m)
		word = word[len(m):]
	}

	t.core, t.punct = splitPunct(word)
	for m := trailingMarker(t.core); m != ""; m = trailingMarker(t.core) {
		t.close = append([]string{m}, t.close...)
		t.core = t.core[:len(t.core)-len(m)]
	}
	return t
}

// words splits text into styled words. Emphasis markers only count at the
// start or end of a word so snake_case stays intact, and only when a
// matching marker closes them later on; any other marker is kept as text.
func (s style) words(text string) []string {
	var tokens []token
	for _, word := range strings.Fields(text) {
		tokens = append(tokens, tokenize(word))
	}

	matched := make(map[closer]bool)
	opened := make([][]bool, len(tokens))
	for i, t := range tokens {
		opened[i] = make([]bool, len(t.open))
		for k, m := range t.open {
			if c, ok := findCloser(tokens, i, m, matched); ok {
				matched[c] = true
				opened[i][k] = true
			}
		}
	}

	var out []string
	bold, italic := false, false
	toggle := func(m string) {
		if len(m) == 2 {
			bold = !bold
		} else {
			italic = !italic
		}
	}

	for i, t := range tokens {
		var literal strings.Builder
		for k, m := range t.open {
			if opened[i][k] {
				toggle(m)
			} else {
				literal.WriteString(m)
			}
		}
		literal.WriteString(t.core)

		var closing []string
		for k, m := range t.close {
			if matched[closer{i, k}] {
				closing = append(closing, m)
			} else {
				literal.WriteString(m)
			}
		}

		if word := literal.String(); word != "" || t.punct != "" {
			out = append(out, s.apply(word, bold, italic)+t.punct)
		}
		for _, m := range closing {
			toggle(m)
		}
	}
	return out
}

// findCloser returns the first unclaimed trailing marker equal to m at or
// after token i
func findCloser(tokens []token, i int, m string, matched map[closer]bool) (closer, bool) {
	for j := i; j < len(tokens); j++ {
		if j == i && tokens[j].core == "" {
			continue
		}
		for k, c := range tokens[j].close {
			if c == m && !matched[closer{j, k}] {
				return closer{j, k}, true
			}
		}
	}
	return closer{}, false
}

func leadingMarker(word string) string {
	for _, m := range []string{"**", "__", "*", "_"} {
		if strings.HasPrefix(word, m) {
			return m
		}
	}
	return ""
}

func trailingMarker(word string) string {
	for _, m := range []string{"**", "__", "*", "_"} {
		if strings.HasSuffix(word, m) {
			return m
		}
	}
	return ""
}

func splitPunct(word string) (string, string) {
	core := strings.TrimRight(word, ".,;:!?)")
	return core, word[len(core):]
}

// visibleLen is the display width of s without escape sequences
func visibleLen(s string) int {
	return utf8.RuneCountInString(stripAnsi(s))
}

// wrapWords wraps words to a specified width
func wrapWords(words []string, width int) []string {
	if width < 10 {
		width = 40
	}

	if len(words) == 0 {
		return []string{""}
	}

	var result []string
	var currentLine string
	currentLen := 0

	for _, word := range words {
		wordLen := visibleLen(word)
		if currentLen == 0 {
			currentLine = word
			currentLen = wordLen
		} else if currentLen+1+wordLen <= width {
			currentLine += " " + word
			currentLen += 1 + wordLen
		} else {
			result = append(result, currentLine)
			currentLine = word
			currentLen = wordLen
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}
