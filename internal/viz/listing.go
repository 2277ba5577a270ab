package viz

import (
	"fmt"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/combviz/internal/trace"
)

// Token is a syntax-highlighted chunk of a listing line.
type Token struct {
	Text  string
	Color string // hex colour, empty for default
}

var (
	listingOnce   sync.Once
	listingTokens [][]Token
)

// ListingTokens returns trace.Listing split into highlighted tokens, one
// slice per line. The result is computed once and shared.
func ListingTokens() [][]Token {
	listingOnce.Do(func() {
		listingTokens = HighlightLines(trace.ListingLanguage, trace.Listing)
	})
	return listingTokens
}

// HighlightLines tokenises lines with the chroma lexer for language.
func HighlightLines(language string, lines []string) [][]Token {
	lexer := lexers.Get(language)
	if lexer == nil {
		return plainLines(lines)
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, strings.Join(lines, "\n"))
	if err != nil {
		return plainLines(lines)
	}

	style := styles.Get("dracula")
	if style == nil {
		style = styles.Fallback
	}

	result := make([][]Token, 0, len(lines))
	var current []Token
	for _, token := range iterator.Tokens() {
		// Split tokens that span multiple lines
		parts := strings.Split(token.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				result = append(result, current)
				current = nil
			}
			if part != "" {
				current = append(current, Token{Text: part, Color: tokenColor(style, token.Type)})
			}
		}
	}
	result = append(result, current)

	// Lexers may emit a trailing newline token.
	if len(result) > len(lines) {
		result = result[:len(lines)]
	}
	for len(result) < len(lines) {
		result = append(result, nil)
	}
	return result
}

func plainLines(lines []string) [][]Token {
	result := make([][]Token, len(lines))
	for i, line := range lines {
		result[i] = []Token{{Text: line}}
	}
	return result
}

func tokenColor(style *chroma.Style, tt chroma.TokenType) string {
	entry := style.Get(tt)
	if entry.Colour.IsSet() {
		return entry.Colour.String()
	}
	return ""
}

// RenderListing draws the reference listing with line active marked and
// shaded. An out-of-range active line marks nothing.
func RenderListing(active int, th Theme) string {
	lines := ListingTokens()
	var b strings.Builder
	for i, tokens := range lines {
		isActive := i == active
		gutter := lipgloss.NewStyle().Foreground(th.Muted)
		marker := "  "
		if isActive {
			gutter = gutter.Foreground(th.Accent).Bold(true)
			marker = "▶ "
		}
		b.WriteString(gutter.Render(fmt.Sprintf("%s%2d ", marker, i+1)))

		for _, tok := range tokens {
			style := lipgloss.NewStyle()
			if tok.Color != "" {
				style = style.Foreground(lipgloss.Color(tok.Color))
			}
			if isActive {
				style = style.Background(th.Neutral).Bold(true)
			}
			b.WriteString(style.Render(tok.Text))
		}
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// PlainListing returns the listing line text for a token slice.
func PlainListing(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}
