package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// DefaultAccent is the hex colour used for the word line and title.
const DefaultAccent = "#FFD700"

// Theme holds the styles the terminal console draws with.
type Theme struct {
	Text   tcell.Style
	Accent tcell.Style
	Art    tcell.Style
	Hint   tcell.Style
	Error  tcell.Style
}

// NewTheme builds a theme around the given accent colour.
func NewTheme(accentHex string) (Theme, error) {
	accent, err := ParseHexColor(accentHex)
	if err != nil {
		return Theme{}, err
	}
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	return Theme{
		Text:   base.Foreground(tcell.ColorWhite),
		Accent: base.Foreground(accent).Bold(true),
		Art:    base.Foreground(tcell.ColorGray),
		Hint:   base.Foreground(tcell.ColorAqua),
		Error:  base.Foreground(tcell.ColorRed),
	}, nil
}

// DefaultTheme returns the theme for DefaultAccent.
func DefaultTheme() Theme {
	theme, err := NewTheme(DefaultAccent)
	if err != nil {
		panic(err)
	}
	return theme
}

// style returns the style for a line of the given kind.
func (t Theme) style(kind LineKind) tcell.Style {
	switch kind {
	case LineTitle, LineWord, LineResult:
		return t.Accent
	case LineArt:
		return t.Art
	case LineHint:
		return t.Hint
	default:
		return t.Text
	}
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid red component in %s: %w", hex, err)
	}

	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid green component in %s: %w", hex, err)
	}

	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid blue component in %s: %w", hex, err)
	}

	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}
