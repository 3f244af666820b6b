package feedback

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Style is an ANSI escape sequence.
type Style string

const (
	Green Style = "\033[32m"
	Red   Style = "\033[31m"
	Cyan  Style = "\033[36m"
	Bold  Style = "\033[1m"
	Reset Style = "\033[0m"
)

// Bell is the terminal alert character.
const Bell = "\a"

// ColorMode controls when styles are emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a configured colour mode.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("unknown color mode %q", s)
	}
}

// ColorEnabled resolves mode for w. In auto mode colour is enabled only when
// w is a terminal.
func ColorEnabled(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Styler wraps text in styles when enabled.
type Styler struct {
	Enabled bool
}

// Paint returns text wrapped in styles followed by Reset, or text unchanged
// when the styler is disabled or no styles are given.
func (s Styler) Paint(text string, styles ...Style) string {
	if !s.Enabled || len(styles) == 0 {
		return text
	}
	var b strings.Builder
	for _, st := range styles {
		b.WriteString(string(st))
	}
	b.WriteString(text)
	b.WriteString(string(Reset))
	return b.String()
}

// UnmarshalText lets configuration decoders parse a ColorMode.
func (m *ColorMode) UnmarshalText(text []byte) error {
	parsed, err := ParseColorMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
