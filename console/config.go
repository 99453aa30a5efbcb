package console

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// ErrColorMode is returned for an unknown color mode.
var ErrColorMode = errors.New("console: color must be 'auto', 'always' or 'never'")

// ColorMode decides whether output is colored.
type ColorMode int

const (
	// ColorAuto colors output if stdout is a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways colors output unconditionally.
	ColorAlways
	// ColorNever suppresses colors.
	ColorNever
)

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	}
	return "auto"
}

// ParseColorMode returns the color mode for its name. An empty name selects
// ColorAuto.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("%w: %q", ErrColorMode, s)
}

// Config represents a set of configuration parameters for printing.
type Config struct {
	LineWidth int            // maximum width of output lines in “en”s
	Color     ColorMode      // whether to use colors
	Context   *uax11.Context // context for measuring display widths; may be nil
}

// DefaultLineWidth is the line width used if none can be determined.
const DefaultLineWidth = 65

// ConfigFromTerminal is a simple helper for creating a printing Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{
		LineWidth: DefaultLineWidth,
		Context:   uax11.ContextFromEnvironment(),
	}
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			config.LineWidth = clampWidth(w)
		}
	}
	tracer().Infof("setting line length to %d en", config.LineWidth)
	return config
}

func clampWidth(w int) int {
	switch {
	case w > 65:
		return w - 10
	case w > 30:
		return w - 5
	case w > 10:
		return w
	}
	return 10
}
