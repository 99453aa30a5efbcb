package console

import (
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupGraphemes sync.Once

// DisplayWidth returns the width of s on a fixed width terminal, in “en”s.
// If context is nil, uax11.LatinContext is used.
func DisplayWidth(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	if context == nil {
		context = uax11.LatinContext
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// Caret returns a line which puts a caret below column col of expr, where col
// is a 1-based rune column. Columns beyond the end of expr mark the position
// just after it. Caret returns "" for col < 1.
func Caret(expr string, col int, context *uax11.Context) string {
	if col < 1 {
		return ""
	}
	runes := []rune(expr)
	if col > len(runes) {
		col = len(runes) + 1
	}
	indent := DisplayWidth(string(runes[:col-1]), context)
	return strings.Repeat(" ", indent) + "^"
}
