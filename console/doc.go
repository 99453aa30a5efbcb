/*
Package console prints diagnostics for expressions to a terminal.

Diagnostics are colored by severity, using github.com/fatih/color. Errors
which carry a column within an infix expression are shown with a caret
below the offending character. Column positions are measured in display
width (“en”s), as determined by Unicode segmentation and East Asian width
rules (UAX#29 and UAX#11), so expressions containing wide characters are
marked correctly on fixed width terminals.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package console

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'notation'
func tracer() tracing.Trace {
	return tracing.Select("notation")
}
