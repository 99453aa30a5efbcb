/*
Package batch converts files of expressions, one expression per line.

Every line is converted independently, in the direction selected by a Mode.
Blank lines are preserved as empty lines. A line which fails to convert is
replaced by a diagnostic comment

	# Error on line <n>: <message>

and conversion proceeds with the next line. Line numbers count every line
of the input, starting at 1.

Clients interested in the outcome of single lines may subscribe to a
Converter, which broadcasts a LineResult for every line it converts.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package batch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'notation'
func tracer() tracing.Trace {
	return tracing.Select("notation")
}
