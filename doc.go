/*
Package notation converts arithmetic expressions between infix and postfix
notation.

Expressions

Infix expressions consist of operands (numbers like 3 or 2.75, identifiers
like A or x_1), the binary operators

	+  -  *  /  ^

unary minus, and parentheses. Postfix expressions are sequences of
space-delimited tokens, where unary minus is spelled as "~" to distinguish
it from binary subtraction:

	InfixToPostfix("A * ( B + C ) - D / E")   ⇒  "A B C + * D E / -"
	InfixToPostfix("-A + B")                  ⇒  "A ~ B +"

Operator precedence, from binding tightest to loosest:

	~       5   right-associative
	^       4   right-associative
	* /     3   left-associative
	+ -     2   left-associative

Converting from infix to postfix uses the shunting-yard algorithm.
Converting back from postfix to infix re-introduces parentheses only where
precedence and associativity require them, therefore the infix text produced
by PostfixToInfix may differ from the original input:

	PostfixToInfix("A B C + * D E / -")       ⇒  "A * (B + C) - D / E"

A right operand of + or * with equal precedence is not parenthesized, as
the value does not depend on the grouping. Thus "A + (B - C)" comes back as
"A + B - C", whose postfix form is "A B + C -" rather than "A B C - +".

Errors

Every error resulting from invalid input implements InputError, which carries
a position. Clients may use errors.As to find out about the error category:
LexError, MismatchedParenthesesError, InsufficientOperandsError and
InvalidExpressionError.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.

*/
package notation

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'notation'
func tracer() tracing.Trace {
	return tracing.Select("notation")
}
