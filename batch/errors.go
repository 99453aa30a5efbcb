package batch

import "errors"

var (
	// ErrUnknownMode is returned for a conversion mode other than
	// "infix2postfix" or "postfix2infix".
	ErrUnknownMode = errors.New("batch: mode must be 'infix2postfix' or 'postfix2infix'")
	// ErrNotRegular is returned if an input path does not denote a regular file.
	ErrNotRegular = errors.New("batch: file is not a regular file")
	// ErrClosed is returned when converting with a closed Converter.
	ErrClosed = errors.New("batch: converter is closed")
)
