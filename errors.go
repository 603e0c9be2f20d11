package twconfig

import "errors"

var (
	// ErrUnknownFormat is returned when a record format cannot be determined.
	ErrUnknownFormat = errors.New("unknown record format")
	// ErrInvalidRecord is returned when a record has the wrong shape.
	ErrInvalidRecord = errors.New("invalid record")
	// ErrMissingExport is returned when a JS module exports no config object.
	ErrMissingExport = errors.New("no exported config object")
	// ErrUnsupportedExpression is returned for JS that is not a literal,
	// require('x') or require('x')(options).
	ErrUnsupportedExpression = errors.New("unsupported expression")
)
