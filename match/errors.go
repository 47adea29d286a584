package match

import "errors"

var (
	// ErrNilLogger is returned when a nil logger is passed to WithLogger.
	ErrNilLogger = errors.New("logger cannot be nil")
)
