package types

import "github.com/cockroachdb/errors"

// errors
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrInvalidConfig  = errors.New("invalid config")
	ErrInvalidSize    = errors.New("invalid size")
	ErrFileTooLarge   = errors.New("option file too large")
	ErrNoFiles        = errors.New("no option files given")
)
