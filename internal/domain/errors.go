package domain

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrMissingFile       = errors.New("no file content provided")
	ErrFileTooLarge      = errors.New("file exceeds maximum allowed size")
	ErrNoResult          = errors.New("no document has been processed yet")
)
