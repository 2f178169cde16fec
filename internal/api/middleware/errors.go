package middleware

import "errors"

var (
	ErrEmptyPrompt       = errors.New("prompt must not be empty")
	ErrEmptyResponse     = errors.New("response text must not be empty")
	ErrEmptyBoundaryText = errors.New("boundary text must not be empty")
)
