package mcpadapter

import "errors"

var (
	errEmptyPrompt   = errors.New("prompt must not be empty")
	errEmptyResponse = errors.New("response text must not be empty")
)
