package domain

import "errors"

var (
	ErrServiceRequired     = errors.New("service name is required")
	ErrCredentialsRequired = errors.New("master username and password are required")
	ErrInvalidLayout       = errors.New("invalid chunk layout")
	ErrNoTerminal          = errors.New("no interactive terminal available")
	ErrPromptCanceled      = errors.New("prompt canceled")
)
