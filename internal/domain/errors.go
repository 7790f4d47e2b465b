package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrUnknownRole       = errors.New("unknown role")
	ErrUnknownRoute      = errors.New("unknown route")
	ErrInvalidTransition = errors.New("invalid transition")
)
