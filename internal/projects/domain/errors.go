package domain

import "errors"

var (
	ErrNotFound    = errors.New("project not found")
	ErrInvalidID   = errors.New("invalid project id")
	ErrIDExhausted = errors.New("failed to generate unique project id")
)
