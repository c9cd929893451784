package iot

import "errors"

// None of these are fatal: the caller logs and keeps the last known state.
var (
	ErrNetwork     = errors.New("network failure")
	ErrParse       = errors.New("malformed payload")
	ErrNotFound    = errors.New("device not found")
	ErrPersistence = errors.New("persistence failure")
)
