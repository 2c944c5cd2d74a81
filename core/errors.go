package core

import "errors"

var (
	ErrBadArguments = errors.New("arguments are not acceptable")
	ErrNotFound     = errors.New("resource is not found")
	ErrUnavailable  = errors.New("resource is not accessible")
)
