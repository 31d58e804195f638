package service

import "errors"

var (
	// ErrNotFound reports that a referenced question, category or page does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrUnprocessable reports a well-formed request that cannot be processed.
	ErrUnprocessable = errors.New("unprocessable")
)
