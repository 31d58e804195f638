// Package repository holds the errors shared by every storage backend.
package repository

import "errors"

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrCategoryNotFound = errors.New("category not found")
)
