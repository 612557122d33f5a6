package domain

import "errors"

var (
	ErrStudentNotFound     = errors.New("student not found")
	ErrInvalidReviewStatus = errors.New("invalid review status")
	ErrEmptyCatalog        = errors.New("university catalog is empty")
	ErrSourceUnavailable   = errors.New("catalog source unavailable")
	ErrInvalidUniversity   = errors.New("invalid university record")
)
