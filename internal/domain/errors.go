package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrFAQNotFound signals a missing FAQ item.
	ErrFAQNotFound = errors.New("faq item not found")
	// ErrValidation signals input that violates a domain rule.
	ErrValidation = errors.New("validation failed")
	// ErrSeedInProgress signals that another process holds the seed lock.
	ErrSeedInProgress = errors.New("seed in progress")
)
