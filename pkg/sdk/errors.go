package faqdex

import "github.com/kailas-cloud/faqdex/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound       = domain.ErrNotFound
	ErrFAQNotFound    = domain.ErrFAQNotFound
	ErrValidation     = domain.ErrValidation
	ErrSeedInProgress = domain.ErrSeedInProgress
)
