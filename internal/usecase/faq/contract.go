package faq

import (
	"context"
	"time"

	domfaq "github.com/kailas-cloud/faqdex/internal/domain/faq"
)

// Repository defines the storage contract for FAQ items.
type Repository interface {
	Get(ctx context.Context, id string) (domfaq.Item, error)
	List(ctx context.Context, category string, offset, limit int) (items []domfaq.Item, total int, err error)
	All(ctx context.Context, category string) ([]domfaq.Item, error)
	Count(ctx context.Context, category string) (int, error)
}

// SearchRecorder observes search outcomes.
type SearchRecorder interface {
	ObserveSearch(outcome string, results int, d time.Duration)
}
