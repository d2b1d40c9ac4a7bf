package seed

import (
	"context"
	"time"

	domfaq "github.com/kailas-cloud/faqdex/internal/domain/faq"
)

// Repository is the write side of the FAQ store.
type Repository interface {
	EnsureIndex(ctx context.Context) error
	UpsertMany(ctx context.Context, items []domfaq.Item) error
	Count(ctx context.Context, category string) (int, error)
}

// Locker provides a best-effort distributed lock over SET NX EX.
// Release is a compare-and-delete on the owner token.
type Locker interface {
	SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)
	DelIfValue(ctx context.Context, key string, value []byte) (bool, error)
}

// Recorder observes seed runs.
type Recorder interface {
	ObserveSeed(items int)
}
