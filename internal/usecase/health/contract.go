package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// CatalogCounter reports how many FAQ items are stored.
type CatalogCounter interface {
	Count(ctx context.Context, category string) (int, error)
}
