package preferences

import (
	"context"

	domprefs "github.com/kailas-cloud/faqdex/internal/domain/preferences"
)

// Repository defines the storage contract for preferences.
type Repository interface {
	Get(ctx context.Context, userID string) (domprefs.Preferences, error)
	Create(ctx context.Context, p *domprefs.Preferences) (written bool, err error)
	Save(ctx context.Context, p *domprefs.Preferences) (existed bool, err error)
}
