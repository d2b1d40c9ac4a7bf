package chi

import (
	"context"

	domfaq "github.com/kailas-cloud/faqdex/internal/domain/faq"
	domprefs "github.com/kailas-cloud/faqdex/internal/domain/preferences"
	faquc "github.com/kailas-cloud/faqdex/internal/usecase/faq"
	healthuc "github.com/kailas-cloud/faqdex/internal/usecase/health"
	prefsuc "github.com/kailas-cloud/faqdex/internal/usecase/preferences"
)

// FAQService is the FAQ use case consumed by the HTTP layer.
type FAQService interface {
	Categories(ctx context.Context) ([]faquc.CategorySummary, error)
	List(ctx context.Context, req faquc.ListRequest) (faquc.ListResult, error)
	Get(ctx context.Context, id string) (domfaq.Item, error)
	Search(ctx context.Context, query string, limit *int) ([]domfaq.Item, error)
}

// PreferencesService is the preferences use case consumed by the HTTP layer.
type PreferencesService interface {
	Get(ctx context.Context, userID string) (domprefs.Preferences, error)
	Update(ctx context.Context, userID string, in prefsuc.UpdateInput) (bool, error)
}

// HealthChecker reports component health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}
