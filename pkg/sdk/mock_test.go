package faqdex

import (
	"context"

	domfaq "github.com/kailas-cloud/faqdex/internal/domain/faq"
	domprefs "github.com/kailas-cloud/faqdex/internal/domain/preferences"
	faquc "github.com/kailas-cloud/faqdex/internal/usecase/faq"
	healthuc "github.com/kailas-cloud/faqdex/internal/usecase/health"
	prefsuc "github.com/kailas-cloud/faqdex/internal/usecase/preferences"
)

// --- faqUseCase mock ---

type mockFAQUC struct {
	categoriesFn func(ctx context.Context) ([]faquc.CategorySummary, error)
	listFn       func(ctx context.Context, req faquc.ListRequest) (faquc.ListResult, error)
	getFn        func(ctx context.Context, id string) (domfaq.Item, error)
	searchFn     func(ctx context.Context, query string, limit *int) ([]domfaq.Item, error)
}

func (m *mockFAQUC) Categories(ctx context.Context) ([]faquc.CategorySummary, error) {
	return m.categoriesFn(ctx)
}

func (m *mockFAQUC) List(ctx context.Context, req faquc.ListRequest) (faquc.ListResult, error) {
	return m.listFn(ctx, req)
}

func (m *mockFAQUC) Get(ctx context.Context, id string) (domfaq.Item, error) {
	return m.getFn(ctx, id)
}

func (m *mockFAQUC) Search(ctx context.Context, query string, limit *int) ([]domfaq.Item, error) {
	return m.searchFn(ctx, query, limit)
}

// --- preferencesUseCase mock ---

type mockPrefsUC struct {
	getFn    func(ctx context.Context, userID string) (domprefs.Preferences, error)
	updateFn func(ctx context.Context, userID string, in prefsuc.UpdateInput) (bool, error)
}

func (m *mockPrefsUC) Get(ctx context.Context, userID string) (domprefs.Preferences, error) {
	return m.getFn(ctx, userID)
}

func (m *mockPrefsUC) Update(ctx context.Context, userID string, in prefsuc.UpdateInput) (bool, error) {
	return m.updateFn(ctx, userID, in)
}

// --- seedUseCase mock ---

type mockSeedUC struct {
	seedFn func(ctx context.Context, force bool) (int, error)
}

func (m *mockSeedUC) Seed(ctx context.Context, force bool) (int, error) {
	return m.seedFn(ctx, force)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(context.Context) healthuc.Report { return m.report }

// --- store mock ---

type mockStore struct {
	pingErr error
	closed  bool
}

func (m *mockStore) Ping(context.Context) error { return m.pingErr }
func (m *mockStore) Close() { m.closed = true }
