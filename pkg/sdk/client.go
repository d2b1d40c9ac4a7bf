package faqdex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	dbRedis "github.com/kailas-cloud/faqdex/internal/db/redis"
	domfaq "github.com/kailas-cloud/faqdex/internal/domain/faq"
	"github.com/kailas-cloud/faqdex/internal/domain/faq/catalog"
	domprefs "github.com/kailas-cloud/faqdex/internal/domain/preferences"
	faqrepo "github.com/kailas-cloud/faqdex/internal/repository/faq"
	prefsrepo "github.com/kailas-cloud/faqdex/internal/repository/preferences"
	faquc "github.com/kailas-cloud/faqdex/internal/usecase/faq"
	healthuc "github.com/kailas-cloud/faqdex/internal/usecase/health"
	prefsuc "github.com/kailas-cloud/faqdex/internal/usecase/preferences"
	seeduc "github.com/kailas-cloud/faqdex/internal/usecase/seed"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultKeyPrefix        = "faqdex:"
)

// Internal interfaces, swapped in tests.
type faqUseCase interface {
	Categories(ctx context.Context) ([]faquc.CategorySummary, error)
	List(ctx context.Context, req faquc.ListRequest) (faquc.ListResult, error)
	Get(ctx context.Context, id string) (domfaq.Item, error)
	Search(ctx context.Context, query string, limit *int) ([]domfaq.Item, error)
}

type preferencesUseCase interface {
	Get(ctx context.Context, userID string) (domprefs.Preferences, error)
	Update(ctx context.Context, userID string, in prefsuc.UpdateInput) (bool, error)
}

type seedUseCase interface {
	Seed(ctx context.Context, force bool) (int, error)
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

type closer interface {
	Ping(ctx context.Context) error
	Close()
}

// Client is the faqdex SDK entry point.
type Client struct {
	store     closer
	faqSvc    faqUseCase
	prefsSvc  preferencesUseCase
	seedSvc   seedUseCase
	healthSvc healthUseCase
	obs       *observer
}

// New creates a Client and connects to Redis.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{keyPrefix: defaultKeyPrefix}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("faqdex: database address required (use WithRedis)")
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("faqdex: %w", err)
	}

	store, err := dbRedis.NewStore(dbRedis.Config{Addrs: cfg.addrs, Password: cfg.password})
	if err != nil {
		return nil, fmt.Errorf("faqdex: create redis store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("faqdex: database not ready: %w", err)
	}

	faqRepo := faqrepo.New(store, cfg.keyPrefix)
	faqSvc := faquc.New(faqRepo, cat.Categories).
		WithLimits(cfg.searchDefault, cfg.listDefault, cfg.maxLimit)

	return &Client{
		store:     store,
		faqSvc:    faqSvc,
		prefsSvc:  prefsuc.New(prefsrepo.New(store, cfg.keyPrefix)),
		seedSvc:   seeduc.New(faqRepo, store, seeduc.LockKey(cfg.keyPrefix), cat.Items, zap.NewNop()),
		healthSvc: healthuc.New(store, faqRepo),
		obs:       obs,
	}, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Seed writes the built-in catalog into an empty store, or unconditionally
// when force is set. Returns the number of items written.
func (c *Client) Seed(ctx context.Context, force bool) (n int, err error) {
	start := time.Now()
	defer func() { c.obs.observe("seed", start, err) }()

	n, err = c.seedSvc.Seed(ctx, force)
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	return n, nil
}

// FAQ returns the FAQ read service.
func (c *Client) FAQ() *FAQService {
	return &FAQService{svc: c.faqSvc, obs: c.obs}
}

// Preferences returns the per-user preferences service.
func (c *Client) Preferences() *PreferencesService {
	return &PreferencesService{svc: c.prefsSvc, obs: c.obs}
}

// Health checks the health of all system components.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status:    string(report.Status),
		Checks:    checks,
		Timestamp: report.Timestamp,
	}
}
