package seed

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/faqdex/internal/domain"
	domfaq "github.com/kailas-cloud/faqdex/internal/domain/faq"
)

// DefaultLockTTL bounds how long a crashed seeder can block others.
const DefaultLockTTL = 30 * time.Second

// Service writes the built-in catalog into an empty store.
type Service struct {
	repo     Repository
	locker   Locker
	lockKey  string
	lockTTL  time.Duration
	items    []domfaq.Item
	recorder Recorder
	logger   *zap.Logger
	now      func() time.Time
}

// New creates a seed service for items. lockKey names the lock shared by all instances.
func New(repo Repository, locker Locker, lockKey string, items []domfaq.Item, logger *zap.Logger) *Service {
	return &Service{
		repo:    repo,
		locker:  locker,
		lockKey: lockKey,
		lockTTL: DefaultLockTTL,
		items:   items,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// WithRecorder attaches seed observability.
func (s *Service) WithRecorder(r Recorder) *Service {
	s.recorder = r
	return s
}

// Seed ensures the FAQ index and writes the catalog when the store holds no
// items, or unconditionally when force is set. Returns the number of items
// written. domain.ErrSeedInProgress means another instance holds the lock.
func (s *Service) Seed(ctx context.Context, force bool) (int, error) {
	if err := s.repo.EnsureIndex(ctx); err != nil {
		return 0, fmt.Errorf("ensure index: %w", err)
	}

	if !force {
		empty, err := s.storeEmpty(ctx)
		if err != nil || !empty {
			return 0, err
		}
	}

	token := strconv.FormatInt(s.now().UnixNano(), 10)
	acquired, err := s.locker.SetNX(ctx, s.lockKey, []byte(token), s.lockTTL)
	if err != nil {
		return 0, fmt.Errorf("acquire seed lock: %w", err)
	}
	if !acquired {
		return 0, domain.ErrSeedInProgress
	}
	defer func() {
		released, err := s.locker.DelIfValue(context.WithoutCancel(ctx), s.lockKey, []byte(token))
		switch {
		case err != nil:
			s.logger.Warn("Failed to release seed lock", zap.String("key", s.lockKey), zap.Error(err))
		case !released:
			s.logger.Warn("Seed lock expired before release", zap.String("key", s.lockKey), zap.Duration("ttl", s.lockTTL))
		}
	}()

	// Another instance may have finished between the first check and the lock.
	if !force {
		empty, err := s.storeEmpty(ctx)
		if err != nil || !empty {
			return 0, err
		}
	}

	now := s.now()
	stamped := make([]domfaq.Item, len(s.items))
	for i := range s.items {
		stamped[i] = s.items[i].Stamped(now)
	}

	if err := s.repo.UpsertMany(ctx, stamped); err != nil {
		return 0, fmt.Errorf("write catalog: %w", err)
	}

	if s.recorder != nil {
		s.recorder.ObserveSeed(len(stamped))
	}
	s.logger.Info("Seeded FAQ catalog", zap.Int("items", len(stamped)), zap.Bool("force", force))
	return len(stamped), nil
}

func (s *Service) storeEmpty(ctx context.Context) (bool, error) {
	n, err := s.repo.Count(ctx, "")
	if err != nil {
		return false, fmt.Errorf("count faq: %w", err)
	}
	return n == 0, nil
}

// LockKey returns the seed lock key under a storage key prefix.
func LockKey(prefix string) string {
	return prefix + "seed:lock"
}
