package preferences

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/faqdex/internal/domain"
	domprefs "github.com/kailas-cloud/faqdex/internal/domain/preferences"
)

// UpdateInput is the client-writable part of a preferences record.
type UpdateInput struct {
	HasSeenIntro bool
	Favorites    []string
	Theme        string
}

// Service reads and writes per-user preferences.
type Service struct {
	repo Repository
	now  func() time.Time
}

// New creates a preferences service.
func New(repo Repository) *Service {
	return &Service{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// Get returns the preferences of userID, creating the defaults on first access.
func (s *Service) Get(ctx context.Context, userID string) (domprefs.Preferences, error) {
	if err := domprefs.ValidateUserID(userID); err != nil {
		return domprefs.Preferences{}, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	p, err := s.repo.Get(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domprefs.Preferences{}, fmt.Errorf("get preferences: %w", err)
	}

	defaults := domprefs.Default(userID, s.now())
	written, err := s.repo.Create(ctx, &defaults)
	if err != nil {
		return domprefs.Preferences{}, fmt.Errorf("create default preferences: %w", err)
	}
	if written {
		return defaults, nil
	}

	// A concurrent request created the record first.
	p, err = s.repo.Get(ctx, userID)
	if err != nil {
		return domprefs.Preferences{}, fmt.Errorf("reload preferences: %w", err)
	}
	return p, nil
}

// Update replaces the preferences of userID with in. The creation time of an
// existing record is kept. modified reports whether a record already existed.
func (s *Service) Update(ctx context.Context, userID string, in UpdateInput) (modified bool, err error) {
	theme, err := domprefs.ParseTheme(in.Theme)
	if err != nil {
		return false, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	p, err := domprefs.New(userID, in.HasSeenIntro, in.Favorites, theme)
	if err != nil {
		return false, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	now := s.now()
	createdAt := now
	current, err := s.repo.Get(ctx, userID)
	switch {
	case err == nil:
		createdAt = current.CreatedAt()
	case !errors.Is(err, domain.ErrNotFound):
		return false, fmt.Errorf("get preferences: %w", err)
	}

	p = p.WithTimestamps(createdAt, now)
	existed, err := s.repo.Save(ctx, &p)
	if err != nil {
		return false, fmt.Errorf("save preferences: %w", err)
	}
	return existed, nil
}
