package faqdex

import (
	"context"
	"fmt"
	"time"

	prefsuc "github.com/kailas-cloud/faqdex/internal/usecase/preferences"
)

// PreferencesService reads and writes per-user preferences.
type PreferencesService struct {
	svc preferencesUseCase
	obs *observer
}

// Get returns a user's preferences, creating defaults on first access.
func (s *PreferencesService) Get(ctx context.Context, userID string) (_ Preferences, err error) {
	start := time.Now()
	defer func() { s.obs.observe("preferences.get", start, err) }()

	p, err := s.svc.Get(ctx, userID)
	if err != nil {
		return Preferences{}, fmt.Errorf("get preferences: %w", err)
	}
	return fromInternalPreferences(&p), nil
}

// Update replaces a user's preferences. Reports whether a record already existed.
func (s *PreferencesService) Update(ctx context.Context, userID string, u PreferencesUpdate) (_ bool, err error) {
	start := time.Now()
	defer func() { s.obs.observe("preferences.update", start, err) }()

	modified, err := s.svc.Update(ctx, userID, prefsuc.UpdateInput{
		HasSeenIntro: u.HasSeenIntro,
		Favorites:    u.Favorites,
		Theme:        string(u.Theme),
	})
	if err != nil {
		return false, fmt.Errorf("update preferences: %w", err)
	}
	return modified, nil
}
