package preferences

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kailas-cloud/faqdex/internal/domain"
	domprefs "github.com/kailas-cloud/faqdex/internal/domain/preferences"
)

// --- Mocks ---

// memRepo is an in-memory Repository.
type memRepo struct {
	data    map[string]domprefs.Preferences
	getErr  error
	saveErr error
	// raceOnCreate simulates another writer winning the NX write.
	raceOnCreate bool
}

func newMemRepo() *memRepo {
	return &memRepo{data: make(map[string]domprefs.Preferences)}
}

func (m *memRepo) Get(_ context.Context, userID string) (domprefs.Preferences, error) {
	if m.getErr != nil {
		return domprefs.Preferences{}, m.getErr
	}
	p, ok := m.data[userID]
	if !ok {
		return domprefs.Preferences{}, domain.ErrNotFound
	}
	return p, nil
}

func (m *memRepo) Create(_ context.Context, p *domprefs.Preferences) (bool, error) {
	if m.raceOnCreate {
		winner, _ := domprefs.New(p.UserID(), true, []string{"winner"}, domprefs.ThemeDark)
		m.data[p.UserID()] = winner
		return false, nil
	}
	if _, ok := m.data[p.UserID()]; ok {
		return false, nil
	}
	m.data[p.UserID()] = *p
	return true, nil
}

func (m *memRepo) Save(_ context.Context, p *domprefs.Preferences) (bool, error) {
	if m.saveErr != nil {
		return false, m.saveErr
	}
	_, existed := m.data[p.UserID()]
	m.data[p.UserID()] = *p
	return existed, nil
}

func newTestService(repo Repository, now time.Time) *Service {
	svc := New(repo)
	svc.now = func() time.Time { return now }
	return svc
}

var (
	t0 = time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	t1 = t0.Add(48 * time.Hour)
)

// --- Get ---

func TestGet_CreatesDefaults(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo, t0)

	p, err := svc.Get(context.Background(), "student-7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.HasSeenIntro() || p.Theme() != domprefs.ThemeLight || len(p.Favorites()) != 0 {
		t.Errorf("expected defaults, got %+v", p)
	}
	if _, ok := repo.data["student-7"]; !ok {
		t.Error("defaults were not persisted")
	}
	if !p.CreatedAt().Equal(t0) {
		t.Errorf("created_at = %v", p.CreatedAt())
	}
}

func TestGet_ReturnsStored(t *testing.T) {
	repo := newMemRepo()
	stored, _ := domprefs.New("u", true, []string{"a"}, domprefs.ThemeDark)
	repo.data["u"] = stored
	svc := newTestService(repo, t0)

	p, err := svc.Get(context.Background(), "u")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.HasSeenIntro() || p.Theme() != domprefs.ThemeDark {
		t.Errorf("unexpected prefs: %+v", p)
	}
}

func TestGet_ConcurrentCreateReloads(t *testing.T) {
	repo := newMemRepo()
	repo.raceOnCreate = true
	svc := newTestService(repo, t0)

	p, err := svc.Get(context.Background(), "u")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Favorites()) != 1 || p.Favorites()[0] != "winner" {
		t.Errorf("expected the concurrently written record, got %+v", p)
	}
}

func TestGet_Validation(t *testing.T) {
	svc := newTestService(newMemRepo(), t0)

	for _, id := range []string{"", strings.Repeat("x", domprefs.MaxUserIDLength+1)} {
		if _, err := svc.Get(context.Background(), id); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("expected ErrValidation for %d-char id, got %v", len(id), err)
		}
	}
}

func TestGet_StoreError(t *testing.T) {
	repo := newMemRepo()
	repo.getErr = errors.New("timeout")
	svc := newTestService(repo, t0)

	_, err := svc.Get(context.Background(), "u")
	if err == nil || errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected store error, got %v", err)
	}
}

// --- Update ---

func TestUpdate_NewRecord(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo, t0)

	modified, err := svc.Update(context.Background(), "u", UpdateInput{
		HasSeenIntro: true,
		Favorites:    []string{"f1", "f2", "f1"},
		Theme:        "dark",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if modified {
		t.Error("expected modified=false for a new record")
	}
	saved := repo.data["u"]
	if strings.Join(saved.Favorites(), ",") != "f1,f2" {
		t.Errorf("favorites = %v", saved.Favorites())
	}
	if !saved.CreatedAt().Equal(t0) || !saved.UpdatedAt().Equal(t0) {
		t.Errorf("timestamps = %v / %v", saved.CreatedAt(), saved.UpdatedAt())
	}
}

func TestUpdate_KeepsCreatedAt(t *testing.T) {
	repo := newMemRepo()
	_, _ = newTestService(repo, t0).Get(context.Background(), "u")

	modified, err := newTestService(repo, t1).Update(context.Background(), "u", UpdateInput{Theme: "light"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !modified {
		t.Error("expected modified=true for an existing record")
	}
	saved := repo.data["u"]
	if !saved.CreatedAt().Equal(t0) {
		t.Errorf("created_at changed to %v", saved.CreatedAt())
	}
	if !saved.UpdatedAt().Equal(t1) {
		t.Errorf("updated_at = %v, want %v", saved.UpdatedAt(), t1)
	}
}

func TestUpdate_Validation(t *testing.T) {
	svc := newTestService(newMemRepo(), t0)

	tests := []struct {
		name   string
		userID string
		in     UpdateInput
	}{
		{"unknown theme", "u", UpdateInput{Theme: "neon"}},
		{"empty favorite", "u", UpdateInput{Favorites: []string{""}}},
		{"empty user", "", UpdateInput{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Update(context.Background(), tc.userID, tc.in); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestUpdate_SaveError(t *testing.T) {
	repo := newMemRepo()
	repo.saveErr = errors.New("READONLY")
	svc := newTestService(repo, t0)

	if _, err := svc.Update(context.Background(), "u", UpdateInput{}); err == nil {
		t.Fatal("expected error")
	}
}
