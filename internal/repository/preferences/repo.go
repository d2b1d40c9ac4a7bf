package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kailas-cloud/faqdex/internal/db"
	"github.com/kailas-cloud/faqdex/internal/domain"
	domprefs "github.com/kailas-cloud/faqdex/internal/domain/preferences"
)

// store is the consumer interface for preference documents (ISP).
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONSetNX(ctx context.Context, key, path string, data []byte) (bool, error)
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	Exists(ctx context.Context, key string) (bool, error)
}

// Repo implements usecase/preferences.Repository.
type Repo struct {
	store  store
	prefix string
}

// New creates a preferences repository. prefix namespaces every key.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// Get returns the stored preferences of userID.
func (r *Repo) Get(ctx context.Context, userID string) (domprefs.Preferences, error) {
	key := r.key(userID)
	raw, err := r.store.JSONGet(ctx, key, "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domprefs.Preferences{}, domain.ErrNotFound
		}
		return domprefs.Preferences{}, fmt.Errorf("json.get %s: %w", key, err)
	}

	var docs []prefsDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return domprefs.Preferences{}, fmt.Errorf("unmarshal preferences %s: %w", userID, err)
	}
	if len(docs) == 0 {
		return domprefs.Preferences{}, domain.ErrNotFound
	}
	return docs[0].toDomain(), nil
}

// Create stores p only if no record exists yet. Reports whether it was written.
func (r *Repo) Create(ctx context.Context, p *domprefs.Preferences) (bool, error) {
	data, err := json.Marshal(toDoc(p))
	if err != nil {
		return false, fmt.Errorf("marshal preferences: %w", err)
	}

	key := r.key(p.UserID())
	written, err := r.store.JSONSetNX(ctx, key, "$", data)
	if err != nil {
		return false, fmt.Errorf("json.set nx %s: %w", key, err)
	}
	return written, nil
}

// Save replaces the record of p.UserID(). Reports whether one already existed.
func (r *Repo) Save(ctx context.Context, p *domprefs.Preferences) (bool, error) {
	data, err := json.Marshal(toDoc(p))
	if err != nil {
		return false, fmt.Errorf("marshal preferences: %w", err)
	}

	key := r.key(p.UserID())
	existed, err := r.store.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("check exists %s: %w", key, err)
	}

	if err := r.store.JSONSet(ctx, key, "$", data); err != nil {
		return false, fmt.Errorf("json.set %s: %w", key, err)
	}
	return existed, nil
}

// Key pattern: {prefix}prefs:{user_id}
func (r *Repo) key(userID string) string {
	return r.prefix + "prefs:" + userID
}
