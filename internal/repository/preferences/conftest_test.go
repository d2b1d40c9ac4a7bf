package preferences

import (
	"context"
	"testing"

	"github.com/kailas-cloud/faqdex/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	jsonSetFn   func(ctx context.Context, key, path string, data []byte) error
	jsonSetNXFn func(ctx context.Context, key, path string, data []byte) (bool, error)
	jsonGetFn   func(ctx context.Context, key string, paths ...string) ([]byte, error)
	existsFn    func(ctx context.Context, key string) (bool, error)
}

func (m *mockStore) JSONSet(ctx context.Context, key, path string, data []byte) error {
	if m.jsonSetFn != nil {
		return m.jsonSetFn(ctx, key, path, data)
	}
	return nil
}

func (m *mockStore) JSONSetNX(ctx context.Context, key, path string, data []byte) (bool, error) {
	if m.jsonSetNXFn != nil {
		return m.jsonSetNXFn(ctx, key, path, data)
	}
	return true, nil
}

func (m *mockStore) JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error) {
	if m.jsonGetFn != nil {
		return m.jsonGetFn(ctx, key, paths...)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockStore) Exists(ctx context.Context, key string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, key)
	}
	return false, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms, "faqdex:"), ms
}
