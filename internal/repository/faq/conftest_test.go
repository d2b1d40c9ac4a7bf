package faq

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/kailas-cloud/faqdex/internal/db"
	domfaq "github.com/kailas-cloud/faqdex/internal/domain/faq"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	jsonSetMultiFn func(ctx context.Context, items []db.JSONSetItem) error
	jsonGetFn      func(ctx context.Context, key string, paths ...string) ([]byte, error)
	createIndexFn  func(ctx context.Context, def *db.IndexDefinition) error
	indexExistsFn  func(ctx context.Context, name string) (bool, error)
	dropIndexFn    func(ctx context.Context, name string) error
	searchListFn   func(ctx context.Context, q *db.ListQuery) (*db.SearchResult, error)
	searchCountFn  func(ctx context.Context, index, query string) (int, error)
}

func (m *mockStore) JSONSetMulti(ctx context.Context, items []db.JSONSetItem) error {
	if m.jsonSetMultiFn != nil {
		return m.jsonSetMultiFn(ctx, items)
	}
	return nil
}

func (m *mockStore) JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error) {
	if m.jsonGetFn != nil {
		return m.jsonGetFn(ctx, key, paths...)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockStore) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	if m.createIndexFn != nil {
		return m.createIndexFn(ctx, def)
	}
	return nil
}

func (m *mockStore) IndexExists(ctx context.Context, name string) (bool, error) {
	if m.indexExistsFn != nil {
		return m.indexExistsFn(ctx, name)
	}
	return false, nil
}

func (m *mockStore) DropIndex(ctx context.Context, name string) error {
	if m.dropIndexFn != nil {
		return m.dropIndexFn(ctx, name)
	}
	return nil
}

func (m *mockStore) SearchList(ctx context.Context, q *db.ListQuery) (*db.SearchResult, error) {
	if m.searchListFn != nil {
		return m.searchListFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func (m *mockStore) SearchCount(ctx context.Context, index, query string) (int, error) {
	if m.searchCountFn != nil {
		return m.searchCountFn(ctx, index, query)
	}
	return 0, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms, "faqdex:"), ms
}

var testTime = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

func testItem(t *testing.T, id, category string, position int) domfaq.Item {
	t.Helper()
	it, err := domfaq.New(id, "Frage "+id, "Antwort "+id, category, position)
	if err != nil {
		t.Fatalf("domfaq.New: %v", err)
	}
	return it.Stamped(testTime)
}

// entry renders an item the way FT.SEARCH ... RETURN 1 $ does.
func entry(t *testing.T, it domfaq.Item) db.SearchEntry {
	t.Helper()
	data, err := json.Marshal(toDoc(&it))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return db.SearchEntry{Key: "faqdex:faq:" + it.ID(), Fields: map[string]string{"$": string(data)}}
}
