package faq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kailas-cloud/faqdex/internal/db"
	"github.com/kailas-cloud/faqdex/internal/domain"
	domfaq "github.com/kailas-cloud/faqdex/internal/domain/faq"
)

// pageSize bounds a single FT.SEARCH round-trip when reading a whole category.
const pageSize = 500

// store is the consumer interface for FAQ items (ISP).
type store interface {
	JSONSetMulti(ctx context.Context, items []db.JSONSetItem) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
	DropIndex(ctx context.Context, name string) error
	SearchList(ctx context.Context, q *db.ListQuery) (*db.SearchResult, error)
	SearchCount(ctx context.Context, index, query string) (int, error)
}

// Repo implements usecase/faq.Repository and usecase/seed.Repository.
type Repo struct {
	store  store
	prefix string
}

// New creates an FAQ repository. prefix namespaces every key, e.g. "faqdex:".
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// EnsureIndex creates the FAQ index unless it already exists.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	exists, err := r.store.IndexExists(ctx, r.indexName())
	if err != nil {
		return fmt.Errorf("check index: %w", err)
	}
	if exists {
		return nil
	}

	err = r.store.CreateIndex(ctx, buildIndex(r.indexName(), r.itemPrefix()))
	if err != nil && !errors.Is(err, db.ErrIndexExists) {
		return fmt.Errorf("create index: %w", err)
	}
	return nil
}

// DropIndex removes the FAQ index, keeping the stored documents. A missing index is not an error.
func (r *Repo) DropIndex(ctx context.Context) error {
	if err := r.store.DropIndex(ctx, r.indexName()); err != nil && !errors.Is(err, db.ErrIndexNotFound) {
		return fmt.Errorf("drop index: %w", err)
	}
	return nil
}

// UpsertMany writes items in one pipelined batch, replacing existing documents.
func (r *Repo) UpsertMany(ctx context.Context, items []domfaq.Item) error {
	batch := make([]db.JSONSetItem, len(items))
	for i := range items {
		data, err := json.Marshal(toDoc(&items[i]))
		if err != nil {
			return fmt.Errorf("marshal faq %s: %w", items[i].ID(), err)
		}
		batch[i] = db.JSONSetItem{Key: r.itemKey(items[i].ID()), Path: "$", Data: data}
	}

	if err := r.store.JSONSetMulti(ctx, batch); err != nil {
		return fmt.Errorf("json.set faq batch: %w", err)
	}
	return nil
}

// Get returns an item by ID.
func (r *Repo) Get(ctx context.Context, id string) (domfaq.Item, error) {
	key := r.itemKey(id)
	raw, err := r.store.JSONGet(ctx, key, "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domfaq.Item{}, domain.ErrFAQNotFound
		}
		return domfaq.Item{}, fmt.Errorf("json.get %s: %w", key, err)
	}

	var docs []itemDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return domfaq.Item{}, fmt.Errorf("unmarshal faq %s: %w", id, err)
	}
	if len(docs) == 0 {
		return domfaq.Item{}, domain.ErrFAQNotFound
	}
	return docs[0].toDomain(), nil
}

// List returns one page of items in display order plus the total number of
// items matching category. An empty category matches every item.
func (r *Repo) List(ctx context.Context, category string, offset, limit int) ([]domfaq.Item, int, error) {
	result, err := r.store.SearchList(ctx, &db.ListQuery{
		IndexName:    r.indexName(),
		Query:        categoryQuery(category),
		Offset:       offset,
		Limit:        limit,
		ReturnFields: []string{"$"},
		SortBy:       fieldPosition,
		Order:        db.SortAsc,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("search list faq: %w", err)
	}

	items, err := parseEntries(result.Entries)
	if err != nil {
		return nil, 0, err
	}
	return items, result.Total, nil
}

// All returns every item of category (or all items) in display order.
func (r *Repo) All(ctx context.Context, category string) ([]domfaq.Item, error) {
	var all []domfaq.Item
	for offset := 0; ; offset += pageSize {
		page, total, err := r.List(ctx, category, offset, pageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) == 0 || offset+pageSize >= total {
			break
		}
	}
	if all == nil {
		all = []domfaq.Item{}
	}
	return all, nil
}

// Count returns the number of stored items in category (or overall).
// A missing index counts as zero.
func (r *Repo) Count(ctx context.Context, category string) (int, error) {
	n, err := r.store.SearchCount(ctx, r.indexName(), categoryQuery(category))
	if err != nil {
		if errors.Is(err, db.ErrIndexNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("search count faq: %w", err)
	}
	return n, nil
}

// Key patterns: {prefix}faq:{id}, {prefix}faq:idx

func (r *Repo) itemPrefix() string {
	return r.prefix + "faq:"
}

func (r *Repo) itemKey(id string) string {
	return r.itemPrefix() + id
}

func (r *Repo) indexName() string {
	return r.prefix + "faq:idx"
}

func categoryQuery(category string) string {
	if category == "" {
		return db.MatchAll
	}
	return db.TagQuery(fieldCategory, category)
}

func parseEntries(entries []db.SearchEntry) ([]domfaq.Item, error) {
	items := make([]domfaq.Item, 0, len(entries))
	for _, entry := range entries {
		raw := entry.Fields["$"]
		if raw == "" {
			continue
		}
		var doc itemDoc
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", entry.Key, err)
		}
		items = append(items, doc.toDomain())
	}
	return items, nil
}
