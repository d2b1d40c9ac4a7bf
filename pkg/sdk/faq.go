package faqdex

import (
	"context"
	"fmt"
	"time"

	faquc "github.com/kailas-cloud/faqdex/internal/usecase/faq"
)

// FAQService reads FAQ items.
type FAQService struct {
	svc faqUseCase
	obs *observer
}

// Categories returns all categories with their item counts.
func (s *FAQService) Categories(ctx context.Context) (_ []Category, err error) {
	start := time.Now()
	defer func() { s.obs.observe("faq.categories", start, err) }()

	cats, err := s.svc.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}
	out := make([]Category, len(cats))
	for i, c := range cats {
		out[i] = fromInternalCategory(c)
	}
	return out, nil
}

// List returns a page of items ordered by catalog position.
func (s *FAQService) List(ctx context.Context, opts ListOptions) (_ Page, err error) {
	start := time.Now()
	defer func() { s.obs.observe("faq.list", start, err) }()

	res, err := s.svc.List(ctx, faquc.ListRequest{
		Category: opts.Category,
		Search:   opts.Search,
		Offset:   opts.Offset,
		Limit:    opts.Limit,
	})
	if err != nil {
		return Page{}, fmt.Errorf("list faq: %w", err)
	}
	return Page{Items: fromInternalItems(res.Items), Total: res.Total}, nil
}

// Get returns a single item by ID.
func (s *FAQService) Get(ctx context.Context, id string) (_ Item, err error) {
	start := time.Now()
	defer func() { s.obs.observe("faq.get", start, err) }()

	it, err := s.svc.Get(ctx, id)
	if err != nil {
		return Item{}, fmt.Errorf("get faq: %w", err)
	}
	return fromInternalItem(&it), nil
}

// Search ranks all items against query, best first. limit 0 uses the default.
func (s *FAQService) Search(ctx context.Context, query string, limit int) (_ []Item, err error) {
	start := time.Now()
	defer func() { s.obs.observe("faq.search", start, err) }()

	var n *int
	if limit != 0 {
		n = &limit
	}
	items, err := s.svc.Search(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return fromInternalItems(items), nil
}
