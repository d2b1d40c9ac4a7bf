package faq

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kailas-cloud/faqdex/internal/domain"
	domfaq "github.com/kailas-cloud/faqdex/internal/domain/faq"
	"github.com/kailas-cloud/faqdex/internal/domain/search/ranking"
	"github.com/kailas-cloud/faqdex/internal/metrics"
)

// CategorySummary is a category with the number of stored items in it.
type CategorySummary struct {
	Category domfaq.Category
	Count    int
}

// ListRequest filters and pages FAQ items. Zero Limit means the default page size.
type ListRequest struct {
	Category string
	Search   string
	Offset   int
	Limit    int
}

// ListResult is one page of FAQ items.
type ListResult struct {
	Items  []domfaq.Item
	Total  int
	Offset int
	Limit  int
}

// Service serves the FAQ catalog: categories, listing, lookup and ranked search.
type Service struct {
	repo       Repository
	categories []domfaq.Category
	recorder   SearchRecorder

	searchDefaultLimit int
	listDefaultLimit   int
	maxLimit           int
}

// New creates an FAQ service. categories is the static category metadata.
func New(repo Repository, categories []domfaq.Category) *Service {
	return &Service{
		repo:               repo,
		categories:         categories,
		searchDefaultLimit: 20,
		listDefaultLimit:   100,
		maxLimit:           1000,
	}
}

// WithLimits configures default and maximum page sizes. Non-positive values keep the defaults.
func (s *Service) WithLimits(searchDefault, listDefault, maxLimit int) *Service {
	if searchDefault > 0 {
		s.searchDefaultLimit = searchDefault
	}
	if listDefault > 0 {
		s.listDefaultLimit = listDefault
	}
	if maxLimit > 0 {
		s.maxLimit = maxLimit
	}
	return s
}

// WithRecorder attaches search observability.
func (s *Service) WithRecorder(r SearchRecorder) *Service {
	s.recorder = r
	return s
}

// Categories returns every known category with its stored item count, in catalog order.
func (s *Service) Categories(ctx context.Context) ([]CategorySummary, error) {
	out := make([]CategorySummary, 0, len(s.categories))
	for _, c := range s.categories {
		n, err := s.repo.Count(ctx, c.Name())
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", c.Name(), err)
		}
		out = append(out, CategorySummary{Category: c, Count: n})
	}
	return out, nil
}

// List returns items in display order, optionally restricted to a category and
// to items whose question or answer contains req.Search (case-insensitive).
// The text filter is applied before paging.
func (s *Service) List(ctx context.Context, req ListRequest) (ListResult, error) {
	limit, err := s.resolveLimit(req.Limit, s.listDefaultLimit)
	if err != nil {
		return ListResult{}, err
	}
	if req.Offset < 0 {
		return ListResult{}, fmt.Errorf("offset must be non-negative: %w", domain.ErrValidation)
	}

	needle := strings.TrimSpace(req.Search)
	if needle == "" {
		items, total, err := s.repo.List(ctx, req.Category, req.Offset, limit)
		if err != nil {
			return ListResult{}, fmt.Errorf("list faq: %w", err)
		}
		return ListResult{Items: nonNil(items), Total: total, Offset: req.Offset, Limit: limit}, nil
	}

	all, err := s.repo.All(ctx, req.Category)
	if err != nil {
		return ListResult{}, fmt.Errorf("load faq: %w", err)
	}
	matched := filterContains(all, needle)

	return ListResult{
		Items:  page(matched, req.Offset, limit),
		Total:  len(matched),
		Offset: req.Offset,
		Limit:  limit,
	}, nil
}

// Get returns one item or domain.ErrFAQNotFound.
func (s *Service) Get(ctx context.Context, id string) (domfaq.Item, error) {
	if id == "" {
		return domfaq.Item{}, fmt.Errorf("faq ID is required: %w", domain.ErrValidation)
	}
	it, err := s.repo.Get(ctx, id)
	if err != nil {
		return domfaq.Item{}, fmt.Errorf("get faq %s: %w", id, err)
	}
	return it, nil
}

// Search ranks every stored item against query and returns at most limit results.
// A nil limit means the default; an explicit zero yields no results.
// Queries shorter than ranking.MinQueryLength return an empty result without loading anything.
func (s *Service) Search(ctx context.Context, query string, limit *int) ([]domfaq.Item, error) {
	n := s.searchDefaultLimit
	if limit != nil {
		if *limit < 0 {
			return nil, fmt.Errorf("limit must be non-negative: %w", domain.ErrValidation)
		}
		n = min(*limit, s.maxLimit)
	}

	start := time.Now()
	if _, ok := ranking.Prepare(query); !ok {
		s.observe(metrics.OutcomeShort, 0, start)
		return []domfaq.Item{}, nil
	}
	if n == 0 {
		s.observe(metrics.OutcomeMiss, 0, start)
		return []domfaq.Item{}, nil
	}

	candidates, err := s.repo.All(ctx, "")
	if err != nil {
		s.observe(metrics.OutcomeError, 0, start)
		return nil, fmt.Errorf("load search candidates: %w", err)
	}

	results := ranking.Search(candidates, query, n)

	outcome := metrics.OutcomeHit
	if len(results) == 0 {
		outcome = metrics.OutcomeMiss
	}
	s.observe(outcome, len(results), start)
	return results, nil
}

func (s *Service) observe(outcome string, n int, start time.Time) {
	if s.recorder != nil {
		s.recorder.ObserveSearch(outcome, n, time.Since(start))
	}
}

// resolveLimit applies the default for zero and caps at maxLimit.
func (s *Service) resolveLimit(limit, def int) (int, error) {
	switch {
	case limit < 0:
		return 0, fmt.Errorf("limit must be non-negative: %w", domain.ErrValidation)
	case limit == 0:
		limit = def
	}
	return min(limit, s.maxLimit), nil
}

func filterContains(items []domfaq.Item, needle string) []domfaq.Item {
	needle = ranking.Fold(needle)
	out := make([]domfaq.Item, 0, len(items))
	for i := range items {
		if strings.Contains(ranking.Fold(items[i].Question()), needle) ||
			strings.Contains(ranking.Fold(items[i].Answer()), needle) {
			out = append(out, items[i])
		}
	}
	return out
}

func page(items []domfaq.Item, offset, limit int) []domfaq.Item {
	if offset >= len(items) {
		return []domfaq.Item{}
	}
	end := min(offset+limit, len(items))
	return items[offset:end]
}

func nonNil(items []domfaq.Item) []domfaq.Item {
	if items == nil {
		return []domfaq.Item{}
	}
	return items
}
