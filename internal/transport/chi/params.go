package chi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ListFAQParams are the query parameters of GET /api/faq.
type ListFAQParams struct {
	Category *string
	Search   *string
	Offset   *int
	Limit    *int
}

// SearchParams are the query parameters of GET /api/search.
type SearchParams struct {
	Q     string
	Limit *int
}

func bindListFAQParams(r *http.Request) (ListFAQParams, error) {
	var p ListFAQParams
	q := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "category", q, &p.Category); err != nil {
		return p, fmt.Errorf("invalid format for parameter category: %w", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "search", q, &p.Search); err != nil {
		return p, fmt.Errorf("invalid format for parameter search: %w", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "offset", q, &p.Offset); err != nil {
		return p, fmt.Errorf("invalid format for parameter offset: %w", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", q, &p.Limit); err != nil {
		return p, fmt.Errorf("invalid format for parameter limit: %w", err)
	}
	return p, nil
}

func bindSearchParams(r *http.Request) (SearchParams, error) {
	var p SearchParams
	q := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, true, "q", q, &p.Q); err != nil {
		return p, fmt.Errorf("invalid format for parameter q: %w", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", q, &p.Limit); err != nil {
		return p, fmt.Errorf("invalid format for parameter limit: %w", err)
	}
	return p, nil
}

func bindPathParam(r *http.Request, name string) (string, error) {
	var v string
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &v,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false})
	if err != nil {
		return "", fmt.Errorf("invalid format for parameter %s: %w", name, err)
	}
	return v, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
