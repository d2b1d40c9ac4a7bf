package chi

import (
	"time"

	domfaq "github.com/kailas-cloud/faqdex/internal/domain/faq"
	domprefs "github.com/kailas-cloud/faqdex/internal/domain/preferences"
	faquc "github.com/kailas-cloud/faqdex/internal/usecase/faq"
)

// ErrorCode is a machine-readable error identifier.
type ErrorCode string

// Error codes returned in ErrorResponse.Code.
const (
	ErrorCodeBadRequest       ErrorCode = "bad_request"
	ErrorCodeValidationFailed ErrorCode = "validation_failed"
	ErrorCodeFAQNotFound      ErrorCode = "faq_not_found"
	ErrorCodeNotFound         ErrorCode = "not_found"
	ErrorCodeUnauthorized     ErrorCode = "unauthorized"
	ErrorCodeSeedInProgress   ErrorCode = "seed_in_progress"
	ErrorCodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// CategoryResponse is an element of GET /api/categories.
type CategoryResponse struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

// FAQItemResponse is a single FAQ item.
type FAQItemResponse struct {
	ID        string     `json:"id"`
	Question  string     `json:"question"`
	Answer    string     `json:"answer"`
	Category  string     `json:"category"`
	Position  int        `json:"position"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// PreferencesResponse is the body of GET /api/preferences/{userID}.
type PreferencesResponse struct {
	UserID       string    `json:"user_id"`
	HasSeenIntro bool      `json:"has_seen_intro"`
	Favorites    []string  `json:"favorites"`
	Theme        string    `json:"theme"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PreferencesRequest is the body of PUT /api/preferences/{userID}.
// UserID is accepted for compatibility and ignored in favor of the path.
type PreferencesRequest struct {
	UserID       string   `json:"user_id,omitempty"`
	HasSeenIntro bool     `json:"has_seen_intro"`
	Favorites    []string `json:"favorites"`
	Theme        string   `json:"theme"`
}

// UpdateResponse is the body of PUT /api/preferences/{userID}.
type UpdateResponse struct {
	Success  bool `json:"success"`
	Modified bool `json:"modified"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks"`
	Timestamp time.Time         `json:"timestamp"`
}

func categoriesToAPI(in []faquc.CategorySummary) []CategoryResponse {
	out := make([]CategoryResponse, len(in))
	for i, c := range in {
		out[i] = CategoryResponse{
			Name:        c.Category.Name(),
			Icon:        c.Category.Icon(),
			Description: c.Category.Description(),
			Count:       c.Count,
		}
	}
	return out
}

func itemToAPI(it *domfaq.Item) FAQItemResponse {
	resp := FAQItemResponse{
		ID:       it.ID(),
		Question: it.Question(),
		Answer:   it.Answer(),
		Category: it.Category(),
		Position: it.Position(),
	}
	if t := it.CreatedAt(); !t.IsZero() {
		resp.CreatedAt = &t
	}
	if t := it.UpdatedAt(); !t.IsZero() {
		resp.UpdatedAt = &t
	}
	return resp
}

func itemsToAPI(items []domfaq.Item) []FAQItemResponse {
	out := make([]FAQItemResponse, len(items))
	for i := range items {
		out[i] = itemToAPI(&items[i])
	}
	return out
}

func preferencesToAPI(p *domprefs.Preferences) PreferencesResponse {
	return PreferencesResponse{
		UserID:       p.UserID(),
		HasSeenIntro: p.HasSeenIntro(),
		Favorites:    p.Favorites(),
		Theme:        string(p.Theme()),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}
