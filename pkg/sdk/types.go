package faqdex

import "time"

// Theme is the client color scheme.
type Theme string

// Theme constants.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Item is a single FAQ entry.
type Item struct {
	ID        string
	Question  string
	Answer    string
	Category  string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Category is a named FAQ group with its item count.
type Category struct {
	Name        string
	Icon        string
	Description string
	Count       int
}

// ListOptions filters and pages FAQ listings. Zero values mean no filter,
// offset 0 and the default page size.
type ListOptions struct {
	Category string
	Search   string
	Offset   int
	Limit    int
}

// Page is one page of a FAQ listing.
type Page struct {
	Items []Item
	Total int
}

// Preferences are per-user client settings.
type Preferences struct {
	UserID       string
	HasSeenIntro bool
	Favorites    []string
	Theme        Theme
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PreferencesUpdate replaces a user's settings. An empty Theme means ThemeLight.
type PreferencesUpdate struct {
	HasSeenIntro bool
	Favorites    []string
	Theme        Theme
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status    string            // "ok", "degraded", "error"
	Checks    map[string]string // component → "ok"/"empty"/"error"
	Timestamp time.Time
}
