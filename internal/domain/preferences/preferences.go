package preferences

import (
	"fmt"
	"time"
)

// Theme is the client color scheme.
type Theme string

const (
	// ThemeLight is the default theme.
	ThemeLight Theme = "light"
	// ThemeDark is the dark theme.
	ThemeDark Theme = "dark"
)

// ParseTheme validates a theme name. Empty means ThemeLight.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case "", ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("unknown theme %q (want %q or %q)", s, ThemeLight, ThemeDark)
	}
}

// MaxUserIDLength bounds user identifiers.
const MaxUserIDLength = 256

// MaxFavorites bounds the favorites list.
const MaxFavorites = 500

// Preferences is a per-user settings record (immutable value object).
type Preferences struct {
	userID       string
	hasSeenIntro bool
	favorites    []string
	theme        Theme
	createdAt    time.Time
	updatedAt    time.Time
}

// Default returns the preferences a user starts with.
func Default(userID string, now time.Time) Preferences {
	return Preferences{
		userID:    userID,
		favorites: []string{},
		theme:     ThemeLight,
		createdAt: now,
		updatedAt: now,
	}
}

// New validates and creates Preferences. Favorites are de-duplicated keeping first occurrence.
func New(userID string, hasSeenIntro bool, favorites []string, theme Theme) (Preferences, error) {
	if err := ValidateUserID(userID); err != nil {
		return Preferences{}, err
	}
	if len(favorites) > MaxFavorites {
		return Preferences{}, fmt.Errorf("too many favorites (max %d)", MaxFavorites)
	}

	favs := make([]string, 0, len(favorites))
	seen := make(map[string]bool, len(favorites))
	for _, f := range favorites {
		if f == "" {
			return Preferences{}, fmt.Errorf("favorite ID must not be empty")
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		favs = append(favs, f)
	}

	return Preferences{
		userID:       userID,
		hasSeenIntro: hasSeenIntro,
		favorites:    favs,
		theme:        theme,
	}, nil
}

// ValidateUserID checks a user identifier.
func ValidateUserID(userID string) error {
	if userID == "" {
		return fmt.Errorf("user ID is required")
	}
	if len(userID) > MaxUserIDLength {
		return fmt.Errorf("user ID too long (max %d)", MaxUserIDLength)
	}
	return nil
}

// Reconstruct creates Preferences without validation (storage hydration).
func Reconstruct(
	userID string, hasSeenIntro bool, favorites []string, theme Theme, createdAt, updatedAt time.Time,
) Preferences {
	if favorites == nil {
		favorites = []string{}
	}
	return Preferences{
		userID: userID, hasSeenIntro: hasSeenIntro, favorites: favorites, theme: theme,
		createdAt: createdAt, updatedAt: updatedAt,
	}
}

// UserID returns the owner.
func (p *Preferences) UserID() string { return p.userID }

// HasSeenIntro reports whether the onboarding intro was dismissed.
func (p *Preferences) HasSeenIntro() bool { return p.hasSeenIntro }

// Favorites returns the favorite FAQ item IDs in insertion order.
func (p *Preferences) Favorites() []string { return p.favorites }

// Theme returns the color scheme.
func (p *Preferences) Theme() Theme { return p.theme }

// CreatedAt returns the creation time.
func (p *Preferences) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the last update time.
func (p *Preferences) UpdatedAt() time.Time { return p.updatedAt }

// WithTimestamps returns a copy with the given timestamps.
func (p *Preferences) WithTimestamps(createdAt, updatedAt time.Time) Preferences {
	c := *p
	c.createdAt = createdAt
	c.updatedAt = updatedAt
	return c
}
