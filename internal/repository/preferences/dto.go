package preferences

import (
	"time"

	domprefs "github.com/kailas-cloud/faqdex/internal/domain/preferences"
)

// prefsDoc is the RedisJSON representation of a preferences record.
type prefsDoc struct {
	UserID       string    `json:"user_id"`
	HasSeenIntro bool      `json:"has_seen_intro"`
	Favorites    []string  `json:"favorites"`
	Theme        string    `json:"theme"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toDoc(p *domprefs.Preferences) prefsDoc {
	return prefsDoc{
		UserID:       p.UserID(),
		HasSeenIntro: p.HasSeenIntro(),
		Favorites:    p.Favorites(),
		Theme:        string(p.Theme()),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

// toDomain hydrates stored preferences. Unknown themes fall back to light.
func (d *prefsDoc) toDomain() domprefs.Preferences {
	theme, err := domprefs.ParseTheme(d.Theme)
	if err != nil {
		theme = domprefs.ThemeLight
	}
	return domprefs.Reconstruct(d.UserID, d.HasSeenIntro, d.Favorites, theme, d.CreatedAt, d.UpdatedAt)
}
