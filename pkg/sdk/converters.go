package faqdex

import (
	domfaq "github.com/kailas-cloud/faqdex/internal/domain/faq"
	domprefs "github.com/kailas-cloud/faqdex/internal/domain/preferences"
	faquc "github.com/kailas-cloud/faqdex/internal/usecase/faq"
)

func fromInternalItem(it *domfaq.Item) Item {
	return Item{
		ID:        it.ID(),
		Question:  it.Question(),
		Answer:    it.Answer(),
		Category:  it.Category(),
		Position:  it.Position(),
		CreatedAt: it.CreatedAt(),
		UpdatedAt: it.UpdatedAt(),
	}
}

func fromInternalItems(items []domfaq.Item) []Item {
	out := make([]Item, len(items))
	for i := range items {
		out[i] = fromInternalItem(&items[i])
	}
	return out
}

func fromInternalCategory(c faquc.CategorySummary) Category {
	return Category{
		Name:        c.Category.Name(),
		Icon:        c.Category.Icon(),
		Description: c.Category.Description(),
		Count:       c.Count,
	}
}

func fromInternalPreferences(p *domprefs.Preferences) Preferences {
	return Preferences{
		UserID:       p.UserID(),
		HasSeenIntro: p.HasSeenIntro(),
		Favorites:    p.Favorites(),
		Theme:        Theme(p.Theme()),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}
