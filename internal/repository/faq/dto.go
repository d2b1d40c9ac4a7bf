package faq

import (
	"time"

	domfaq "github.com/kailas-cloud/faqdex/internal/domain/faq"
)

// itemDoc is the RedisJSON representation of an FAQ item.
type itemDoc struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  string    `json:"category"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toDoc(it *domfaq.Item) itemDoc {
	return itemDoc{
		ID:        it.ID(),
		Question:  it.Question(),
		Answer:    it.Answer(),
		Category:  it.Category(),
		Position:  it.Position(),
		CreatedAt: it.CreatedAt(),
		UpdatedAt: it.UpdatedAt(),
	}
}

func (d *itemDoc) toDomain() domfaq.Item {
	return domfaq.Reconstruct(d.ID, d.Question, d.Answer, d.Category, d.Position, d.CreatedAt, d.UpdatedAt)
}
