package faq

import (
	"fmt"
	"regexp"
	"time"
)

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// MaxIDLength is the maximum FAQ item ID length.
const MaxIDLength = 128

// Item is a single FAQ entry (immutable value object).
type Item struct {
	id        string
	question  string
	answer    string
	category  string
	position  int
	createdAt time.Time
	updatedAt time.Time
}

// New validates and creates an Item.
// ID: ^[a-zA-Z0-9_-]+$, 1-128 chars. Question, answer and category are required.
func New(id, question, answer, category string, position int) (Item, error) {
	if id == "" {
		return Item{}, fmt.Errorf("faq ID is required")
	}
	if len(id) > MaxIDLength {
		return Item{}, fmt.Errorf("faq ID too long (max %d)", MaxIDLength)
	}
	if !idRegex.MatchString(id) {
		return Item{}, fmt.Errorf("faq ID must be alphanumeric with underscores and hyphens")
	}
	if question == "" {
		return Item{}, fmt.Errorf("question is required")
	}
	if answer == "" {
		return Item{}, fmt.Errorf("answer is required")
	}
	if category == "" {
		return Item{}, fmt.Errorf("category is required")
	}
	if position < 0 {
		return Item{}, fmt.Errorf("position must be non-negative")
	}

	return Item{id: id, question: question, answer: answer, category: category, position: position}, nil
}

// Reconstruct creates an Item without validation (storage hydration).
func Reconstruct(
	id, question, answer, category string, position int, createdAt, updatedAt time.Time,
) Item {
	return Item{
		id: id, question: question, answer: answer, category: category,
		position: position, createdAt: createdAt, updatedAt: updatedAt,
	}
}

// ID returns the item identifier.
func (i *Item) ID() string { return i.id }

// Question returns the question text.
func (i *Item) Question() string { return i.question }

// Answer returns the answer text.
func (i *Item) Answer() string { return i.answer }

// Category returns the category name.
func (i *Item) Category() string { return i.category }

// Position returns the display order within the catalog.
func (i *Item) Position() int { return i.position }

// CreatedAt returns the creation time (zero if never stored).
func (i *Item) CreatedAt() time.Time { return i.createdAt }

// UpdatedAt returns the last update time (zero if never stored).
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }

// Stamped returns a copy with both timestamps set to t.
func (i *Item) Stamped(t time.Time) Item {
	c := *i
	c.createdAt = t
	c.updatedAt = t
	return c
}
