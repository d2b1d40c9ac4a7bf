package faq

import "github.com/kailas-cloud/faqdex/internal/db"

// Query names of the indexed JSON fields.
const (
	fieldCategory = "category"
	fieldPosition = "position"
)

// buildIndex describes the FAQ index: exact category filter, display order,
// and full-text fields over question and answer.
func buildIndex(name, prefix string) *db.IndexDefinition {
	return db.NewIndex(name).
		OnJSON().
		Prefix(prefix).
		Tag("$.category", fieldCategory).CaseSensitive().
		Numeric("$.position", fieldPosition).Sortable().
		Text("$.question", "question").
		Text("$.answer", "answer").
		MustBuild()
}
