// Package ranking scores FAQ items against a free-text query.
//
// Scoring is additive over plain substring containment on case-folded text:
// the whole query matching the question or answer earns a phrase bonus, and every
// whitespace-separated query word earns a smaller bonus per field it appears in.
// Repeated query words are scored once per occurrence.
//
// All functions are pure: they read only their arguments and never mutate items,
// so they are safe for concurrent use.
package ranking

import (
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kailas-cloud/faqdex/internal/domain/faq"
)

// Score weights.
const (
	PhraseInQuestion = 10
	PhraseInAnswer   = 5
	WordInQuestion   = 3
	WordInAnswer     = 1
)

// MinQueryLength is the minimum trimmed query length in characters.
const MinQueryLength = 2

// Query is a prepared, case-folded search query.
type Query struct {
	phrase string
	words  []string
}

// Phrase returns the folded, trimmed query.
func (q Query) Phrase() string { return q.phrase }

// Words returns the folded query words, duplicates included.
func (q Query) Words() []string { return q.words }

// folder case-folds text. cases.Caser is stateful, so each call site gets its own.
type folder struct {
	lower cases.Caser
}

func newFolder() *folder {
	return &folder{lower: cases.Lower(language.Und)}
}

func (f *folder) fold(s string) string {
	return f.lower.String(s)
}

// Fold returns s lower-cased, as used for all comparisons. No normalization form is applied.
func Fold(s string) string {
	return newFolder().fold(s)
}

// Prepare trims and folds raw. ok is false when the trimmed query is shorter
// than MinQueryLength characters.
func Prepare(raw string) (q Query, ok bool) {
	return newFolder().prepare(raw)
}

func (f *folder) prepare(raw string) (Query, bool) {
	trimmed := strings.TrimSpace(raw)
	if utf8.RuneCountInString(trimmed) < MinQueryLength {
		return Query{}, false
	}
	phrase := f.fold(trimmed)
	return Query{phrase: phrase, words: strings.Fields(phrase)}, true
}

// Score computes the relevance of item for q. Zero means no match.
func Score(q Query, item *faq.Item) int {
	f := newFolder()
	return q.score(f.fold(item.Question()), f.fold(item.Answer()))
}

func (q Query) score(question, answer string) int {
	score := 0
	if strings.Contains(question, q.phrase) {
		score += PhraseInQuestion
	}
	if strings.Contains(answer, q.phrase) {
		score += PhraseInAnswer
	}
	for _, w := range q.words {
		if strings.Contains(question, w) {
			score += WordInQuestion
		}
		if strings.Contains(answer, w) {
			score += WordInAnswer
		}
	}
	return score
}

type scored struct {
	item  faq.Item
	score int
}

// Search returns the items matching query ordered by descending score, at most limit.
// Items with equal scores keep their input order. A query shorter than
// MinQueryLength or a non-positive limit yields an empty result.
func Search(items []faq.Item, query string, limit int) []faq.Item {
	if limit <= 0 {
		return []faq.Item{}
	}

	f := newFolder()
	q, ok := f.prepare(query)
	if !ok {
		return []faq.Item{}
	}

	matches := make([]scored, 0, len(items))
	for i := range items {
		s := q.score(f.fold(items[i].Question()), f.fold(items[i].Answer()))
		if s > 0 {
			matches = append(matches, scored{item: items[i], score: s})
		}
	}

	slices.SortStableFunc(matches, func(a, b scored) int {
		return b.score - a.score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]faq.Item, len(matches))
	for i := range matches {
		out[i] = matches[i].item
	}
	return out
}
