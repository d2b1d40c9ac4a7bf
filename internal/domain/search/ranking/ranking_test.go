package ranking

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/kailas-cloud/faqdex/internal/domain/faq"
	"github.com/kailas-cloud/faqdex/internal/domain/faq/catalog"
)

func item(t *testing.T, id, question, answer string) faq.Item {
	t.Helper()
	it, err := faq.New(id, question, answer, "test", 0)
	if err != nil {
		t.Fatalf("faq.New: %v", err)
	}
	return it
}

func ids(items []faq.Item) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].ID()
	}
	return out
}

func TestScore_Weights(t *testing.T) {
	it := item(t, "a", "Wie mache ich Screenshots?", "Drücke die Taste für Screenshots")

	tests := []struct {
		query string
		want  int
	}{
		// phrase in both (10+5) + one word in both (3+1)
		{"screenshots", 19},
		// phrase in question only, words: wie(q) mache(q)
		{"wie mache", 10 + 3 + 3},
		// no phrase; "taste" answer only, "ich" question only
		{"taste ich", 1 + 3},
		// duplicate word scored per occurrence
		{"taste taste", 1 + 1},
		{"nichts", 0},
	}
	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			q, ok := Prepare(tc.query)
			if !ok {
				t.Fatalf("Prepare(%q) rejected", tc.query)
			}
			if got := Score(q, &it); got != tc.want {
				t.Errorf("Score = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestScore_CatalogExamples(t *testing.T) {
	c := catalog.MustLoad()
	appleID := c.Items[0]
	wlan := c.Items[1]

	q, _ := Prepare("Apple-ID")
	if got := Score(q, &appleID); got != 19 {
		t.Errorf("Apple-ID score = %d, want 19", got)
	}

	// "wlan" is in question and answer; "verbinden" only in the answer
	// ("verbinde ich" in the question is not a match).
	q, _ = Prepare("wlan verbinden")
	if got := Score(q, &wlan); got != 3+1+1 {
		t.Errorf("wlan verbinden score = %d, want 5", got)
	}
}

func TestPrepare(t *testing.T) {
	tests := []struct {
		raw    string
		ok     bool
		phrase string
		words  []string
	}{
		{"", false, "", nil},
		{"a", false, "", nil},
		{"   x   ", false, "", nil},
		{"\t\n ", false, "", nil},
		{"ü", false, "", nil},
		{"ab", true, "ab", []string{"ab"}},
		{"  Heim  WLAN ", true, "heim  wlan", []string{"heim", "wlan"}},
		{"ÄÖ", true, "äö", []string{"äö"}},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%q", tc.raw), func(t *testing.T) {
			q, ok := Prepare(tc.raw)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			if q.Phrase() != tc.phrase {
				t.Errorf("phrase = %q, want %q", q.Phrase(), tc.phrase)
			}
			if strings.Join(q.Words(), "|") != strings.Join(tc.words, "|") {
				t.Errorf("words = %v, want %v", q.Words(), tc.words)
			}
		})
	}
}

func TestFold_KeepsDecomposedForm(t *testing.T) {
	decomposed := "O\u0308ffne"
	if got := Fold(decomposed); got != "o\u0308ffne" {
		t.Errorf("Fold(%q) = %q", decomposed, got)
	}
}

func TestSearch_DecomposedQueryCountsRawRunes(t *testing.T) {
	// "e" plus a combining acute accent is two runes, so the query is long enough.
	q, ok := Prepare("e\u0301")
	if !ok || q.Phrase() != "e\u0301" {
		t.Fatalf("Prepare = %q, %v", q.Phrase(), ok)
	}

	items := []faq.Item{item(t, "composed", "Caf\u00e9 im Netz", "Antwort")}
	if got := Search(items, "e\u0301", 10); len(got) != 0 {
		t.Errorf("decomposed query matched composed text: %v", ids(got))
	}
}

func TestSearch_OrdersByScore(t *testing.T) {
	items := []faq.Item{
		item(t, "answer-only", "Allgemeines", "Hier steht etwas über WLAN"),
		item(t, "none", "Pages", "Seiten ordnen"),
		item(t, "question", "WLAN einrichten", "Einstellungen öffnen"),
		item(t, "both", "WLAN Probleme", "WLAN neu starten"),
	}

	got := ids(Search(items, "wlan", 20))
	want := []string{"both", "question", "answer-only"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestSearch_StableForEqualScores(t *testing.T) {
	items := []faq.Item{
		item(t, "c", "iPad laden", "x"),
		item(t, "a", "iPad sperren", "x"),
		item(t, "b", "iPad finden", "x"),
	}

	got := ids(Search(items, "ipad", 20))
	if strings.Join(got, ",") != "c,a,b" {
		t.Errorf("equal scores reordered: %v", got)
	}
}

func TestSearch_EdgeCases(t *testing.T) {
	items := []faq.Item{
		item(t, "1", "WLAN", "WLAN"),
		item(t, "2", "WLAN", "x"),
		item(t, "3", "x", "WLAN"),
	}

	tests := []struct {
		name  string
		items []faq.Item
		query string
		limit int
		want  int
	}{
		{"nil items", nil, "wlan", 20, 0},
		{"whitespace query", items, "     ", 20, 0},
		{"single char", items, " w ", 20, 0},
		{"zero limit", items, "wlan", 0, 0},
		{"negative limit", items, "wlan", -1, 0},
		{"limit truncates", items, "wlan", 2, 2},
		{"limit above matches", items, "wlan", 50, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Search(tc.items, tc.query, tc.limit)
			if got == nil {
				t.Fatal("result must be non-nil")
			}
			if len(got) != tc.want {
				t.Errorf("len = %d, want %d", len(got), tc.want)
			}
		})
	}
}

func TestSearch_DoesNotMutateInput(t *testing.T) {
	items := []faq.Item{
		item(t, "low", "x", "wlan"),
		item(t, "high", "wlan", "wlan"),
	}
	before := ids(items)

	_ = Search(items, "WLAN", 20)

	if strings.Join(ids(items), ",") != strings.Join(before, ",") {
		t.Errorf("input reordered: %v", ids(items))
	}
	if items[0].Answer() != "wlan" {
		t.Error("input item mutated")
	}
}

// --- Properties over random corpora ---

var vocabulary = []string{
	"ipad", "wlan", "apple-id", "pages", "notizen", "backup", "icloud",
	"foto", "video", "schule", "passwort", "Datei", "ORDNER", "über", "tipp",
}

func randomText(r *rand.Rand) string {
	n := 1 + r.IntN(6)
	words := make([]string, n)
	for i := range words {
		words[i] = vocabulary[r.IntN(len(vocabulary))]
	}
	return strings.Join(words, " ")
}

func randomCorpus(t *testing.T, r *rand.Rand) []faq.Item {
	items := make([]faq.Item, r.IntN(30))
	for i := range items {
		items[i] = item(t, fmt.Sprintf("id-%d", i), randomText(r), randomText(r))
	}
	return items
}

func TestSearch_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 7))

	for round := 0; round < 300; round++ {
		items := randomCorpus(t, r)
		query := randomText(r)
		if r.IntN(4) == 0 {
			query = vocabulary[r.IntN(len(vocabulary))]
		}
		limit := r.IntN(40)

		got := Search(items, query, limit)
		q, ok := Prepare(query)
		if !ok {
			t.Fatalf("round %d: query %q unexpectedly rejected", round, query)
		}

		// included iff score > 0, truncated to limit
		var matching []string
		scores := make(map[string]int, len(items))
		for i := range items {
			s := Score(q, &items[i])
			scores[items[i].ID()] = s
			if s > 0 {
				matching = append(matching, items[i].ID())
			}
		}
		if want := min(limit, len(matching)); len(got) != want {
			t.Fatalf("round %d: len = %d, want %d", round, len(got), want)
		}

		// non-increasing scores; ties keep input order
		for i := 1; i < len(got); i++ {
			prev, cur := scores[got[i-1].ID()], scores[got[i].ID()]
			if cur > prev {
				t.Fatalf("round %d: score increased at %d", round, i)
			}
			if cur == prev && indexOf(matching, got[i-1].ID()) > indexOf(matching, got[i].ID()) {
				t.Fatalf("round %d: tie order not preserved at %d", round, i)
			}
		}

		// case-insensitivity
		upper := Search(items, strings.ToUpper(query), limit)
		if strings.Join(ids(upper), ",") != strings.Join(ids(got), ",") {
			t.Fatalf("round %d: case changed result for %q", round, query)
		}
	}
}

func indexOf(s []string, v string) int {
	for i := range s {
		if s[i] == v {
			return i
		}
	}
	return -1
}

func TestSearch_CaseInsensitiveOnCatalog(t *testing.T) {
	items := catalog.MustLoad().Items

	upper := ids(Search(items, "WLAN", 20))
	lower := ids(Search(items, "wlan", 20))
	if len(upper) == 0 {
		t.Fatal("expected matches for WLAN")
	}
	if strings.Join(upper, ",") != strings.Join(lower, ",") {
		t.Errorf("WLAN %v != wlan %v", upper, lower)
	}
}

func BenchmarkSearch_Catalog(b *testing.B) {
	items := catalog.MustLoad().Items
	b.ResetTimer()
	for b.Loop() {
		_ = Search(items, "wlan passwort vergessen", 20)
	}
}
