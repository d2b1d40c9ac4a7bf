package catalog

import (
	"strings"
	"testing"
)

func TestLoad_Embedded(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Items) != 26 {
		t.Errorf("items = %d, want 26", len(c.Items))
	}
	if len(c.Categories) != 8 {
		t.Errorf("categories = %d, want 8", len(c.Categories))
	}

	first := c.Items[0]
	if first.ID() != "8e678d11-9107-4ecf-ad81-34f9ec663d94" {
		t.Errorf("first ID = %q", first.ID())
	}
	if !strings.Contains(first.Question(), "Apple-ID") {
		t.Errorf("first question = %q", first.Question())
	}

	for i := range c.Items {
		if c.Items[i].Position() != i {
			t.Errorf("item %s position = %d, want %d", c.Items[i].ID(), c.Items[i].Position(), i)
		}
	}

	counts := c.CountByCategory()
	for _, cat := range c.Categories {
		if counts[cat.Name()] == 0 {
			t.Errorf("category %q has no items", cat.Name())
		}
		if cat.Icon() == "" {
			t.Errorf("category %q has no icon", cat.Name())
		}
	}
}

func TestLoad_MultilineAnswerPreserved(t *testing.T) {
	c := MustLoad()
	wlan := c.Items[1]
	if !strings.HasPrefix(wlan.Answer(), "1. Öffne 'Einstellungen' > 'WLAN'\n2.") {
		t.Errorf("answer lost its line structure: %q", wlan.Answer())
	}
	if strings.HasSuffix(wlan.Answer(), "\n") {
		t.Error("answer should not carry a trailing newline")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "invalid yaml",
			doc:  "items: [",
			want: "parse catalog",
		},
		{
			name: "unknown category",
			doc: `
categories:
  - name: A
items:
  - {id: x1, category: B, question: q, answer: a}
`,
			want: "unknown category",
		},
		{
			name: "duplicate id",
			doc: `
categories:
  - name: A
items:
  - {id: x1, category: A, question: q, answer: a}
  - {id: x1, category: A, question: q2, answer: a2}
`,
			want: "duplicate item ID",
		},
		{
			name: "duplicate category",
			doc: `
categories:
  - name: A
  - name: A
`,
			want: "duplicate category",
		},
		{
			name: "invalid item",
			doc: `
categories:
  - name: A
items:
  - {id: x1, category: A, question: "", answer: a}
`,
			want: "question is required",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not contain %q", err, tc.want)
			}
		})
	}
}
