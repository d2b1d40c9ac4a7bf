// Package catalog ships the built-in FAQ dataset that seeds an empty store.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/faqdex/internal/domain/faq"
)

//go:embed catalog.yaml
var catalogYAML []byte

type fileCategory struct {
	Name        string `yaml:"name"`
	Icon        string `yaml:"icon"`
	Description string `yaml:"description"`
}

type fileItem struct {
	ID       string `yaml:"id"`
	Category string `yaml:"category"`
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type file struct {
	Categories []fileCategory `yaml:"categories"`
	Items      []fileItem     `yaml:"items"`
}

// Catalog is a parsed, validated FAQ dataset.
type Catalog struct {
	Items      []faq.Item
	Categories []faq.Category
}

// Load parses the embedded catalog.
func Load() (Catalog, error) {
	return Parse(catalogYAML)
}

// MustLoad loads the embedded catalog or panics.
func MustLoad() Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes a catalog document. Item positions follow file order.
// Every item must reference a declared category and IDs must be unique.
func Parse(data []byte) (Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}

	cats := make([]faq.Category, 0, len(f.Categories))
	known := make(map[string]bool, len(f.Categories))
	for _, fc := range f.Categories {
		c, err := faq.NewCategory(fc.Name, fc.Icon, fc.Description)
		if err != nil {
			return Catalog{}, fmt.Errorf("category %q: %w", fc.Name, err)
		}
		if known[c.Name()] {
			return Catalog{}, fmt.Errorf("duplicate category %q", c.Name())
		}
		known[c.Name()] = true
		cats = append(cats, c)
	}

	items := make([]faq.Item, 0, len(f.Items))
	seen := make(map[string]bool, len(f.Items))
	for i, fi := range f.Items {
		item, err := faq.New(fi.ID, fi.Question, fi.Answer, fi.Category, i)
		if err != nil {
			return Catalog{}, fmt.Errorf("item %d (%s): %w", i, fi.ID, err)
		}
		if seen[item.ID()] {
			return Catalog{}, fmt.Errorf("duplicate item ID %q", item.ID())
		}
		if !known[item.Category()] {
			return Catalog{}, fmt.Errorf("item %s: unknown category %q", item.ID(), item.Category())
		}
		seen[item.ID()] = true
		items = append(items, item)
	}

	return Catalog{Items: items, Categories: cats}, nil
}

// CountByCategory returns the number of catalog items per category name.
func (c Catalog) CountByCategory() map[string]int {
	counts := make(map[string]int, len(c.Categories))
	for i := range c.Items {
		counts[c.Items[i].Category()]++
	}
	return counts
}
