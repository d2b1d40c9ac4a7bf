package faq

import "fmt"

// Category is static metadata describing a group of FAQ items.
type Category struct {
	name        string
	icon        string
	description string
}

// NewCategory validates and creates a Category. Icon and description are optional.
func NewCategory(name, icon, description string) (Category, error) {
	if name == "" {
		return Category{}, fmt.Errorf("category name is required")
	}
	return Category{name: name, icon: icon, description: description}, nil
}

// Name returns the category name (the value items reference).
func (c Category) Name() string { return c.name }

// Icon returns the client-side icon identifier.
func (c Category) Icon() string { return c.icon }

// Description returns a short human-readable description.
func (c Category) Description() string { return c.description }
