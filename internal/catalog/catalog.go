// Package catalog supplies the recipe content the site is built from: the
// category list shown in the navigation panel and the recipes behind it.
package catalog

import (
	"context"
	"errors"
)

// Catalog errors
var (
	ErrRecipeNotFound   = errors.New("recipe not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// Category is one group of the recipe index, keyed by its slug.
type Category struct {
	FieldValue string `json:"fieldValue"`
}

// Provider returns the categories to list in the navigation panel, in the
// order they should be shown.
type Provider interface {
	Categories(ctx context.Context) ([]Category, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context) ([]Category, error)

// Categories calls f(ctx).
func (f ProviderFunc) Categories(ctx context.Context) ([]Category, error) {
	return f(ctx)
}

// Static returns a Provider that always yields the given slugs in order.
func Static(slugs ...string) Provider {
	categories := make([]Category, len(slugs))
	for i, s := range slugs {
		categories[i] = Category{FieldValue: s}
	}
	return ProviderFunc(func(context.Context) ([]Category, error) {
		return categories, nil
	})
}
