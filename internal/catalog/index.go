package catalog

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/budjb/things-we-make/internal/domain"
)

// Recipe is one entry of the content index.
type Recipe struct {
	Title      string   `yaml:"title"`
	Slug       string   `yaml:"slug"`
	Summary    string   `yaml:"summary"`
	Categories []string `yaml:"categories"`
}

// Index is the recipe content index loaded from YAML. It is read-only after
// loading and safe for concurrent use.
type Index struct {
	recipes    []Recipe
	bySlug     map[string]int
	categories []Category
}

type indexFile struct {
	Recipes []Recipe `yaml:"recipes"`
}

// LoadIndex reads the index at path.
func LoadIndex(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content index: %w", err)
	}
	defer f.Close()

	idx, err := ParseIndex(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return idx, nil
}

// ParseIndex decodes an index document. Recipes without a slug get one
// generated from their title; invalid or duplicate slugs are errors.
func ParseIndex(r io.Reader) (*Index, error) {
	var doc indexFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	idx := &Index{bySlug: make(map[string]int, len(doc.Recipes))}
	seen := make(map[string]bool)

	for i, recipe := range doc.Recipes {
		if recipe.Slug == "" {
			recipe.Slug = domain.GenerateSlug(recipe.Title)
		}
		if err := domain.ValidateSlug(recipe.Slug); err != nil {
			return nil, fmt.Errorf("recipe %d (%q): %w", i, recipe.Title, err)
		}
		if _, dup := idx.bySlug[recipe.Slug]; dup {
			return nil, fmt.Errorf("recipe %d: duplicate slug %q", i, recipe.Slug)
		}

		for _, c := range recipe.Categories {
			if err := domain.ValidateSlug(c); err != nil {
				return nil, fmt.Errorf("recipe %q category %q: %w", recipe.Slug, c, err)
			}
			if !seen[c] {
				seen[c] = true
				idx.categories = append(idx.categories, Category{FieldValue: c})
			}
		}

		idx.bySlug[recipe.Slug] = len(idx.recipes)
		idx.recipes = append(idx.recipes, recipe)
	}

	// Grouping by field yields the groups in key order.
	slices.SortFunc(idx.categories, func(a, b Category) int {
		return strings.Compare(a.FieldValue, b.FieldValue)
	})

	return idx, nil
}

// Categories returns the distinct category slugs, sorted.
func (idx *Index) Categories(context.Context) ([]Category, error) {
	return slices.Clone(idx.categories), nil
}

// HasCategory reports whether any recipe is filed under slug.
func (idx *Index) HasCategory(slug string) bool {
	return slices.Contains(idx.categories, Category{FieldValue: slug})
}

// Recipes returns every recipe in index order.
func (idx *Index) Recipes() []Recipe {
	return slices.Clone(idx.recipes)
}

// Recipe returns the recipe with the given slug.
func (idx *Index) Recipe(slug string) (Recipe, error) {
	i, ok := idx.bySlug[slug]
	if !ok {
		return Recipe{}, ErrRecipeNotFound
	}
	return idx.recipes[i], nil
}

// ByCategory returns the recipes filed under slug.
func (idx *Index) ByCategory(slug string) ([]Recipe, error) {
	if !idx.HasCategory(slug) {
		return nil, ErrCategoryNotFound
	}

	var out []Recipe
	for _, r := range idx.recipes {
		if slices.Contains(r.Categories, slug) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Search returns recipes whose title, summary or formatted category labels
// contain every whitespace-separated term of q, case-insensitively.
// An empty query matches nothing.
func (idx *Index) Search(q string) []Recipe {
	terms := strings.Fields(strings.ToLower(q))
	if len(terms) == 0 {
		return nil
	}

	var out []Recipe
	for _, r := range idx.recipes {
		if matches(haystack(r), terms) {
			out = append(out, r)
		}
	}
	return out
}

func haystack(r Recipe) string {
	parts := []string{r.Title, r.Summary}
	for _, c := range r.Categories {
		parts = append(parts, domain.FormatCategorySlug(c))
	}
	return strings.ToLower(strings.Join(parts, " "))
}

func matches(text string, terms []string) bool {
	for _, t := range terms {
		if !strings.Contains(text, t) {
			return false
		}
	}
	return true
}
