package handlers

import (
	"errors"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/budjb/things-we-make/internal/catalog"
	"github.com/budjb/things-we-make/internal/domain"
	"github.com/budjb/things-we-make/internal/shell"
)

// Home lists every recipe.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, shell.PageOptions{ClassName: "home"},
		recipeListView("Recipes", h.index.Recipes()),
	)
}

// Categories lists every category the navigation panel lists, with the
// number of indexed recipes in each.
func (h *Handlers) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.Categories(r.Context())
	if err != nil {
		h.logger.Error("failed to load categories", "error", err)
		http.Error(w, "Failed to load categories", http.StatusInternalServerError)
		return
	}

	counts := make(map[string]int, len(categories))
	for _, c := range categories {
		recipes, err := h.recipesIn(c.FieldValue)
		if err != nil {
			h.logger.Error("failed to count recipes", "slug", c.FieldValue, "error", err)
			http.Error(w, "Failed to load categories", http.StatusInternalServerError)
			return
		}
		counts[c.FieldValue] = len(recipes)
	}

	h.render(w, r, http.StatusOK, shell.PageOptions{Title: "Categories", ClassName: "categories-page"},
		categoriesView(categories, counts),
	)
}

// Category lists the recipes filed under one category. A category exists
// when the provider lists it, even if no indexed recipe is filed under it.
func (h *Handlers) Category(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if err := domain.ValidateSlug(slug); err != nil {
		h.notFound(w, r)
		return
	}

	categories, err := h.categories.Categories(r.Context())
	if err != nil {
		h.logger.Error("failed to load categories", "error", err)
		http.Error(w, "Failed to load category", http.StatusInternalServerError)
		return
	}
	if !slices.Contains(categories, catalog.Category{FieldValue: slug}) {
		h.notFound(w, r)
		return
	}

	recipes, err := h.recipesIn(slug)
	if err != nil {
		h.logger.Error("failed to load category", "slug", slug, "error", err)
		http.Error(w, "Failed to load category", http.StatusInternalServerError)
		return
	}

	label := domain.FormatCategorySlug(slug)
	h.render(w, r, http.StatusOK, shell.PageOptions{Title: label, ClassName: "category"},
		recipeListView(label, recipes),
	)
}

// recipesIn returns the indexed recipes filed under slug; a category the
// index has never seen has none.
func (h *Handlers) recipesIn(slug string) ([]catalog.Recipe, error) {
	recipes, err := h.index.ByCategory(slug)
	if errors.Is(err, catalog.ErrCategoryNotFound) {
		return nil, nil
	}
	return recipes, err
}

// Recipe shows one recipe.
func (h *Handlers) Recipe(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if err := domain.ValidateSlug(slug); err != nil {
		h.notFound(w, r)
		return
	}

	recipe, err := h.index.Recipe(slug)
	if errors.Is(err, catalog.ErrRecipeNotFound) {
		h.notFound(w, r)
		return
	}
	if err != nil {
		h.logger.Error("failed to load recipe", "slug", slug, "error", err)
		http.Error(w, "Failed to load recipe", http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, shell.PageOptions{Title: recipe.Title, ClassName: "recipe"},
		recipeView(recipe),
	)
}
