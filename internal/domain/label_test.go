package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/budjb/things-we-make/internal/domain"
)

func TestFormatCategorySlug(t *testing.T) {
	tests := []struct {
		name     string
		slug     string
		expected string
	}{
		{"hyphenated", "main-course", "Main Course"},
		{"underscored", "side_dish", "Side Dish"},
		{"single word", "dessert", "Dessert"},
		{"camel case", "mainCourse", "Main Course"},
		{"acronym", "BBQRibs", "Bbq Ribs"},
		{"digits", "30-minute-meals", "30 Minute Meals"},
		{"digits glued to letters", "top10soups", "Top 10 Soups"},
		{"already formatted", "Main Course", "Main Course"},
		{"repeated separators", "--slow__cooker--", "Slow Cooker"},
		{"empty", "", ""},
		{"only separators", "-_-", ""},
		{"unicode", "crème-brûlée", "Crème Brûlée"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.FormatCategorySlug(tt.slug))
		})
	}
}

func TestFormatCategorySlugIsStable(t *testing.T) {
	slugs := []string{"main-course", "side_dish", "BBQRibs", "top10soups", "dessert", ""}

	for _, slug := range slugs {
		once := domain.FormatCategorySlug(slug)
		assert.Equal(t, once, domain.FormatCategorySlug(once), "formatting %q twice", slug)
	}
}

func TestCopyrightYears(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		expected string
	}{
		{"start year", time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC), "2021"},
		{"next year", time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC), "2021 - 2022"},
		{"later year", time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC), "2021 - 2026"},
		{"clock before start", time.Date(2019, time.March, 3, 0, 0, 0, 0, time.UTC), "2021"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.CopyrightYears(domain.DefaultCopyrightStartYear, tt.now))
		})
	}
}
