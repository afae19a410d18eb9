package domain

import (
	"errors"
	"regexp"
	"strings"
)

// Slug validation errors
var (
	ErrSlugEmpty        = errors.New("slug cannot be empty")
	ErrSlugTooLong      = errors.New("slug must be at most 63 characters")
	ErrSlugInvalidChars = errors.New("slug must contain only lowercase letters, numbers, hyphens, and underscores")
	ErrSlugInvalidStart = errors.New("slug must start with a lowercase letter or number")
)

// MaxSlugLength is the longest slug accepted in a URL path segment.
const MaxSlugLength = 63

// slugRegex validates a category or recipe slug:
// - Starts with a lowercase letter or digit
// - Contains only lowercase letters, digits, hyphens, and underscores
var slugRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidateSlug validates a slug according to the rules:
// - 1-63 characters
// - Lowercase alphanumeric, hyphens and underscores only
// - Must start with a lowercase letter or digit
func ValidateSlug(slug string) error {
	if slug == "" {
		return ErrSlugEmpty
	}
	if len(slug) > MaxSlugLength {
		return ErrSlugTooLong
	}

	if !slugRegex.MatchString(slug) {
		first := slug[0]
		if !isLowerAlnum(first) {
			return ErrSlugInvalidStart
		}
		return ErrSlugInvalidChars
	}

	return nil
}

// GenerateSlug creates a URL-safe slug from a recipe title.
// Rules:
// - Converts to lowercase
// - Replaces spaces and underscores with hyphens
// - Removes invalid characters
// - Collapses consecutive hyphens
// - Truncates to 63 characters
func GenerateSlug(title string) string {
	if title == "" {
		return ""
	}

	slug := strings.ToLower(title)

	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, "_", "-")

	// Keep only valid characters (lowercase letters, digits, hyphens)
	var result strings.Builder
	for i := 0; i < len(slug); i++ {
		if isLowerAlnum(slug[i]) || slug[i] == '-' {
			result.WriteByte(slug[i])
		}
	}
	slug = result.String()

	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}

	slug = strings.Trim(slug, "-")

	if len(slug) > MaxSlugLength {
		slug = slug[:MaxSlugLength]
	}

	// Trim trailing hyphen after truncation
	return strings.TrimRight(slug, "-")
}

func isLowerAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
