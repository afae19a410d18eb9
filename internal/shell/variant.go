package shell

import "fmt"

// Variant selects the visual layout of the page shell. Both variants share
// the same MenuController and SearchForm.
type Variant string

const (
	// VariantCurrent is the logo header with a slide-out off-canvas nav.
	VariantCurrent Variant = "current"
	// VariantLegacy is the text-title header with a toggled drop-down menu.
	VariantLegacy Variant = "legacy"
)

// ParseVariant maps a configuration string to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case "", VariantCurrent:
		return VariantCurrent, nil
	case VariantLegacy:
		return VariantLegacy, nil
	default:
		return "", fmt.Errorf("unknown shell variant %q", s)
	}
}

// openClass is the class that marks the panel visible.
func (v Variant) openClass() string {
	if v == VariantLegacy {
		return "active"
	}
	return "open"
}
