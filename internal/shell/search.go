package shell

import (
	"net/http"
	"net/url"
)

// Navigator moves the visitor to another route. It is fire-and-forget.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

// Navigate calls f(path).
func (f NavigatorFunc) Navigate(path string) { f(path) }

// RedirectNavigator navigates by answering the current request with a
// 303 See Other.
type RedirectNavigator struct {
	W http.ResponseWriter
	R *http.Request
}

// Navigate writes the redirect.
func (n RedirectNavigator) Navigate(path string) {
	http.Redirect(n.W, n.R, path, http.StatusSeeOther)
}

// SubmitEvent is one submission of the search form. Value is read from the
// input at submit time; the form keeps no copy of it.
type SubmitEvent struct {
	Value string

	prevented bool
}

// PreventDefault suppresses the full-page form submission.
func (e *SubmitEvent) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *SubmitEvent) DefaultPrevented() bool { return e.prevented }

// SearchForm turns a free-text query into a navigation.
type SearchForm struct {
	Navigator Navigator
	// Query pre-populates the input, e.g. on the results page.
	Query string
	// OnSubmit, if set, observes each submission's destination.
	OnSubmit func(path string)
}

// Submit navigates to the results route for a non-empty value and home
// otherwise.
func (f *SearchForm) Submit(ev *SubmitEvent) {
	ev.PreventDefault()

	path := SearchPath(ev.Value)
	if f.OnSubmit != nil {
		f.OnSubmit(path)
	}
	f.Navigator.Navigate(path)
}

// SearchPath returns the destination for a query: "/" when empty,
// "/search?q=<escaped>" otherwise.
func SearchPath(q string) string {
	if q == "" {
		return "/"
	}
	return "/search?q=" + url.QueryEscape(q)
}
