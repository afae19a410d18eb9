package handlers

import (
	"net/http"

	"github.com/budjb/things-we-make/internal/metrics"
	"github.com/budjb/things-we-make/internal/shell"
)

// Search shows the results for the q parameter, pre-filling the search box.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	title := "Search"
	if q != "" {
		title = "Search: " + q
	}

	h.render(w, r, http.StatusOK, shell.PageOptions{Title: title, ClassName: "search-results", Query: q},
		searchResultsView(q, h.index.Search(q)),
	)
}

// SubmitSearch is the no-script search form target. It redirects the way
// the live socket would navigate.
func (h *Handlers) SubmitSearch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	form := &shell.SearchForm{
		Navigator: shell.RedirectNavigator{W: w, R: r},
		OnSubmit:  metrics.ObserveSearch,
	}
	form.Submit(&shell.SubmitEvent{Value: r.PostFormValue("q")})
}
