package shell_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/budjb/things-we-make/internal/shell"
)

func TestSearchForm_Submit(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"plain query", "lasagna", "/search?q=lasagna"},
		{"empty query goes home", "", "/"},
		{"spaces are encoded", "green beans", "/search?q=green+beans"},
		{"reserved characters are encoded", "mac & cheese?", "/search?q=mac+%26+cheese%3F"},
		{"whitespace only is still a query", " ", "/search?q=+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var navigated []string
			form := &shell.SearchForm{
				Navigator: shell.NavigatorFunc(func(path string) { navigated = append(navigated, path) }),
			}

			ev := &shell.SubmitEvent{Value: tt.value}
			form.Submit(ev)

			assert.True(t, ev.DefaultPrevented())
			assert.Equal(t, []string{tt.want}, navigated)
		})
	}
}

func TestSearchForm_OnSubmit(t *testing.T) {
	var observed string
	form := &shell.SearchForm{
		Navigator: shell.NavigatorFunc(func(string) {}),
		OnSubmit:  func(path string) { observed = path },
	}

	form.Submit(&shell.SubmitEvent{Value: "tacos"})

	assert.Equal(t, "/search?q=tacos", observed)
}

func TestRedirectNavigator(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/search", nil)

	form := &shell.SearchForm{Navigator: shell.RedirectNavigator{W: w, R: r}}
	form.Submit(&shell.SubmitEvent{Value: "lasagna"})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/search?q=lasagna", w.Header().Get("Location"))
}
