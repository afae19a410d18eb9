package handlers

import (
	"net/url"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/budjb/things-we-make/internal/catalog"
	"github.com/budjb/things-we-make/internal/domain"
)

func recipeListView(heading string, recipes []catalog.Recipe) g.Node {
	return g.Group{
		H1(g.Text(heading)),
		g.If(len(recipes) == 0, P(Class("empty"), g.Text("No recipes found."))),
		g.If(len(recipes) > 0, Ul(
			Class("recipe-list"),
			g.Map(recipes, func(r catalog.Recipe) g.Node {
				return Li(
					A(Href("/recipes/"+url.PathEscape(r.Slug)), g.Text(r.Title)),
					g.If(r.Summary != "", P(Class("summary"), g.Text(r.Summary))),
				)
			}),
		)),
	}
}

func categoriesView(categories []catalog.Category, counts map[string]int) g.Node {
	return g.Group{
		H1(g.Text("Categories")),
		Ul(
			Class("category-list"),
			g.Map(categories, func(c catalog.Category) g.Node {
				return Li(
					A(Href("/categories/"+url.PathEscape(c.FieldValue)), g.Text(domain.FormatCategorySlug(c.FieldValue))),
					Span(Class("count"), g.Text(" ("+strconv.Itoa(counts[c.FieldValue])+")")),
				)
			}),
		),
	}
}

func recipeView(r catalog.Recipe) g.Node {
	return Article(
		H1(g.Text(r.Title)),
		g.If(r.Summary != "", P(Class("summary"), g.Text(r.Summary))),
		Ul(
			Class("recipe-categories"),
			g.Map(r.Categories, func(slug string) g.Node {
				return Li(A(Href("/categories/"+url.PathEscape(slug)), g.Text(domain.FormatCategorySlug(slug))))
			}),
		),
	)
}

func searchResultsView(q string, recipes []catalog.Recipe) g.Node {
	heading := "Search"
	if q != "" {
		heading = `Results for "` + q + `"`
	}
	return recipeListView(heading, recipes)
}

func notFoundView() g.Node {
	return g.Group{
		H1(g.Text("Not Found")),
		P(g.Text("We couldn't find what you were looking for. "), A(Href("/"), g.Text("Back to all recipes"))),
	}
}
