package shell

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/budjb/things-we-make/internal/catalog"
	"github.com/budjb/things-we-make/internal/domain"
)

// Config is the site-wide chrome configuration.
type Config struct {
	Variant            Variant
	SiteTitle          string
	Robots             string
	LogoPath           string
	CopyrightStartYear int
	AttributionName    string
	AttributionURL     string

	// Now is the clock used for the copyright range. Defaults to time.Now.
	Now func() time.Time
}

// PageOptions are the per-page parameters of the shell.
type PageOptions struct {
	// Title is the page-specific title; empty means the site title alone.
	Title string
	// ClassName is appended to the main content region's classes.
	ClassName string
	// Query pre-populates the search input.
	Query string
	// MenuOpen is the MenuController state to render.
	MenuOpen bool
	// ReturnTo is where the no-script menu buttons send the visitor back to.
	ReturnTo string
}

// Shell renders the page chrome around page content.
type Shell struct {
	cfg        Config
	categories catalog.Provider
}

// New creates a Shell that lists the categories from provider.
func New(cfg Config, provider catalog.Provider) *Shell {
	if cfg.Variant == "" {
		cfg.Variant = VariantCurrent
	}
	if cfg.SiteTitle == "" {
		cfg.SiteTitle = "Things We Make"
	}
	if cfg.Robots == "" {
		cfg.Robots = "noindex,nofollow"
	}
	if cfg.LogoPath == "" {
		cfg.LogoPath = "/static/logo.svg"
	}
	if cfg.CopyrightStartYear == 0 {
		cfg.CopyrightStartYear = domain.DefaultCopyrightStartYear
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Shell{cfg: cfg, categories: provider}
}

// Variant returns the configured layout variant.
func (s *Shell) Variant() Variant { return s.cfg.Variant }

// Page returns the full document as a component. Categories are loaded
// before anything is written, so a provider error leaves w untouched.
func (s *Shell) Page(opts PageOptions, children ...g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		node, err := s.Node(ctx, opts, children...)
		if err != nil {
			return err
		}
		return node.Render(w)
	})
}

// Node builds the document tree.
func (s *Shell) Node(ctx context.Context, opts PageOptions, children ...g.Node) (g.Node, error) {
	categories, err := s.categories.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	if opts.ReturnTo == "" {
		opts.ReturnTo = "/"
	}

	var body g.Node
	if s.cfg.Variant == VariantLegacy {
		body = s.legacyBody(opts, categories, children)
	} else {
		body = s.currentBody(opts, categories, children)
	}

	return g.Group{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(s.DocumentTitle(opts.Title))),
				Meta(Name("robots"), Content(s.cfg.Robots)),
				Link(Rel("stylesheet"), Href("/static/shell.css")),
			),
			Body(
				Class("bg-body"),
				g.Attr("data-shell-variant", string(s.cfg.Variant)),
				body,
				Script(Src("/static/shell.js"), Defer()),
			),
		),
	}, nil
}

// DocumentTitle applies the title template.
func (s *Shell) DocumentTitle(title string) string {
	if title == "" {
		return s.cfg.SiteTitle
	}
	return title + " | " + s.cfg.SiteTitle
}

// CopyrightYears is the footer year span as of the shell's clock.
func (s *Shell) CopyrightYears() string {
	return domain.CopyrightYears(s.cfg.CopyrightStartYear, s.cfg.Now())
}

func (s *Shell) currentBody(opts PageOptions, categories []catalog.Category, children []g.Node) g.Node {
	return Div(
		Class("min-vh-100 d-flex flex-column"),

		Header(
			Class("py-2 mb-3 mb-lg-5 container-fluid"),
			Div(
				Class("d-flex justify-content-between align-content-center"),
				A(
					Href("/"), Class("d-block home-link"),
					Img(Src(s.cfg.LogoPath), Alt(s.cfg.SiteTitle), Class("mh-100"), Style("height: 65px")),
				),
				menuAction("open", opts.ReturnTo,
					Class("btn border-0 py-0 px-2 shadow-none"),
					g.Attr("aria-label", "Open menu"),
					I(Class("bi bi-list btn text-dark p-0 fs-1")),
				),
			),

			Div(
				ID(PanelID),
				Class(CN("offcanvas-collapse", when(opts.MenuOpen, s.cfg.Variant.openClass()))),
				Div(
					Class("d-flex justify-content-end my-3"),
					menuAction("close", opts.ReturnTo,
						Class("btn-close btn-close-white shadow-none"),
						g.Attr("aria-label", "Close"),
					),
				),
				searchForm(opts.Query, "d-flex order-lg-2", "form-control rounded-pill shadow-none", "search"),
				Nav(
					Class("nav flex-column mx-3 mt-4"),
					categoryList(categories, "nav-link text-light"),
				),
			),
		),

		Main(Class(CN("container", opts.ClassName)), g.Group(children)),

		Footer(
			Class("container py-5 fs-6 mt-auto text-muted text-center"),
			s.footerContent(),
		),
	)
}

func (s *Shell) legacyBody(opts PageOptions, categories []catalog.Category, children []g.Node) g.Node {
	return g.Group{
		Header(
			A(Href("/"), Class("title home-link"), g.Text(s.cfg.SiteTitle)),
			Div(
				ID(PanelID),
				Class(CN("menu", when(opts.MenuOpen, s.cfg.Variant.openClass()))),
				Div(
					Class("menu-button"),
					menuAction("toggle", opts.ReturnTo,
						g.Attr("aria-label", "Toggle menu"),
						I(Class("fa fa-bars")),
					),
				),
				Div(
					Class("menu-content"),
					Div(Class("search"), searchForm(opts.Query, "", "", "text")),
					H3(g.Text("Categories")),
					categoryList(categories, ""),
				),
			),
		),
		Hr(Class("fancy-hr layout-header-divider")),
		Main(g.If(opts.ClassName != "", Class(opts.ClassName)), g.Group(children)),
		Hr(Class("fancy-hr")),
		Footer(s.footerContent()),
	}
}

func (s *Shell) footerContent() g.Node {
	return g.Group{
		g.Text("Copyright © " + s.CopyrightYears() + " "),
		A(
			Href(s.cfg.AttributionURL),
			Target("_blank"),
			Rel("noreferrer"),
			g.Text(s.cfg.AttributionName),
		),
	}
}

// menuAction is a menu trigger. Without script it posts to /menu/{action};
// shell.js intercepts the click and sends the action over the live socket.
func menuAction(action, returnTo string, button ...g.Node) g.Node {
	return Form(
		Method("post"),
		Action("/menu/"+action),
		Class("menu-action"),
		Input(Type("hidden"), Name("return_to"), Value(returnTo)),
		Button(
			Type("submit"),
			g.Attr("data-menu-action", action),
			g.Group(button),
		),
	)
}

func searchForm(query, formClass, inputClass, inputType string) g.Node {
	return Form(
		ID("search-form"),
		g.If(formClass != "", Class(formClass)),
		Method("post"),
		Action("/search"),
		g.Attr("role", "search"),
		Input(
			g.If(inputClass != "", Class(inputClass)),
			Type(inputType),
			Name("q"),
			Value(query),
			Placeholder("Search..."),
			AutoComplete("off"),
		),
	)
}

func categoryList(categories []catalog.Category, linkClass string) g.Node {
	return Ul(
		Class("categories"),
		g.Map(categories, func(c catalog.Category) g.Node {
			return Li(
				A(
					Href("/categories/"+url.PathEscape(c.FieldValue)),
					g.If(linkClass != "", Class(linkClass)),
					g.Text(domain.FormatCategorySlug(c.FieldValue)),
				),
			)
		}),
		Li(
			A(
				Href("/categories"),
				Class(CN(linkClass, "more")),
				Small(g.Text("More...")),
			),
		),
	)
}
