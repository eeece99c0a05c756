// Package router maps navigation paths to screens.
//
// The table is a chi mux used only for matching; nothing is served over
// HTTP. Paths that match no screen redirect to the catalog.
package router

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Screen identifies a view.
type Screen string

const (
	ScreenCatalog   Screen = "catalog"
	ScreenDetail    Screen = "detail"
	ScreenAdminList Screen = "admin-list"
	ScreenCreate    Screen = "movie-new"
	ScreenEdit      Screen = "movie-edit"
)

const (
	CatalogPath   = "/catalog"
	AdminListPath = "/admin/movies"
	CreatePath    = "/admin/movies/new"
)

const (
	patternAny  = "/*"
	patternRoot = "/"
)

// Params are the path parameters of a resolved route.
type Params map[string]string

// Route is the outcome of resolving a path.
type Route struct {
	Path       string // canonical path, after any redirect
	Screen     Screen
	Params     Params
	Redirected bool
}

type Router struct {
	mux     *chi.Mux
	screens map[string]Screen
}

// New builds the route table.
func New() *Router {
	r := &Router{
		mux:     chi.NewRouter(),
		screens: make(map[string]Screen),
	}

	r.add(CatalogPath, ScreenCatalog)
	r.add("/movie/{id:[0-9]+}", ScreenDetail)
	r.add(AdminListPath, ScreenAdminList)
	r.add(CreatePath, ScreenCreate)
	r.add("/admin/movies/edit/{id:[0-9]+}", ScreenEdit)

	// "/" and every other path fall back to the catalog.
	r.mux.Get(patternRoot, http.NotFound)
	r.mux.Get(patternAny, http.NotFound)

	return r
}

func (r *Router) add(pattern string, s Screen) {
	r.screens[pattern] = s
	r.mux.Get(pattern, http.NotFound)
}

// Resolve returns the screen for path.
func (r *Router) Resolve(path string) Route {
	p := Clean(path)

	rctx := chi.NewRouteContext()
	if r.mux.Match(rctx, http.MethodGet, p) {
		if s, ok := r.screens[rctx.RoutePattern()]; ok {
			params := make(Params, len(rctx.URLParams.Keys))
			for i, k := range rctx.URLParams.Keys {
				params[k] = rctx.URLParams.Values[i]
			}
			return Route{Path: p, Screen: s, Params: params}
		}
	}

	return Route{Path: CatalogPath, Screen: ScreenCatalog, Params: Params{}, Redirected: true}
}

// Clean trims whitespace, ensures a leading slash and drops a trailing one.
func Clean(path string) string {
	p := strings.TrimSpace(path)
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	return p
}

// IsAdmin reports whether path belongs to the admin area.
func IsAdmin(path string) bool {
	p := Clean(path)
	return p == AdminListPath || strings.HasPrefix(p, AdminListPath+"/")
}

// DetailPath and EditPath build the parameterised paths.
func DetailPath(id string) string { return "/movie/" + id }

func EditPath(id string) string { return AdminListPath + "/edit/" + id }
