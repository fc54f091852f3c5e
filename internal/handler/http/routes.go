package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// GraphQL endpoint: identity is resolved silently, per-operation checks
	// happen inside the resolvers.
	router.Group(func(r chi.Router) {
		r.Use(h.resolveIdentity)
		r.Post("/graphql", h.graphQL)
	})

	// legacy REST routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users", h.register)
		r.Post("/api/users/login", h.login)
	})

	// legacy REST routes behind the hard-reject middleware
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/users/me", h.me)
		r.Put("/api/users/books", h.saveBook)
		r.Delete("/api/users/books/{bookID}", h.removeBook)
	})

	if h.server.Production && h.server.StaticDir != "" {
		h.serveStatic(router)
	}

	return router
}

// serveStatic serves the built web frontend bundle in production. Unknown
// paths fall back to index.html so client-side routing keeps working.
func (h *Handler) serveStatic(router *chi.Mux) {
	staticDir := h.server.StaticDir
	fileServer := http.FileServer(http.Dir(staticDir))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || strings.HasPrefix(r.URL.Path, "/api/") || r.URL.Path == "/graphql" {
			http.NotFound(w, r)
			return
		}

		requested := filepath.Join(staticDir, filepath.Clean(r.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}

		http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
	})
}
