// Package httpserver exposes the admin API: section documents, the profile
// endpoint, the media library, server-rendered editor forms, and the preview
// websocket.
package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/goliatone/go-portfolio-cms/pkg/auth"
	"github.com/goliatone/go-portfolio-cms/pkg/content"
	"github.com/goliatone/go-portfolio-cms/pkg/media"
	"github.com/goliatone/go-portfolio-cms/pkg/render"
	"github.com/goliatone/go-portfolio-cms/pkg/section"
)

// Options carries the server's collaborators. Preview is optional; every
// other field is required.
type Options struct {
	Log           *zap.Logger
	Registry      *content.Registry
	Sections      *section.Service
	Profile       *auth.Profile
	Media         media.Library
	Renderers     *render.Registry
	Authenticator auth.Authenticator
	// Preview handles the websocket endpoint when live preview is enabled.
	Preview http.Handler
}

// Server is the admin HTTP surface.
type Server struct {
	log           *zap.Logger
	router        chi.Router
	registry      *content.Registry
	sections      *section.Service
	profile       *auth.Profile
	media         media.Library
	renderers     *render.Registry
	preview       http.Handler
	authenticator auth.Authenticator
}

// New wires the router and middleware stack.
func New(opts Options) *Server {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	s := &Server{
		log:           log,
		registry:      opts.Registry,
		sections:      opts.Sections,
		profile:       opts.Profile,
		media:         opts.Media,
		renderers:     opts.Renderers,
		preview:       opts.Preview,
		authenticator: opts.Authenticator,
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(s.requestLogger)
	router.Use(chimw.Recoverer)
	router.Use(chimw.Timeout(60 * time.Second))

	router.Get("/healthz", s.handleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Get("/cms/{section}", s.handleSectionGet)
		r.Get("/cms", s.handleSectionIndex)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Post("/cms/{section}", s.handleSectionSave)
			r.Put("/profile", s.handleProfileUpdate)
			r.Get("/media", s.handleMediaList)
			r.Post("/media", s.handleMediaUpload)
			r.Delete("/media/*", s.handleMediaDelete)
		})
	})

	router.Get("/admin/forms/{section}", s.handleFormPage)

	if s.preview != nil {
		router.Get("/api/preview/ws", s.preview.ServeHTTP)
	}

	s.router = router
	return s
}

// Handler exposes the wired router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// HTTPServer builds a production-configured http.Server around the handler.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
