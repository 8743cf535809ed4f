package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-portfolio-cms/pkg/auth"
	"github.com/goliatone/go-portfolio-cms/pkg/content"
	"github.com/goliatone/go-portfolio-cms/pkg/form"
	"github.com/goliatone/go-portfolio-cms/pkg/locale"
	"github.com/goliatone/go-portfolio-cms/pkg/render"
)

// maxUploadBytes bounds media uploads.
const maxUploadBytes = 32 << 20

// handleSectionIndex lists the editable section keys.
func (s *Server) handleSectionIndex(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"sections": s.registry.Sections()})
}

// handleSectionGet returns the raw bilingual document for a section. Never
// saved means an empty record, not an error.
func (s *Server) handleSectionGet(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "section")

	doc, err := s.sections.Load(r.Context(), key)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// handleSectionSave validates and persists a section document.
func (s *Server) handleSectionSave(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "section")

	var doc map[string]any
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid JSON body"})
		return
	}

	saved, err := s.sections.Save(r.Context(), actorFrom(r.Context()), key, doc)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// handleProfileUpdate changes the admin's display name and, optionally,
// password.
func (s *Server) handleProfileUpdate(w http.ResponseWriter, r *http.Request) {
	var req auth.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid JSON body"})
		return
	}

	if err := s.profile.Update(r.Context(), actorFrom(r.Context()), req); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleMediaList(w http.ResponseWriter, r *http.Request) {
	objects, err := s.media.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"objects": objects})
}

func (s *Server) handleMediaUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "file field is required"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	object, err := s.media.Put(r.Context(), header.Filename, contentType, file)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, object)
}

func (s *Server) handleMediaDelete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "*")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "object name is required"})
		return
	}

	if err := s.media.Delete(r.Context(), name); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// handleFormPage renders a section's editor form as HTML. The renderer can
// be selected with ?renderer=, defaulting to the HTML surface.
func (s *Server) handleFormPage(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "section")

	schema, err := s.registry.Get(key)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if len(schema.Fields) == 0 {
		s.writeError(w, r, fmt.Errorf("%w: %q has no generic editor", content.ErrSchemaNotFound, key))
		return
	}

	doc, err := s.sections.Load(r.Context(), key)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	view, err := form.BuildView(schema.Fields, doc)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	name := r.URL.Query().Get("renderer")
	if name == "" {
		name = "html"
	}
	renderer, err := s.renderers.Get(name)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": fmt.Sprintf("unknown renderer %q", name)})
		return
	}

	page := render.Page{
		Section:  key,
		Title:    schema.Name,
		Language: locale.Parse(r.URL.Query().Get("lang")),
		View:     view,
	}
	out, err := renderer.Render(r.Context(), page)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}
