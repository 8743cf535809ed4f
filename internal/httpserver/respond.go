package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/goliatone/go-portfolio-cms/pkg/auth"
	"github.com/goliatone/go-portfolio-cms/pkg/content"
	"github.com/goliatone/go-portfolio-cms/pkg/media"
	"github.com/goliatone/go-portfolio-cms/pkg/validation"
)

// issueDetail is one entry of the validation error envelope.
type issueDetail struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps domain errors onto the JSON error envelope. Validation
// failures carry every failing path so the editor can mark all fields at
// once.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var invalid *validation.Error
	switch {
	case errors.As(err, &invalid):
		details := make([]issueDetail, 0, len(invalid.Issues))
		for _, issue := range invalid.Issues {
			details = append(details, issueDetail{Path: issue.Path, Message: issue.Message})
		}
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "validation failed",
			"details": details,
		})
	case errors.Is(err, auth.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "unauthorized"})
	case errors.Is(err, auth.ErrWrongPassword):
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "current password is incorrect"})
	case errors.Is(err, content.ErrSchemaNotFound), errors.Is(err, media.ErrObjectNotFound), errors.Is(err, auth.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "not found"})
	default:
		s.log.Error("request failed", requestFields(r, err)...)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal error"})
	}
}
