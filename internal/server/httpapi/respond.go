package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tastehub/menuapi/internal/common"
	"github.com/tastehub/menuapi/internal/server/menus"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// respondError maps domain errors to response codes: validation failures are
// 400 with per-field messages, not-found is 404, everything else is a
// logged 500 with a generic body.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *menus.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": verr.Fields})
		return
	}

	switch {
	case errors.Is(err, common.ErrorValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, common.ErrorEmailTaken):
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": map[string]string{"email": "already registered"}})
	case errors.Is(err, common.ErrorUnauthorized):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	default:
		s.logger.Error(r.Context(), "internal error", "path", r.URL.Path, "err", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
