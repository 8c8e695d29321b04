package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// menuID parses the {id} path segment. A malformed id is reported as 404:
// no such resource exists, and the error space stays identical to a missing
// record.
func menuID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func decodePayload(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return false
	}
	return true
}

func (s *Server) listMenus(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	items, err := s.menus.List(r.Context(), userID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSummaryList(items))
}

func (s *Server) getMenu(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	id, ok := menuID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	menu, err := s.menus.Get(r.Context(), userID, id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDetail(menu))
}

func (s *Server) createMenu(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	var payload menuPayload
	if !decodePayload(w, r, &payload) {
		return
	}

	menu, err := s.menus.Create(r.Context(), userID, payload.toInput())
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "menu created", "id", menu.ID)
	writeJSON(w, http.StatusCreated, toDetail(menu))
}

func (s *Server) putMenu(w http.ResponseWriter, r *http.Request) {
	s.updateMenu(w, r, false)
}

func (s *Server) patchMenu(w http.ResponseWriter, r *http.Request) {
	s.updateMenu(w, r, true)
}

func (s *Server) updateMenu(w http.ResponseWriter, r *http.Request, partial bool) {
	userID := userIDFromContext(r.Context())

	id, ok := menuID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	var payload menuPayload
	if !decodePayload(w, r, &payload) {
		return
	}

	menu, err := s.menus.Update(r.Context(), userID, id, payload.toInput(), partial)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toDetail(menu))
}

func (s *Server) deleteMenu(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	id, ok := menuID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	if err := s.menus.Delete(r.Context(), userID, id); err != nil {
		s.respondError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "menu deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) attachMenuImage(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	id, ok := menuID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	key, url, err := s.menus.AttachImage(r.Context(), userID, id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, imageUploadResponse{UploadURL: url, Key: key})
}

func (s *Server) getMenuImage(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	id, ok := menuID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	url, err := s.menus.ImageURL(r.Context(), userID, id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, imageURLResponse{URL: url})
}
