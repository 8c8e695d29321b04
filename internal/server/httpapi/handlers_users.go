package httpapi

import "net/http"

func (s *Server) registerUser(w http.ResponseWriter, r *http.Request) {

	var payload credentialsPayload
	if !decodePayload(w, r, &payload) {
		return
	}

	user, err := s.users.Register(r.Context(), payload.Email, payload.Password)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "user registered", "email", user.Email)
	writeJSON(w, http.StatusCreated, userResponse{ID: user.ID, Email: user.Email})
}

func (s *Server) loginUser(w http.ResponseWriter, r *http.Request) {

	var payload credentialsPayload
	if !decodePayload(w, r, &payload) {
		return
	}

	token, err := s.users.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token})
}
