package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nadzzz/turntable/internal/session"
)

func sessionStatus(err error) int {
	if errors.Is(err, session.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// handleCreateSession starts an empty session.
//
// @Summary  Create a chat session
// @Tags     sessions
// @Produce  json
// @Success  201  {object}  session.Session
// @Router   /api/sessions [post]
func (t *Transport) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	s, err := t.sessions.Create(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusCreated, s)
}

// handleListSessions lists sessions, most recently updated first.
//
// @Summary  List chat sessions
// @Tags     sessions
// @Produce  json
// @Success  200  {array}  session.Summary
// @Router   /api/sessions [get]
func (t *Transport) handleListSessions(w http.ResponseWriter, r *http.Request) {
	list, err := t.sessions.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

// handleGetSession returns a session with its turns.
//
// @Summary  Get a chat session
// @Tags     sessions
// @Produce  json
// @Param    sessionID  path      string  true  "Session ID"
// @Success  200        {object}  session.Session
// @Failure  404        {object}  errorBody
// @Router   /api/sessions/{sessionID} [get]
func (t *Transport) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "sessionID"))
	s, err := t.sessions.Get(r.Context(), id)
	if err != nil {
		respondError(w, sessionStatus(err), err)
		return
	}
	respondJSON(w, http.StatusOK, s)
}

// handleDeleteSession removes a session.
//
// @Summary  Delete a chat session
// @Tags     sessions
// @Param    sessionID  path  string  true  "Session ID"
// @Success  204
// @Failure  404  {object}  errorBody
// @Router   /api/sessions/{sessionID} [delete]
func (t *Transport) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "sessionID"))
	if err := t.sessions.Delete(r.Context(), id); err != nil {
		respondError(w, sessionStatus(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
