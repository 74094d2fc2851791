package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/nadzzz/turntable/internal/interpreter"
	"github.com/nadzzz/turntable/internal/message"
	"github.com/nadzzz/turntable/internal/session"
	"github.com/nadzzz/turntable/internal/transport"
)

// turnStatus maps a failed turn to an HTTP status.
func turnStatus(err error) int {
	switch {
	case errors.Is(err, interpreter.ErrEmptyMessage):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, interpreter.ErrModelUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// handleChat runs one chat turn.
//
// @Summary     Run a chat turn
// @Description Sends the message to the language model once, executes every action found in the reply
// @Description in order and returns the narrative with one result per action.
// @Tags        chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request  body      message.ChatRequest   true  "Chat message"
// @Success     200      {object}  message.ChatResponse  "Narrative and action results"
// @Failure     400      {object}  errorBody             "Empty message or invalid body"
// @Failure     404      {object}  errorBody             "Unknown session"
// @Failure     503      {object}  message.ChatResponse  "Language model unavailable"
// @Router      /api/chat [post]
func (t *Transport) handleChat(handler transport.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req message.ChatRequest
		if status, err := decodeJSONBody(w, r, &req, false); err != nil {
			respondError(w, status, err)
			return
		}
		if strings.TrimSpace(req.Message) == "" {
			respondError(w, http.StatusBadRequest, interpreter.ErrEmptyMessage)
			return
		}

		resp, err := handler(r.Context(), &req)
		if err != nil {
			status := turnStatus(err)
			slog.Warn("chat turn failed", "status", status, "error", err)
			if resp != nil {
				respondJSON(w, status, resp)
				return
			}
			respondError(w, status, err)
			return
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// handleWebSocket runs one chat turn per inbound JSON frame and answers each
// with a ChatResponse frame. Turns on one connection run one at a time.
//
// @Summary     Chat over WebSocket
// @Description Each text frame {message, session_id?} yields one ChatResponse frame.
// @Tags        chat
// @Param       access_token  query  string  false  "Spotify access token"
// @Router      /ws [get]
func (t *Transport) handleWebSocket(handler transport.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: t.origins,
		})
		if err != nil {
			slog.Warn("websocket upgrade failed", "error", err)
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "connection closed")
		conn.SetReadLimit(maxBodyBytes)

		ctx := r.Context()
		for {
			var req message.ChatRequest
			if err := wsjson.Read(ctx, conn, &req); err != nil {
				if websocket.CloseStatus(err) == -1 {
					slog.Debug("websocket read ended", "error", err)
				}
				return
			}

			var resp *message.ChatResponse
			var err error
			if strings.TrimSpace(req.Message) == "" {
				err = interpreter.ErrEmptyMessage
			} else {
				resp, err = handler(ctx, &req)
			}
			if err != nil {
				slog.Warn("websocket chat turn failed", "error", err)
				if resp == nil {
					resp = &message.ChatResponse{
						SessionID:     req.SessionID,
						FunctionCalls: []message.ActionResult{},
						Error:         err.Error(),
					}
				}
			}
			if err := wsjson.Write(ctx, conn, resp); err != nil {
				slog.Debug("websocket write failed", "error", err)
				return
			}
		}
	}
}
