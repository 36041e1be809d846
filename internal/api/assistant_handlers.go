package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/pkg/httputil"
)

const maxChatMessage = 4000

func (s *Server) Chat(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	owner, err := GetOwnerFromContext(r)
	if err != nil {
		logger.Error("chat error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ChatRequest
	err = httputil.DecodeJSON(w, r, &req)
	if err != nil {
		logger.Error("chat error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" || len(req.Message) > maxChatMessage {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "message must be non-empty and at most 4000 bytes", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*90)
	defer cancel()
	reply, err := s.assistantService.Reply(ctx, owner, req.Message)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
			return
		}
		logger.Error("chat error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while answering", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ChatResponse{Reply: reply.Text, Degraded: reply.Degraded})
	logger.Info("assistant replied", slog.Bool("degraded", reply.Degraded))
}

func (s *Server) StarterQuestions(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, QuestionsResponse{Questions: s.assistantService.StarterQuestions()})
}
