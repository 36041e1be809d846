package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/internal/service"
	"github.com/limbo/mindful/pkg/entity"
	"github.com/limbo/mindful/pkg/httputil"
)

func (s *Server) CreateLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	owner, err := GetOwnerFromContext(r)
	if err != nil {
		logger.Error("create log error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req DailyLogRequest
	err = httputil.DecodeJSON(w, r, &req)
	if err != nil {
		logger.Error("create log error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	log, err := s.journalService.Append(ctx, owner, &service.DailyLogRequest{
		Date:         req.Date,
		SleepHours:   req.SleepHours,
		SleepQuality: req.SleepQuality,
		Mood:         req.Mood,
		Meals:        req.Meals,
		Activities:   req.Activities,
		Notes:        req.Notes,
	})
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr), errors.Is(err, errorvalues.ErrInvalidDate):
			logger.Error("create log error: invalid log", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid daily log", err)
		case errors.Is(err, errorvalues.ErrLogExists):
			logger.Error("create log error: date already logged")
			httputil.WriteErrorResponse(w, http.StatusConflict, "log for this date already exists", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create log error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create log: user doesn't exists", nil)
		default:
			logger.Error("create log error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating log", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, toLogResponse(log))
	logger.Info("daily log created")
}

func (s *Server) GetLogs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	owner, err := GetOwnerFromContext(r)
	if err != nil {
		logger.Error("get logs error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	from, err := entity.ParseDate(r.URL.Query().Get("from"))
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid 'from' date", errorvalues.ErrInvalidDate)
		return
	}
	to, err := entity.ParseDate(r.URL.Query().Get("to"))
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid 'to' date", errorvalues.ErrInvalidDate)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	logs, err := s.journalService.QueryRange(ctx, owner, from, to)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidRange):
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid range", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("getting logs error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting logs", nil)
		}
		return
	}
	resp := GetLogsResponse{
		From: entity.FormatDate(from),
		To:   entity.FormatDate(to),
		Logs: make([]DailyLogResponse, 0, len(logs)),
	}
	for i := range logs {
		resp.Logs = append(resp.Logs, toLogResponse(&logs[i]))
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	logger.Info("logs provided", slog.Int("count", len(logs)))
}

func (s *Server) GetLogRange(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	owner, err := GetOwnerFromContext(r)
	if err != nil {
		logger.Error("get range error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	kind := entity.ParseRangeKind(r.URL.Query().Get("kind"))
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	rng, err := s.journalService.ResolveRange(ctx, owner, kind)
	if err != nil {
		s.writeJournalError(w, logger, "resolving range error", err)
		return
	}
	if rng == nil {
		httputil.WriteJSONResponse(w, http.StatusOK, RangeResponse{Kind: string(kind), NoData: true})
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, RangeResponse{
		Kind: string(kind),
		From: entity.FormatDate(rng.From),
		To:   entity.FormatDate(rng.To),
	})
}

func (s *Server) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	owner, err := GetOwnerFromContext(r)
	if err != nil {
		logger.Error("analytics error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	kind := entity.ParseRangeKind(r.URL.Query().Get("range"))
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	report, err := s.journalService.Analytics(ctx, owner, kind)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNoData) {
			httputil.WriteJSONResponse(w, http.StatusOK, NoDataResponse{Range: string(kind), NoData: true})
			return
		}
		s.writeJournalError(w, logger, "analytics error", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, toAnalyticsResponse(kind, report))
	logger.Info("analytics provided", slog.String("range", string(kind)))
}

func (s *Server) writeJournalError(w http.ResponseWriter, logger *slog.Logger, msg string, err error) {
	if errors.Is(err, errorvalues.ErrUserNotFound) {
		logger.Error(msg + ": unexist user")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		return
	}
	logger.Error(msg, slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
}
