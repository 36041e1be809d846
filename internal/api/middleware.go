package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/pkg/httputil"
)

type ctxKey string

const (
	requestIDContextKey ctxKey = "Request-ID"
	loggerContextKey    ctxKey = "Logger"
	ownerContextKey     ctxKey = "Owner"
	uidContextKey       ctxKey = "User-ID"
)

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New()
		w.Header().Set("X-Request-ID", reqID.String())
		ctx := context.WithValue(r.Context(), requestIDContextKey, reqID.String())
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		reqID, ok := r.Context().Value(requestIDContextKey).(string)
		if ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// LoggerExtensionMiddleware adds the owner to the request logger. It runs after
// AuthMiddleware, so public routes log without it.
func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		if owner, ok := r.Context().Value(ownerContextKey).(string); ok && owner != "" {
			logger = logger.With(slog.String("owner", owner))
		}
		if uid, ok := r.Context().Value(uidContextKey).(uuid.UUID); ok {
			logger = logger.With(slog.String("uid", uid.String()))
		}
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		// Getting token from header
		tokenString, err := GetTokenFromHeader(r)
		if err != nil {
			logger.Error("auth failed: invalid token")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			return
		}
		// Getting claims from token string
		tokenClaims, err := s.jwtService.ParseToken(tokenString)
		if err != nil {
			logger.Error("auth failed: error parsing token", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
			return
		}
		// Assuring if token is alive
		now := time.Now()
		if tokenClaims.ExpiresAt == nil || tokenClaims.ExpiresAt.Time.Before(now) ||
			(tokenClaims.NotBefore != nil && tokenClaims.NotBefore.Time.After(now)) {
			logger.Error("tried to auth with expired or not ready token")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "token expired or not ready", nil)
			return
		}
		if tokenClaims.Username == "" {
			logger.Error("no owner in token claims")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid token payload", nil)
			return
		}
		// Assuring if user still exists
		ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
		defer cancel()
		user, err := s.userService.GetByName(ctx, tokenClaims.Username)
		if err != nil {
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				logger.Error("user doesn't exist")
				httputil.WriteErrorResponse(w, http.StatusNotFound, "auth failed: user not found", nil)
				return
			}
			logger.Error("error while searching for user", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while searching for user", nil)
			return
		}
		reqCtx := WithOwner(r.Context(), user.Name)
		reqCtx = context.WithValue(reqCtx, uidContextKey, user.ID)
		next.ServeHTTP(w, r.WithContext(reqCtx))
	})
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	parts := strings.Split(token, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errorvalues.ErrInvalidToken
	}
	return parts[1], nil
}

// WithOwner marks the request as made by the named user.
func WithOwner(ctx context.Context, owner string) context.Context {
	return context.WithValue(ctx, ownerContextKey, owner)
}

func GetOwnerFromContext(r *http.Request) (string, error) {
	owner, ok := r.Context().Value(ownerContextKey).(string)
	if !ok || owner == "" {
		return "", errors.New("owner invalid or doesn't exists")
	}
	return owner, nil
}
