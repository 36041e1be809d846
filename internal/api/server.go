package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/limbo/mindful/internal/service"
	"github.com/limbo/mindful/pkg/cleanup"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx               *chi.Mux
	userService      service.UserServiceI
	journalService   service.JournalServiceI
	assistantService service.AssistantServiceI
	jwtService       JWTServiceI
	metrics          *HTTPMetrics
	gatherer         prometheus.Gatherer
}

type ServicesList struct {
	UserService      service.UserServiceI
	JournalService   service.JournalServiceI
	AssistantService service.AssistantServiceI
	JwtService       JWTServiceI
	// Both optional. Without them requests are not instrumented and /metrics
	// serves the default registry.
	Metrics  *HTTPMetrics
	Gatherer prometheus.Gatherer
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:               chi.NewMux(),
		userService:      servicesOptions.UserService,
		journalService:   servicesOptions.JournalService,
		assistantService: servicesOptions.AssistantService,
		jwtService:       servicesOptions.JwtService,
		metrics:          servicesOptions.Metrics,
		gatherer:         servicesOptions.Gatherer,
	}
	if s.gatherer == nil {
		s.gatherer = prometheus.DefaultGatherer
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.metrics.Handler)
	s.mx.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Post("/logs", s.CreateLog)
			r.Get("/logs", s.GetLogs)
			r.Get("/logs/range", s.GetLogRange)
			r.Get("/analytics", s.GetAnalytics)
			r.Post("/assistant/chat", s.Chat)
			r.Get("/assistant/questions", s.StarterQuestions)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until SIGINT or SIGTERM, then drains requests and runs the
// registered cleanup jobs.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Default().Info("server started", slog.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)
	defer cleanup.CleanUp()

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		slog.Default().Info("shutting down", slog.String("signal", sig.String()))
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
