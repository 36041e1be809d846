// @title Mindful journal API
// @description Wellness journal with analytics and an assistant
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/limbo/mindful/internal/api"
	"github.com/limbo/mindful/internal/bootstrap"
	"github.com/limbo/mindful/internal/service"
	"github.com/limbo/mindful/pkg/cleanup"
	"github.com/limbo/mindful/pkg/config"
	jwtservice "github.com/limbo/mindful/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	secret, err := cfg.Require("JWT_SECRET")
	if err != nil {
		log.Fatal(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	storage, err := bootstrap.OpenStorage(ctx, cfg, bootstrap.DriverPostgres)
	if err != nil {
		log.Fatal("opening storage: ", err)
	}
	metrics, err := api.NewHTTPMetrics(api.HTTPMetricsOptions{})
	if err != nil {
		cleanup.CleanUp()
		log.Fatal("registering metrics: ", err)
	}
	userService := service.NewUserService(storage.Users)
	journalService := service.NewJournalService(storage.Users, storage.Logs, bootstrap.JournalOptions(cfg))
	assistantService, err := bootstrap.NewAssistant(cfg, journalService, metrics)
	if err != nil {
		cleanup.CleanUp()
		log.Fatal(err)
	}
	serv := api.New(&api.ServicesList{
		UserService:      userService,
		JournalService:   journalService,
		AssistantService: assistantService,
		JwtService:       jwtservice.New(secret),
		Metrics:          metrics,
	})
	slog.Default().Info("storage ready", slog.String("driver", storage.Driver))
	if err = serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080")); err != nil {
		log.Println("Server error: " + err.Error())
	}
}
