package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/corecord/corecord-backend/internal/config"
	"github.com/corecord/corecord-backend/internal/database"
	"github.com/corecord/corecord-backend/internal/handler"
	"github.com/corecord/corecord-backend/internal/lib/email"
	"github.com/corecord/corecord-backend/internal/logger"
	"github.com/corecord/corecord-backend/internal/middleware"
	"github.com/corecord/corecord-backend/internal/repository"
	"github.com/corecord/corecord-backend/internal/router"
	"github.com/corecord/corecord-backend/internal/server"
	"github.com/corecord/corecord-backend/internal/service"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	if !cfg.IsLocal() {
		if err := database.Migrate(context.Background(), &log, cfg); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
	}

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv, services.Issuer)

	srv.Job.InitHandlers(email.NewClient(cfg, &log), services.Analysis)
	if err := srv.Job.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start job server")
	}

	srv.SetupHTTPServer(router.NewRouter(handlers, middlewares))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
