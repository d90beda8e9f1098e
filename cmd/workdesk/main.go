package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/workdesk/workdesk/internal/app"
	"github.com/workdesk/workdesk/internal/auth"
	"github.com/workdesk/workdesk/internal/platform/cache"
	platformdb "github.com/workdesk/workdesk/internal/platform/db"
	"github.com/workdesk/workdesk/internal/records/departments"
	"github.com/workdesk/workdesk/internal/records/employees"
	"github.com/workdesk/workdesk/internal/records/events"
	"github.com/workdesk/workdesk/internal/records/projects"
	"github.com/workdesk/workdesk/internal/reset"
	"github.com/workdesk/workdesk/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	db, err := platformdb.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("connect mongo", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := db.Client().Disconnect(context.Background()); err != nil {
			logger.Warn("mongo disconnect", slog.Any("error", err))
		}
	}()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Warn("redis unavailable, list caching disabled", slog.Any("error", err))
		redisClient = nil
	}
	defer func() {
		if redisClient == nil {
			return
		}
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()
	listCache := cache.NewListCache(redisClient, cfg.CacheTTL)

	userRepo := auth.NewRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		logger.Error("ensure user indexes", slog.Any("error", err))
		os.Exit(1)
	}
	resetStore := reset.NewMongoStore(db, cfg.ResetTokenTTL)
	if err := resetStore.EnsureIndexes(ctx); err != nil {
		logger.Error("ensure reset indexes", slog.Any("error", err))
		os.Exit(1)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.AuthTokenTTL)
	authService := auth.NewService(userRepo, tokens, resetStore)
	authHandler := auth.NewHandler(logger, authService)

	departmentsHandler := departments.NewHandler(logger, departments.NewService(departments.NewRepository(db), listCache))
	employeesHandler := employees.NewHandler(logger, employees.NewService(employees.NewRepository(db), listCache))
	eventsHandler := events.NewHandler(logger, events.NewService(events.NewRepository(db), listCache))
	projectsHandler := projects.NewHandler(logger, projects.NewService(projects.NewRepository(db), listCache))

	var jobHandler *jobs.Handler
	if redisClient != nil {
		inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
		defer func() {
			if err := inspector.Close(); err != nil {
				logger.Warn("inspector close", slog.Any("error", err))
			}
		}()
		jobHandler = jobs.NewHandler(inspector, logger)
	}

	router := app.NewRouter(app.RouterParams{
		Logger:             logger,
		Config:             cfg,
		AuthHandler:        authHandler,
		DepartmentsHandler: departmentsHandler,
		EmployeesHandler:   employeesHandler,
		EventsHandler:      eventsHandler,
		ProjectsHandler:    projectsHandler,
		JobHandler:         jobHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
