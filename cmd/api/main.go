package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/incial/Incial/pkg/validator"

	"github.com/incial/Incial/internal/adapter/handler"
	"github.com/incial/Incial/internal/adapter/repository"
	"github.com/incial/Incial/internal/infrastructure/cache"
	httpmw "github.com/incial/Incial/internal/infrastructure/http/middleware"
	calendarUsecase "github.com/incial/Incial/internal/usecase/calendar"
	"github.com/incial/Incial/internal/usecase/mutation"
	"github.com/incial/Incial/pkg/config"
	"github.com/incial/Incial/pkg/session"
)

// @title           Incial Calendar API
// @version         1.0
// @description     Calendar aggregation service for Incial tasks, meetings and CRM companies

// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Failed to resolve display timezone: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	logger.Info("initializing upstream API clients", zap.String("base_url", cfg.Upstream.BaseURL))
	apiClient := repository.NewClient(&cfg.Upstream, logger)
	taskRepo := repository.NewTaskAPI(apiClient)
	meetingRepo := repository.NewMeetingAPI(apiClient)
	companyRepo := repository.NewCRMAPI(apiClient)

	// Derived calendar state, rebuilt on each refresh
	snapshot := cache.NewSnapshot()

	calendarSvc := calendarUsecase.NewService(taskRepo, meetingRepo, companyRepo, snapshot, loc, logger)
	coordinator := mutation.NewCoordinator(
		taskRepo,
		meetingRepo,
		calendarSvc,
		snapshot,
		loc,
		cfg.Upstream.ResyncMaxWait,
		logger,
	)

	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.Expiry)

	// Warm the snapshot; a failed first fetch is not fatal, the cache
	// fills on the next successful refresh.
	warmCtx, cancelWarm := context.WithTimeout(context.Background(), cfg.Upstream.Timeout)
	if err := calendarSvc.Refresh(warmCtx); err != nil {
		logger.Warn("initial calendar refresh failed", zap.Error(err))
	}
	cancelWarm()

	authHandler := handler.NewAuthHandler(sessions, logger)
	calendarHandler := handler.NewCalendarHandler(calendarSvc, coordinator, snapshot, logger)
	taskHandler := handler.NewTaskHandler(taskRepo, coordinator, snapshot, logger)
	meetingHandler := handler.NewMeetingHandler(meetingRepo, coordinator, snapshot, logger)
	companyHandler := handler.NewCompanyHandler(companyRepo, logger)

	authMW := httpmw.EchoAuth(sessions)

	router := handler.NewRouter(cfg, authHandler, calendarHandler, taskHandler, meetingHandler, companyHandler, authMW)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.Addr()
		logger.Info("starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
			zap.String("timezone", loc.String()),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped gracefully")
}
