package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/mkhandekar/restock-tracker/internal/api/handlers"
	"github.com/mkhandekar/restock-tracker/internal/api/middleware"
	"github.com/mkhandekar/restock-tracker/internal/config"
	"github.com/mkhandekar/restock-tracker/internal/engine"
	"github.com/mkhandekar/restock-tracker/internal/notify"
	"github.com/mkhandekar/restock-tracker/internal/shop"
	"github.com/mkhandekar/restock-tracker/internal/store"
	"github.com/mkhandekar/restock-tracker/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cmdLog := log.NewWithOptions(os.Stderr, log.Options{
		Level: parseLogLevel(cfg.Logging.Level),
	})
	slogger := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	limiter := shop.NewRateLimiter(
		cfg.Shop.RateLimit.PerSecond,
		cfg.Shop.RateLimit.Burst,
		cfg.Shop.RateLimit.DailyLimit,
	)

	catalog := shop.NewCatalogClient(
		shop.WithCatalogURL(cfg.Shop.CatalogURL),
		shop.WithCategory(cfg.Shop.Category),
		shop.WithSubstore(cfg.Shop.Substore),
		shop.WithPageLimit(cfg.Shop.PageLimit),
		shop.WithRateLimiter(limiter),
		shop.WithCatalogHTTPClient(&http.Client{Timeout: cfg.Shop.RequestTimeout}),
	)

	emailNotifier, err := buildEmailNotifier(cfg, slogger)
	if err != nil {
		return fmt.Errorf("configuring email notifier: %w", err)
	}
	telegramNotifier := buildTelegramNotifier(cfg, slogger)

	dispatcher := engine.NewDispatcher(st, emailNotifier, telegramNotifier,
		engine.WithDispatchLogger(slogger),
		engine.WithStorefrontBase(cfg.Shop.StorefrontURL),
		engine.WithSendTimeout(cfg.Notifications.SendTimeout),
	)

	eng := engine.NewEngine(st, catalog, dispatcher, engine.WithLogger(slogger))

	scheduler, err := engine.NewScheduler(eng, st, cfg.Schedule.ReconcileInterval, slogger)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}

	e := buildServer(cfg, st, eng, slogger)

	scheduler.Start()
	defer scheduler.Stop()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	cmdLog.Info("starting server",
		"addr", addr,
		"reconcile_interval", cfg.Schedule.ReconcileInterval,
	)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			cmdLog.Error("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	cmdLog.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	cmdLog.Info("server stopped")
	return nil
}

func buildServer(
	cfg *config.Config,
	st store.Store,
	eng *engine.Engine,
	slogger *slog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.Recovery(slogger))
	e.Use(middleware.RequestLog(slogger))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("restock-tracker", Version))
	handlers.RegisterProductRoutes(api, handlers.NewProductsHandler(st))
	handlers.RegisterRefreshRoutes(api, handlers.NewRefreshHandler(eng))
	handlers.RegisterSubscriptionRoutes(api, handlers.NewSubscriptionsHandler(st))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(st))
	handlers.RegisterTelegramRoutes(api, handlers.NewTelegramWebhookHandler(
		st, cfg.Notifications.Telegram.WebhookSecret, slogger,
	))

	return e
}

func buildEmailNotifier(cfg *config.Config, slogger *slog.Logger) (notify.Notifier, error) {
	if !cfg.Notifications.Email.Enabled {
		return notify.NewNoOpNotifier(slogger), nil
	}
	return notify.NewEmailNotifier(notify.EmailConfig{
		Host:     cfg.Notifications.Email.Host,
		Port:     cfg.Notifications.Email.Port,
		Username: cfg.Notifications.Email.Username,
		Password: cfg.Notifications.Email.Password,
		From:     cfg.Notifications.Email.From,
	})
}

func buildTelegramNotifier(cfg *config.Config, slogger *slog.Logger) notify.Notifier {
	if !cfg.Notifications.Telegram.Enabled {
		return notify.NewNoOpNotifier(slogger)
	}
	return notify.NewTelegramNotifier(cfg.Notifications.Telegram.BotToken)
}

func parseLogLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
