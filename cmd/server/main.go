// @title         userhub API
// @version       1.0
// @description   User directory CRUD with JWT registration and login.
// @BasePath      /api
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer JWT. Both "Bearer <JWT>" and "<JWT>" are accepted.
package main

//go:generate swag init -g cmd/server/main.go -d ../.. -o ../../docs

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	swagger "github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	_ "github.com/artem13815/userhub/docs"

	// internal imports
	apihttp "github.com/artem13815/userhub/api/http"
	"github.com/artem13815/userhub/api/http/handlers"
	"github.com/artem13815/userhub/api/http/middleware"
	"github.com/artem13815/userhub/pkg/auth"
	"github.com/artem13815/userhub/pkg/config"
	"github.com/artem13815/userhub/pkg/health"
	"github.com/artem13815/userhub/pkg/logger"
	"github.com/artem13815/userhub/pkg/metrics"
	"github.com/artem13815/userhub/pkg/security/hash"
	"github.com/artem13815/userhub/pkg/security/jwt"
	"github.com/artem13815/userhub/pkg/sentry"
	"github.com/artem13815/userhub/pkg/user"
)

func main() {
	// Load configuration from env/.env
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log := logger.SetupDefault(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, log)
	stop()
	if err != nil {
		log.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	reporter := sentry.New(cfg.SentryDSN, cfg.SentryEnvironment, log)
	defer reporter.Flush(cfg.ShutdownTimeout)

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(); err != nil {
			log.Warn("close store", slog.String("error", err.Error()))
		}
	}()
	log.Info("store ready", slog.String("driver", cfg.StorageDriver))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)

	// Wire dependencies (Clean Architecture)
	jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	authUC := auth.NewAuthService(st.credentials, hash.NewBcryptHasher(cfg.BcryptCost), jwtGen,
		auth.WithLogger(log),
		auth.WithRecorder(collector),
	)
	userUC := user.NewService(st.users, log)
	readiness := health.NewService(st.checker)

	limiter := middleware.NewRateLimiter(middleware.PerMinute(cfg.AuthRatePerMin, cfg.AuthRateBurst), log)
	defer limiter.Stop()

	deps := apihttp.Deps{
		Auth:        handlers.NewAuthHandler(authUC),
		Users:       handlers.NewUserHandler(userUC),
		Health:      handlers.NewHealthHandler(readiness),
		AuthLimiter: limiter.Middleware(),
		Metrics:     metrics.Handler(reg),
	}
	if cfg.UsersRequireAuth {
		deps.UsersAuth = jwt.NewAuthMiddleware(jwt.NewVerifier(cfg.JWTSecret, cfg.JWTIssuer))
	} else {
		log.Warn("USERS_REQUIRE_AUTH=false, /api/users is open")
	}

	app := fiber.New(fiber.Config{
		AppName:               "userhub",
		DisableStartupMessage: true,
		ErrorHandler:          apihttp.NewErrorHandler(log, reporter),
	})
	app.Use(requestid.New())
	app.Use(middleware.NewLoggingMiddleware(log))
	app.Use(middleware.NewMetricsMiddleware(collector))
	app.Use(recover.New(recover.Config{EnableStackTrace: true}))

	// Register routes
	apihttp.Register(app, deps)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", slog.String("port", cfg.Port))
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))
	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
