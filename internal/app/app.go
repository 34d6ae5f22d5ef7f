package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	postgres "github.com/mindpath/mindpath-backend/internal/adapter/postgres"
	boardrepo "github.com/mindpath/mindpath-backend/internal/adapter/postgres/board"
	calendarrepo "github.com/mindpath/mindpath-backend/internal/adapter/postgres/calendar"
	tokenrepo "github.com/mindpath/mindpath-backend/internal/adapter/postgres/token"
	trackerrepo "github.com/mindpath/mindpath-backend/internal/adapter/postgres/tracker"
	userrepo "github.com/mindpath/mindpath-backend/internal/adapter/postgres/user"
	"github.com/mindpath/mindpath-backend/internal/auth"
	"github.com/mindpath/mindpath-backend/internal/config"
	"github.com/mindpath/mindpath-backend/internal/mail"
	authsvc "github.com/mindpath/mindpath-backend/internal/service/auth"
	boardsvc "github.com/mindpath/mindpath-backend/internal/service/board"
	calendarsvc "github.com/mindpath/mindpath-backend/internal/service/calendar"
	trackersvc "github.com/mindpath/mindpath-backend/internal/service/tracker"
	usersvc "github.com/mindpath/mindpath-backend/internal/service/user"
	"github.com/mindpath/mindpath-backend/internal/transport/middleware"
	"github.com/mindpath/mindpath-backend/internal/transport/rest"
	"github.com/mindpath/mindpath-backend/migrations"
)

// mailSender is the welcome-email side channel the auth service depends on.
type mailSender interface {
	SendWelcome(ctx context.Context, email, name string) error
}

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and handlers, and serves HTTP until ctx is
// canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Repositories
	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	boards := boardrepo.New(pool)
	entries := calendarrepo.New(pool)
	counters := trackerrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	// Auth infrastructure
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	var sender mailSender = mail.NopSender{}
	if cfg.Mail.Enabled {
		smtp, err := mail.NewSender(logger, cfg.Mail)
		if err != nil {
			return fmt.Errorf("init mail sender: %w", err)
		}
		sender = smtp
	} else {
		logger.Warn("mail disabled, welcome emails are dropped")
	}

	// Services
	authService := authsvc.NewService(logger, users, tokens, txm, jwtManager, sender, cfg.Auth)
	userService := usersvc.NewService(logger, users)
	boardService := boardsvc.NewService(logger, boards, txm)
	calendarService := calendarsvc.NewService(logger, entries, txm)
	trackerService := trackersvc.NewService(logger, counters, txm)

	// HTTP surface
	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handlers := rest.Handlers{
		Auth:     rest.NewAuthHandler(authService, logger),
		Profile:  rest.NewProfileHandler(userService, logger),
		Board:    rest.NewBoardHandler(boardService, logger),
		Calendar: rest.NewCalendarHandler(calendarService, logger),
		Tracker:  rest.NewTrackerHandler(trackerService, logger),
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
	}

	router := rest.NewRouter(handlers, rest.RouterDeps{
		Logger:        logger,
		Resolver:      authService,
		LegacyEnabled: cfg.Auth.LegacyIdentityEnabled,
		CORS:          cfg.CORS,
		RateLimiter:   limiter,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
