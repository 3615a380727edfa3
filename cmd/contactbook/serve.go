package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpctx "github.com/dtroode/contactbook-server/internal/api/http/context"
	"github.com/dtroode/contactbook-server/internal/api/http/router"
	httpserver "github.com/dtroode/contactbook-server/internal/api/http/server"
	"github.com/dtroode/contactbook-server/internal/config"
	"github.com/dtroode/contactbook-server/internal/credential"
	"github.com/dtroode/contactbook-server/internal/logger"
	"github.com/dtroode/contactbook-server/internal/mailer"
	"github.com/dtroode/contactbook-server/internal/model"
	"github.com/dtroode/contactbook-server/internal/repository/memory"
	"github.com/dtroode/contactbook-server/internal/repository/postgres"
	"github.com/dtroode/contactbook-server/internal/server"
	"github.com/dtroode/contactbook-server/internal/service"
	"github.com/dtroode/contactbook-server/internal/token"
)

const (
	driverPostgres = "postgres"
	driverMemory   = "memory"

	transportSMTP = "smtp"
	transportLog  = "log"

	defaultJWTSecret = "devsecret"
	shutdownTimeout  = 10 * time.Second
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server. The server stops gracefully on SIGINT,
SIGTERM or SIGQUIT, letting in-flight requests finish.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

// stores bundles the repositories the services run on.
type stores struct {
	users    model.UserStore
	contacts model.ContactStore
	close    func() error
}

func openStores(ctx context.Context, cfg config.Database) (stores, error) {
	switch cfg.Driver {
	case driverMemory:
		return stores{
			users:    memory.NewUserRepository(),
			contacts: memory.NewContactRepository(),
			close:    func() error { return nil },
		}, nil
	case driverPostgres:
		db, err := postgres.NewConection(ctx, cfg.DSN, cfg.ConnectRetries)
		if err != nil {
			return stores{}, err
		}
		return stores{
			users:    postgres.NewUserRepository(db),
			contacts: postgres.NewContactRepository(db),
			close:    db.Close,
		}, nil
	default:
		return stores{}, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func newMailer(cfg config.Email, logger *logger.Logger) (model.Mailer, error) {
	switch cfg.Transport {
	case transportSMTP:
		s, err := mailer.NewSMTP(cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	case transportLog:
		return mailer.NewLog(logger), nil
	default:
		return nil, fmt.Errorf("unknown email transport %q", cfg.Transport)
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	logger := logger.NewWithFormat(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	st, err := openStores(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err, "driver", cfg.Database.Driver)
	}
	defer st.close()

	m, err := newMailer(cfg.Email, logger)
	if err != nil {
		logger.Fatal("failed to initialize mailer", "error", err)
	}

	if cfg.JWT.Secret == defaultJWTSecret {
		logger.Warn("JWT_SECRET is unset, signing tokens with the development secret")
	}

	hasher := credential.NewHasher(cfg.Bcrypt.Cost, cfg.Bcrypt.MaxConcurrent)
	credentials := credential.NewStore(st.users, hasher)
	tokenManager := token.NewJWT(cfg.JWT.Secret)

	authService := service.NewAuth(st.users, credentials, tokenManager, m, cfg.FrontendURL, logger)
	contactService := service.NewContact(st.contacts, logger)

	r := router.New(authService, contactService, httpctx.NewManager(), logger)
	srv := httpserver.NewHTTPServer(r.Register(), ":"+cfg.HTTP.Port, cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout)

	errCh := make(chan error, 1)
	go func(s model.Server) {
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		errCh <- s.Start(server.NewSecurityLayer(cfg.HTTP))
	}(srv)

	logAppVersion(logger)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}
	if err := <-errCh; err != nil {
		logger.Error("server exited with error", "error", err)
	}

	logger.Info("shutdown complete")
	return nil
}

func logAppVersion(logger *logger.Logger) {
	logger.Info("build info",
		"version", buildVersion,
		"date", buildDate,
		"commit", buildCommit)
}
