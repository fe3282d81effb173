package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/adapter/postgres"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/adapter/postgres/audit"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/adapter/postgres/container"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/adapter/postgres/userrole"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/auth"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/config"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/metrics"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/service/access"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/service/audittrail"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/service/catalog"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/transport/middleware"
	"github.com/Yamaha-Motor-Manufacturing-Corp/ymmcContainerTrackerApi/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled, then
// shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("auth_enabled", cfg.Auth.Enabled),
	)
	if !cfg.Auth.Enabled {
		logger.Warn("authorization disabled: every capability check passes",
			slog.String("development_user", cfg.Auth.DevelopmentUser))
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	svc := NewServices(logger, cfg, Stores{
		Containers: container.New(pool),
		Audit:      audit.New(pool),
		Roles:      userrole.New(pool),
		Tx:         postgres.NewTxManager(pool),
	})

	handler := NewHandler(logger, cfg, svc, pool)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, logger, srv, cfg.Server.ShutdownTimeout)
}

// Stores are the persistence dependencies of the services.
type Stores struct {
	Containers *container.Repo
	Audit      *audit.Repo
	Roles      *userrole.Repo
	Tx         *postgres.TxManager
}

// Services are the wired application services.
type Services struct {
	Access  *access.Service
	Trail   *audittrail.Service
	Catalog *catalog.Service
	Metrics *metrics.Registry
	JWT     *auth.JWTManager
}

// NewServices wires the core services over st according to cfg.
func NewServices(logger *slog.Logger, cfg *config.Config, st Stores) Services {
	var reg *metrics.Registry
	if cfg.Metrics.Enabled {
		reg = metrics.NewRegistry()
	}

	var jwt *auth.JWTManager
	if cfg.Auth.JWTEnabled() {
		jwt = auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTAccessTTL)
	}

	accessSvc := access.NewService(logger, st.Roles, cfg.Auth.Enabled)
	trail := audittrail.NewService(logger, st.Audit, audittrail.Limits{
		DefaultPageSize: cfg.Audit.DefaultPageSize,
		MaxPageSize:     cfg.Audit.MaxPageSize,
		RecentCount:     cfg.Audit.RecentCount,
	})
	catalogSvc := catalog.NewService(logger, st.Containers, trail, accessSvc, st.Tx, reg, catalog.Options{
		RecordViews: cfg.Audit.RecordViews,
	})

	return Services{
		Access:  accessSvc,
		Trail:   trail,
		Catalog: catalogSvc,
		Metrics: reg,
		JWT:     jwt,
	}
}

// NewHandler builds the HTTP handler: API routes behind the middleware
// stack, health checks and metrics outside it.
func NewHandler(logger *slog.Logger, cfg *config.Config, svc Services, db interface {
	Ping(ctx context.Context) error
}) http.Handler {
	identity := middleware.IdentityOptions{
		AuthEnabled:      cfg.Auth.Enabled,
		RemoteUserHeader: cfg.Auth.RemoteUserHeader,
		DevelopmentUser:  cfg.Auth.DevelopmentUser,
	}

	var validator interface {
		ValidateAccessToken(token string) (string, error)
	}
	if svc.JWT != nil {
		validator = svc.JWT
	}

	api := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.ClientMeta(),
		middleware.Identity(validator, identity),
		middleware.Logger(logger),
	)

	handlers := rest.Handlers{
		Containers: rest.NewContainerHandler(svc.Catalog, logger),
		Audit:      rest.NewAuditHandler(svc.Catalog, logger),
		Me:         rest.NewMeHandler(svc.Access),
		Health:     rest.NewHealthHandler(db, Version),
	}
	if svc.Metrics != nil {
		handlers.Metrics = svc.Metrics.Handler()
		handlers.MetricsPath = cfg.Metrics.Path
	}

	return rest.NewRouter(handlers, api)
}

func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("app: http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", shutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}
	logger.Info("shutdown complete")
	return nil
}
