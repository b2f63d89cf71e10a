package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/frontdesk/internal/audit"
	"github.com/BruksfildServices01/frontdesk/internal/config"
	dbpkg "github.com/BruksfildServices01/frontdesk/internal/db"
	"github.com/BruksfildServices01/frontdesk/internal/infra/blob"
	"github.com/BruksfildServices01/frontdesk/internal/infra/kv"
	"github.com/BruksfildServices01/frontdesk/internal/logger"
	"github.com/BruksfildServices01/frontdesk/internal/routes"
	ucAppointment "github.com/BruksfildServices01/frontdesk/internal/usecase/appointment"
)

const shutdownTimeout = 10 * time.Second

func main() {
	rootCmd := &cobra.Command{
		Use:   "frontdesk",
		Short: "Hospital front-desk dashboard API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(false)
		},
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var skipMigrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(skipMigrate)
		},
	}
	cmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not migrate the schema on boot")
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the schema and install the bulk delete function",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logger.New(cfg.LogLevel, cfg.LogFormat)

			db, err := dbpkg.NewDB(cfg, log)
			if err != nil {
				return err
			}
			if err := dbpkg.Migrate(db); err != nil {
				return err
			}
			log.Info().Msg("migration complete")
			return nil
		},
	}
}

func newKV(ctx context.Context, cfg *config.Config, log zerolog.Logger) (kv.Store, func(), error) {
	if cfg.RedisURL == "" {
		log.Info().Msg("REDIS_URL not set, using in-process row locks and revocations")
		return kv.NewMemory(), func() {}, nil
	}
	r, err := kv.NewRedis(ctx, cfg.RedisURL, "frontdesk:")
	if err != nil {
		return nil, nil, err
	}
	return r, func() { _ = r.Close() }, nil
}

func newArchiver(cfg *config.Config) ucAppointment.Archiver {
	if !cfg.ExportArchiveEnabled() {
		return blob.Noop{}
	}
	return blob.NewS3Archiver(blob.S3Config{
		Bucket:    cfg.ExportBucket,
		Region:    cfg.ExportRegion,
		Endpoint:  cfg.ExportEndpoint,
		AccessKey: cfg.AWSAccessKey,
		SecretKey: cfg.AWSSecretKey,
	})
}

func runServer(skipMigrate bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		return err
	}
	if !skipMigrate {
		if err := dbpkg.Migrate(db); err != nil {
			return err
		}
	}

	store, closeKV, err := newKV(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeKV()

	// ======================================================
	// AUDIT
	// ======================================================
	sinks := []audit.Sink{audit.New(db)}
	if len(cfg.AuditKafkaBrokers) > 0 {
		k := audit.NewKafkaSink(cfg.AuditKafkaBrokers, cfg.AuditKafkaTopic)
		defer k.Close()
		sinks = append(sinks, k)
	}
	dispatcher := audit.NewDispatcher(log, sinks...)
	defer dispatcher.Close()

	// ======================================================
	// HTTP
	// ======================================================
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	r, err := routes.NewEngine(cfg)
	if err != nil {
		return err
	}

	routes.RegisterRoutes(ctx, r, cfg, routes.Infra{
		DB:       db,
		KV:       store,
		Audit:    dispatcher,
		Archiver: newArchiver(cfg),
		Log:      log,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("env", cfg.Env).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
