package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/homeoclinic/clinic-api/internal/config"
	"github.com/homeoclinic/clinic-api/internal/domain/appointments"
	"github.com/homeoclinic/clinic-api/internal/domain/dashboard"
	"github.com/homeoclinic/clinic-api/internal/domain/expenses"
	"github.com/homeoclinic/clinic-api/internal/domain/inventory"
	"github.com/homeoclinic/clinic-api/internal/domain/patients"
	"github.com/homeoclinic/clinic-api/internal/domain/visits"
	"github.com/homeoclinic/clinic-api/internal/platform/advice"
	"github.com/homeoclinic/clinic-api/internal/platform/auth"
	"github.com/homeoclinic/clinic-api/internal/platform/db"
	"github.com/homeoclinic/clinic-api/internal/platform/kvstore"
	"github.com/homeoclinic/clinic-api/internal/platform/middleware"
)

// patientDirectory adapts the patient repository to the existence check
// the visits package needs, avoiding a circular import between the two
// domains.
type patientDirectory struct {
	repo patients.Repository
}

func (d patientDirectory) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, err := d.repo.GetByID(ctx, id)
	if errors.Is(err, patients.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// repositories bundles one backend's repository set.
type repositories struct {
	patients     patients.Repository
	visits       visits.Repository
	appointments appointments.Repository
	inventory    inventory.Repository
	expenses     expenses.Repository
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "clinic-server",
		Short: "Clinic practice management API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the clinic API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func buildRepositories(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*repositories, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		logger.Info().Msg("connected to postgres")
		return &repositories{
			patients:     patients.NewPGRepository(pool),
			visits:       visits.NewPGRepository(pool),
			appointments: appointments.NewPGRepository(pool),
			inventory:    inventory.NewPGRepository(pool),
			expenses:     expenses.NewPGRepository(pool),
		}, pool.Close, nil

	case config.BackendRedis:
		rdb, err := kvstore.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		logger.Info().Msg("connected to redis")
		store := kvstore.New(rdb)
		visitRepo := visits.NewRedisRepository(store)
		return &repositories{
			patients:     patients.NewRedisRepository(store, visitRepo),
			visits:       visitRepo,
			appointments: appointments.NewRedisRepository(store),
			inventory:    inventory.NewRedisRepository(store),
			expenses:     expenses.NewRedisRepository(store),
		}, func() { _ = rdb.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

func runServer() error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()
	repos, closeStorage, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to storage")
	}
	defer closeStorage()

	// Sessions
	sessions := auth.NewManager(cfg.ClinicPIN, cfg.SessionSecret, cfg.SessionTTL())
	defer sessions.Close()

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// Route groups: the public group carries login, the booking form and
	// clinic settings; everything else sits behind the session check.
	public := e.Group("/api")
	protected := e.Group("/api", sessions.Middleware())
	booking := e.Group("/public")

	auth.NewHandler(sessions).RegisterRoutes(public, protected)

	public.GET("/settings", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"clinicName":   cfg.ClinicName,
			"doctorName":   cfg.DoctorName,
			"doctorDegree": cfg.DoctorDegree,
			"doctorMobile": cfg.DoctorMobile,
		})
	})

	// Domain services
	patientSvc := patients.NewService(repos.patients, logger)
	visitSvc := visits.NewService(repos.visits, patientDirectory{repos.patients}, logger)
	apptSvc := appointments.NewService(repos.appointments, logger)
	stockSvc := inventory.NewService(repos.inventory, logger)
	expenseSvc := expenses.NewService(repos.expenses, logger)
	statsSvc := dashboard.NewService(repos.patients, repos.visits, repos.appointments, repos.inventory)

	patients.NewHandler(patientSvc).RegisterRoutes(protected)
	visits.NewHandler(visitSvc).RegisterRoutes(protected)
	apptHandler := appointments.NewHandler(apptSvc)
	apptHandler.RegisterRoutes(protected)
	apptHandler.RegisterPublicRoutes(booking)
	inventory.NewHandler(stockSvc).RegisterRoutes(protected)
	expenses.NewHandler(expenseSvc).RegisterRoutes(protected)
	dashboard.NewHandler(statsSvc, logger).RegisterRoutes(protected)

	// AI assistant, only when a key is configured.
	var adviceSvc *advice.Service
	if cfg.GeminiAPIKey != "" {
		gemini, err := advice.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Error().Err(err).Msg("AI assistant disabled: gemini client failed")
		} else {
			defer gemini.Close()
			adviceSvc = advice.NewService(gemini, logger)
			logger.Info().Str("model", gemini.Model()).Msg("AI assistant enabled")
		}
	}
	advice.NewHandler(adviceSvc).RegisterRoutes(protected)

	// Start and wait for shutdown.
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("backend", cfg.StorageBackend).Msg("server started")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
