package main

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
	_ "time/tzdata"

	"storecourier/cmd"
	"storecourier/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "storecourier",
		Short:         "Inter-store courier pickup service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCommand(), newMigrateCommand(), newImportStoresCommand())
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the wizard HTTP API and the background jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			configs := getConfigs()
			logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

			db := openDatabase(configs)
			app, err := cmd.NewCompositionRoot(ctx, configs, db, logger)
			if err != nil {
				return err
			}
			defer func() {
				_ = app.Close()
			}()

			jobManager := app.CreateJobManager()
			if err = jobManager.StartAll(); err != nil {
				return err
			}
			defer jobManager.StopAll()

			return startWebServer(ctx, app, configs.HTTPPort)
		},
	}
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(_ *cobra.Command, _ []string) error {
			db := openDatabase(getConfigs())
			if err := postgres.Migrate(db); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			log.Info("schema is up to date")
			return nil
		},
	}
}

func newImportStoresCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import-stores <file.json>",
		Short: "Load the store directory from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			configs := getConfigs()
			logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
			app, err := cmd.NewCompositionRoot(c.Context(), configs, openDatabase(configs), logger)
			if err != nil {
				return err
			}
			defer func() {
				_ = app.Close()
			}()

			n, err := cmd.ImportStores(c.Context(), f, app.DirectoryRepository())
			if err != nil {
				return err
			}
			log.Infof("imported %d stores", n)
			return nil
		},
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}

	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	return config
}

func openDatabase(configs cmd.Config) *gorm.DB {
	db, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	return db
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	app.CreateHTTPServer().Register(e)

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
