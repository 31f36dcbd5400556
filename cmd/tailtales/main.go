// @title			Tail Tales API
// @version		1.0
// @description	Page view state of the Tail Tales landing site.
// @BasePath		/api/v1

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"

	"github.com/mtlprog/tailtales/internal/config"
	"github.com/mtlprog/tailtales/internal/database"
	"github.com/mtlprog/tailtales/internal/handler"
	"github.com/mtlprog/tailtales/internal/logger"
	"github.com/mtlprog/tailtales/internal/middleware"
	"github.com/mtlprog/tailtales/internal/repository"
	"github.com/mtlprog/tailtales/internal/scheduler"
	"github.com/mtlprog/tailtales/internal/service"
)

func main() {
	if err := config.LoadEnvFile(config.DefaultEnvFile); err != nil {
		slog.Error("failed to load env file", "error", err)
		os.Exit(1)
	}

	app := newApp()

	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

// newApp builds the CLI. The serve flags are declared on the root too, so
// running without a command serves with the same settings.
func newApp() *cli.App {
	return &cli.App{
		Name:  "tailtales",
		Usage: "Tail Tales landing page server",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "json",
				Usage:   "Log format (json, text)",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "database-url",
				Aliases: []string{"d"},
				Value:   config.DefaultDatabaseURL,
				Usage:   "PostgreSQL database URL for page views (in-memory when empty)",
				EnvVars: []string{"DATABASE_URL"},
			},
			&cli.DurationFlag{
				Name:    "view-ttl",
				Value:   config.DefaultViewTTL,
				Usage:   "How long an idle page view is kept",
				EnvVars: []string{"VIEW_TTL"},
			},
		}, serveFlags()...),
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")), c.String("log-format"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the web server",
				Flags:  serveFlags(),
				Action: runServe,
			},
			{
				Name:   "prune-views",
				Usage:  "Remove idle page views once and exit",
				Action: runPruneViews,
			},
		},
		Action: runServe,
	}
}

func serveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Value:   config.DefaultPort,
			Usage:   "HTTP server port",
			EnvVars: []string{"PORT"},
		},
		&cli.DurationFlag{
			Name:    "prune-interval",
			Value:   config.DefaultPruneInterval,
			Usage:   "How often idle page views are removed",
			EnvVars: []string{"PRUNE_INTERVAL"},
		},
	}
}

// serveOptions holds the settings of the serve command.
type serveOptions struct {
	Port          string
	PruneInterval time.Duration
	ViewTTL       time.Duration
	DatabaseURL   string
}

func serveOptionsFrom(c *cli.Context) serveOptions {
	opts := serveOptions{
		Port:          c.String("port"),
		PruneInterval: c.Duration("prune-interval"),
		ViewTTL:       c.Duration("view-ttl"),
		DatabaseURL:   c.String("database-url"),
	}
	if opts.Port == "" {
		opts.Port = config.DefaultPort
	}
	if opts.PruneInterval <= 0 {
		opts.PruneInterval = config.DefaultPruneInterval
	}
	return opts
}

// openStore returns the PostgreSQL view store when a database URL is set and
// the in-memory store otherwise. The returned DB is nil for the latter.
func openStore(ctx context.Context, databaseURL string) (repository.ViewStore, *database.DB, error) {
	if databaseURL == "" {
		slog.Info("using in-memory view store")
		return repository.NewMemoryViewStore(), nil, nil
	}

	db, err := database.New(ctx, databaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(ctx, db.Pool()); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return repository.NewViewRepository(db.Pool()), db, nil
}

func runServe(c *cli.Context) error {
	ctx := c.Context
	opts := serveOptionsFrom(c)

	store, db, err := openStore(ctx, opts.DatabaseURL)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	views := service.NewViewService(store, opts.ViewTTL)

	var pinger handler.Pinger
	if db != nil {
		pinger = db
	}
	h := handler.New(views, pinger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimw.Recoverer)
	h.RegisterRoutes(r)

	sched := scheduler.New(time.Minute)
	err = sched.AddIntervalTask("prune-views", opts.PruneInterval, func(ctx context.Context) error {
		_, err := views.Prune(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to schedule view pruning: %w", err)
	}
	sched.Start()

	server := &http.Server{
		Addr:              ":" + opts.Port,
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "server_addr", "http://localhost:"+opts.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var result *multierror.Error

	select {
	case err := <-serverErr:
		result = multierror.Append(result, fmt.Errorf("server error: %w", err))
	case <-done:
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		result = multierror.Append(result, fmt.Errorf("server shutdown failed: %w", err))
	}
	if err := sched.Stop(shutdownCtx); err != nil {
		result = multierror.Append(result, fmt.Errorf("scheduler stop failed: %w", err))
	}

	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	slog.Info("server stopped")
	return nil
}

func runPruneViews(c *cli.Context) error {
	ctx := c.Context

	store, db, err := openStore(ctx, c.String("database-url"))
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	deleted, err := service.NewViewService(store, c.Duration("view-ttl")).Prune(ctx)
	if err != nil {
		return err
	}

	slog.Info("prune completed", "deleted", deleted)
	return nil
}
