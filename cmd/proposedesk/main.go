// @title			ProposeDesk API
// @version		1.0
// @description	Backend for the propose list and kanban views: persisted list-query state, paginated upstream reads, exports.
// @BasePath		/api/v1
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and the account token.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/mtlprog/proposedesk/internal/cache"
	"github.com/mtlprog/proposedesk/internal/config"
	"github.com/mtlprog/proposedesk/internal/database"
	"github.com/mtlprog/proposedesk/internal/handler"
	"github.com/mtlprog/proposedesk/internal/logger"
	"github.com/mtlprog/proposedesk/internal/metrics"
	"github.com/mtlprog/proposedesk/internal/repository"
	"github.com/mtlprog/proposedesk/internal/service"
	"github.com/mtlprog/proposedesk/internal/upstream"
)

const cacheNamespace = "proposedesk"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	app := &cli.App{
		Name:  "proposedesk",
		Usage: "List-query backend for the proposes dashboard",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   logger.FormatJSON,
				Usage:   "Log format (json, text)",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:     "database-url",
				Aliases:  []string{"d"},
				Value:    config.DefaultDatabaseURL,
				Usage:    "PostgreSQL database URL",
				EnvVars:  []string{"DATABASE_URL"},
				Required: true,
			},
			&cli.IntFlag{
				Name:    "db-max-conns",
				Value:   config.DefaultDBMaxConns,
				Usage:   "Maximum connections to the view-state store",
				EnvVars: []string{"DB_MAX_CONNS"},
			},
		},
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
				Name:   "migrate",
				Usage:  "Apply database migrations and exit",
				Action: runMigrate,
			},
			{
				Name:   "migrate-down",
				Usage:  "Roll back the latest database migration",
				Action: runMigrateDown,
			},
			{
				Name:  "purge-states",
				Usage: "Delete persisted view states that were not used recently",
				Flags: []cli.Flag{
					&cli.DurationFlag{
						Name:    "older-than",
						Value:   config.DefaultPurgeAge,
						Usage:   "Idle age after which a view state is deleted",
						EnvVars: []string{"PURGE_OLDER_THAN"},
					},
				},
				Action: runPurgeStates,
			},
			{
				Name:  "create-account",
				Usage: "Create an account and print its bearer token",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Usage:    "Account name",
						Required: true,
					},
				},
				Action: runCreateAccount,
			},
		},
		Action: runServe,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
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
		&cli.StringFlag{
			Name:    "upstream-url",
			Value:   config.DefaultUpstreamURL,
			Usage:   "Base URL of the proposes REST API",
			EnvVars: []string{"UPSTREAM_URL"},
		},
		&cli.StringFlag{
			Name:    "upstream-token",
			Usage:   "Bearer token sent to the proposes REST API",
			EnvVars: []string{"UPSTREAM_TOKEN"},
		},
		&cli.DurationFlag{
			Name:    "upstream-timeout",
			Value:   config.DefaultUpstreamTimeout,
			Usage:   "Timeout of a single upstream request",
			EnvVars: []string{"UPSTREAM_TIMEOUT"},
		},
		&cli.StringFlag{
			Name:    "redis-url",
			Usage:   "Redis URL for the page cache (in-memory cache when empty)",
			EnvVars: []string{"REDIS_URL"},
		},
		&cli.DurationFlag{
			Name:    "cache-ttl",
			Value:   config.DefaultCacheTTL,
			Usage:   "How long fetched pages are reused",
			EnvVars: []string{"CACHE_TTL"},
		},
		&cli.DurationFlag{
			Name:    "search-debounce",
			Value:   config.DefaultSearchDebounce,
			Usage:   "Quiet period before a typed search is applied",
			EnvVars: []string{"SEARCH_DEBOUNCE"},
		},
		&cli.DurationFlag{
			Name:    "session-idle",
			Value:   config.DefaultSessionIdle,
			Usage:   "How long an unused view session stays in memory",
			EnvVars: []string{"SESSION_IDLE"},
		},
		&cli.StringSliceFlag{
			Name:    "cors-origins",
			Usage:   "Browser origins allowed to call the API",
			EnvVars: []string{"CORS_ORIGINS"},
		},
		&cli.StringFlag{
			Name:    "catalog",
			Usage:   "Path to a status catalog YAML file (embedded default when empty)",
			EnvVars: []string{"CATALOG_PATH"},
		},
	}
}

// serverConfig reads the serve flags. Running without a command leaves them
// unset, so zero values fall back to the defaults.
func serverConfig(c *cli.Context) config.Server {
	cfg := config.Server{
		Port:            c.String("port"),
		UpstreamURL:     c.String("upstream-url"),
		UpstreamToken:   c.String("upstream-token"),
		UpstreamTimeout: c.Duration("upstream-timeout"),
		RedisURL:        c.String("redis-url"),
		CacheTTL:        c.Duration("cache-ttl"),
		SearchDebounce:  c.Duration("search-debounce"),
		SessionIdle:     c.Duration("session-idle"),
		CatalogPath:     c.String("catalog"),
	}
	for _, origin := range c.StringSlice("cors-origins") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	if cfg.Port == "" {
		cfg.Port = config.DefaultPort
	}
	if cfg.UpstreamURL == "" {
		cfg.UpstreamURL = config.DefaultUpstreamURL
	}
	if cfg.UpstreamTimeout <= 0 {
		cfg.UpstreamTimeout = config.DefaultUpstreamTimeout
	}
	return cfg
}

func dbOptions(c *cli.Context) []database.Option {
	return []database.Option{database.WithMaxConns(int32(c.Int("db-max-conns")))}
}

// openDatabase connects and applies pending migrations.
func openDatabase(c *cli.Context) (*database.DB, error) {
	ctx := c.Context

	db, err := database.New(ctx, c.String("database-url"), dbOptions(c)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(ctx, db.Pool()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

func newCache(ctx context.Context, redisURL string) (cache.Cache, func(), error) {
	if redisURL == "" {
		slog.Info("using in-memory page cache")
		return cache.NewMemory(), func() {}, nil
	}

	rc, err := cache.NewRedis(ctx, redisURL, cacheNamespace)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	slog.Info("using redis page cache")
	return rc, func() {
		if err := rc.Close(); err != nil {
			slog.Warn("failed to close redis", "error", err)
		}
	}, nil
}

func runServe(c *cli.Context) error {
	ctx := c.Context
	cfg := serverConfig(c)

	catalog, err := config.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	pageCache, closeCache, err := newCache(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	defer closeCache()

	m := metrics.New()
	client := upstream.NewClient(cfg.UpstreamURL, cfg.UpstreamToken, cfg.UpstreamTimeout, m)

	lists := service.NewListService(
		repository.NewViewStateRepository(db.Pool()),
		client,
		pageCache,
		catalog,
		m,
		service.Options{
			CacheTTL:       cfg.CacheTTL,
			SearchDebounce: cfg.SearchDebounce,
			SessionIdle:    cfg.SessionIdle,
			Prefetch:       true,
		},
	)

	janitorCtx, stopJanitor := context.WithCancel(ctx)
	defer stopJanitor()
	go lists.RunJanitor(janitorCtx)

	h := handler.New(
		lists,
		service.NewNotificationService(client),
		repository.NewAccountRepository(db.Pool()),
		m,
		cfg.CORSOrigins,
	)
	h.AddHealthCheck("database", db)
	if rc, ok := pageCache.(*cache.RedisCache); ok {
		h.AddHealthCheck("redis", rc)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h.Routes(),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server",
			"server_addr", "http://localhost:"+cfg.Port,
			"upstream", cfg.UpstreamURL,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	stopJanitor()
	lists.Close(shutdownCtx)

	slog.Info("server stopped")
	return nil
}

func runMigrate(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	version, err := database.MigrationVersion(c.Context, db.Pool())
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	slog.Info("database is up to date", "version", version)
	return nil
}

func runMigrateDown(c *cli.Context) error {
	ctx := c.Context

	db, err := database.New(ctx, c.String("database-url"), dbOptions(c)...)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.RollbackMigration(ctx, db.Pool()); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	return nil
}

func runPurgeStates(c *cli.Context) error {
	ctx := c.Context
	olderThan := c.Duration("older-than")
	if olderThan <= 0 {
		return fmt.Errorf("--older-than must be positive, got %s", olderThan)
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	before := time.Now().Add(-olderThan)
	n, err := repository.NewViewStateRepository(db.Pool()).PurgeOlderThan(ctx, before)
	if err != nil {
		return fmt.Errorf("failed to purge view states: %w", err)
	}

	slog.Info("purged view states", "deleted", n, "before", before)
	return nil
}

func runCreateAccount(c *cli.Context) error {
	ctx := c.Context
	name := strings.TrimSpace(c.String("name"))
	if name == "" {
		return errors.New("--name must not be empty")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	account, err := repository.NewAccountRepository(db.Pool()).Create(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	slog.Info("account created", "account_id", account.ID, "name", account.Name)
	fmt.Fprintln(c.App.Writer, account.Token)
	return nil
}
