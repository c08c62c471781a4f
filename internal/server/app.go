// Package server assembles the audit service from configuration: database,
// object storage, extraction, model client, locks, notifications and the
// gRPC front end. It also handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/carlosftapiap/arcsapp-sub001/internal/logging"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/audit"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/config"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/extract"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/llm"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/locks"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/notify"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/repositories/repomanager"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/services"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/stages"
	"github.com/carlosftapiap/arcsapp-sub001/internal/server/storage"
	_ "github.com/jackc/pgx/v5/stdlib"

	gs "github.com/carlosftapiap/arcsapp-sub001/internal/server/grpc"
)

// extractionCacheTTL bounds how long extracted text is reused.
const extractionCacheTTL = 30 * 24 * time.Hour

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	server  *gs.GRPCServer
	closers []io.Closer
}

// sqlOpen is a seam for tests.
var sqlOpen = sql.Open

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(c.LogBackend, c.LogLevel, os.Stdout)
	app := &App{config: c, logger: logger}

	if err := app.init(ctx); err != nil {
		app.close(ctx)
		return nil, err
	}
	return app, nil
}

func (app *App) init(ctx context.Context) error {
	c := app.config

	db, err := sqlOpen("pgx", c.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	app.db = db
	app.closers = append(app.closers, db)

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	store, err := storage.NewStore(ctx, c)
	if err != nil {
		return fmt.Errorf("storage init error: %w", err)
	}
	if cl, ok := store.(io.Closer); ok {
		app.closers = append(app.closers, cl)
	}

	catalog, err := stages.Load(c.StageCatalogPath)
	if err != nil {
		return err
	}

	var extractor extract.Extractor = extract.NewDocumentExtractor(c.MaxDocumentBytes())
	if c.CacheDir != "" {
		cache, err := extract.OpenBadgerCache(c.CacheDir, extractionCacheTTL)
		if err != nil {
			return err
		}
		app.closers = append(app.closers, cache)
		extractor = extract.NewCached(extractor, cache, c.MaxDocumentBytes(), app.logger)
	}

	model := llm.NewRetrying(
		llm.NewOpenAIClient(c.OpenAIAPIKey, c.OpenAIBaseURL),
		llm.RetryPolicy{MaxRetries: uint64(max(c.MaxRetries, 0)), Base: c.BackoffBase, Max: c.BackoffMax},
		app.logger,
	)

	var locker locks.Locker = locks.NewLocalLocker()
	if c.RedisAddr != "" {
		rl, err := locks.NewRedisLocker(ctx, c.RedisAddr, c.LockTTL)
		if err != nil {
			return err
		}
		app.closers = append(app.closers, rl)
		locker = rl
	}

	var notifier notify.Notifier = notify.NewLogNotifier(app.logger)
	if c.PubSubProjectID != "" {
		pn, err := notify.NewPubSubNotifier(ctx, c.PubSubProjectID, c.PubSubTopic, c.PubSubCredentialsFile)
		if err != nil {
			return err
		}
		app.closers = append(app.closers, pn)
		notifier = pn
	}

	engine := audit.NewEngine(audit.Deps{
		Store:     audit.NewPostgresStore(db, rm),
		Storage:   store,
		Extractor: extractor,
		Model:     model,
		Notifier:  notifier,
		Locker:    locker,
		Catalog:   catalog,
		Logger:    app.logger,
	}, audit.Config{
		Concurrency: c.AuditConcurrency,
		Invoke: llm.InvokeConfig{
			Model:     c.ModelName,
			MaxTokens: c.MaxTokens,
			Timeout:   c.InvocationTimeout,
		},
		RunCeiling: c.RunCeiling,
	})

	app.server = gs.NewGRPCServer(
		c.EndpointAddrGRPC,
		app.logger,
		engine,
		services.NewAuditService(db, rm),
		services.NewDossierService(db, rm),
		services.NewUploadService(db, rm, store, c.MaxDocumentBytes()),
		c.SecretKey,
	)
	return nil
}

// close releases resources in reverse order of acquisition.
func (app *App) close(ctx context.Context) {
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i].Close(); err != nil {
			app.logger.Warn(ctx, "close failed", "error", err)
		}
	}
	app.closers = nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.close(context.WithoutCancel(ctx))
	app.logger.Info(ctx, "Stopped")
}
