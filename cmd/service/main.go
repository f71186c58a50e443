package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "freight/internal/app"
	"freight/internal/handlers/rest/containers"
	"freight/internal/handlers/rest/healthcheck_head"
	"freight/internal/handlers/rest/offers"
	"freight/internal/handlers/rest/orders"
	"freight/internal/handlers/rest/ping_get"
	"freight/internal/handlers/rest/shipments"
	"freight/internal/handlers/rest/users"
	"freight/internal/pkg/config"
	"freight/internal/pkg/dotenv"
	"freight/internal/pkg/kafka"
	metrics_system "freight/internal/pkg/metrics"
	"freight/internal/pkg/middlewares/auth"
	"freight/internal/pkg/middlewares/graceful_shutdown"
	"freight/internal/pkg/middlewares/metrics"
	"freight/internal/pkg/middlewares/rate_limiter"
	"freight/internal/pkg/middlewares/timeout"
	"freight/internal/pkg/postgres"
	"freight/pkg/logger"
	"freight/pkg/logger/zap_adapter"
)

func main() {
	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			stdlog.Fatalf("failed to load .env file: %v", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(zap_adapter.WithFile(cfg.Log.File))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With(logger.NewField("component", "main"))

	mainLog.Info("starting freight service")

	if err := cfg.ValidateService(); err != nil {
		mainLog.Error("validate config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // shutdownCtx и ongoingCtx намеренно наследуются от context.Background()
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, log, postgres.NewDsn(&cfg.Database)); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	producer, err := kafka.NewAsyncProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, producer, cfg)
	if err != nil {
		if closeErr := producer.Close(); closeErr != nil {
			runLog.Error("failed to close kafka producer", logger.NewField("error", closeErr))
		}
		return fmt.Errorf("business logic: %w", err)
	}
	// Publisher закрывает продюсер сам, после отправки накопленных событий.
	defer func() {
		if err := businessApp.ShipmentEvents.Close(); err != nil {
			runLog.Error("failed to close shipment events publisher", logger.NewField("error", err))
		}
	}()

	metrics_system.StartSystemMetricsCollector(ctx, metrics_system.DefaultCollectInterval)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(log, &isShuttingDown, pool, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil канал при выключенном pprof, кейс не срабатывает
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	db healthcheck_head.Pinger,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(log, isShuttingDown))
	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, rate_limiter.New(cfg.RateLimiterQPS, cfg.RateLimiterBurst)))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log)).Methods(http.MethodGet)

	api := router.NewRoute().Subrouter()
	api.Use(auth.Middleware(log, app.Verifier, app.ServiceUser))

	usersHandler := users.New(log, app.ServiceUser)
	api.HandleFunc("/me", usersHandler.Me).Methods(http.MethodGet)
	api.HandleFunc("/users", usersHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", usersHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", usersHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}", usersHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/users/{id}/relations", usersHandler.ListRelations).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/relations", usersHandler.AddRelation).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}/relations/{related_id}", usersHandler.RemoveRelation).Methods(http.MethodDelete)

	ordersHandler := orders.New(log, app.ServiceOrder)
	api.HandleFunc("/orders", ordersHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/orders", ordersHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}", ordersHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}", ordersHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/orders/{id}", ordersHandler.Delete).Methods(http.MethodDelete)

	offersHandler := offers.New(log, app.ServiceOffer)
	api.HandleFunc("/offers", offersHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/offers", offersHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/offers/{id}", offersHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/offers/{id}", offersHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/offers/{id}", offersHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/offers/{id}/status", offersHandler.SetStatus).Methods(http.MethodPost)

	shipmentsHandler := shipments.New(log, app.ServiceShipment)
	api.HandleFunc("/shipments", shipmentsHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/shipments/{id}", shipmentsHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/shipments/{id}", shipmentsHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/shipments/{id}", shipmentsHandler.Delete).Methods(http.MethodDelete)

	containersHandler := containers.New(log, app.ServiceContainer)
	api.HandleFunc("/containers", containersHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/containers", containersHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/containers/{id}", containersHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/containers/{id}", containersHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/containers/{id}", containersHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/containers/{id}/link", containersHandler.Link).Methods(http.MethodPost)
	api.HandleFunc("/containers/{id}/link/{shipment_id}", containersHandler.Unlink).Methods(http.MethodDelete)
	api.HandleFunc("/containers/{id}/shipments", containersHandler.ListShipments).Methods(http.MethodGet)
	api.HandleFunc("/containers/{id}/items", containersHandler.ListItems).Methods(http.MethodGet)
	api.HandleFunc("/containers/{id}/items", containersHandler.AddItem).Methods(http.MethodPost)
	api.HandleFunc("/containers/{id}/items/{item_id}", containersHandler.UpdateItem).Methods(http.MethodPut)
	api.HandleFunc("/containers/{id}/items/{item_id}", containersHandler.DeleteItem).Methods(http.MethodDelete)

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, nil)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
