package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/xtding233/cardforge/internal/api"
	"github.com/xtding233/cardforge/internal/catalog"
	"github.com/xtding233/cardforge/internal/config"
	"github.com/xtding233/cardforge/internal/logging"
	"github.com/xtding233/cardforge/internal/rpc"
	"github.com/xtding233/cardforge/internal/tribes"
)

func main() {
	configPath := flag.String("config", "config/server.yaml", "path to the server config")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	// catalog overrides, hot reloaded
	loader := catalog.NewLoader(cfg.CatalogPath)
	cat, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	logger.Info("catalog loaded", zap.String("version", cat.Version()), zap.String("path", cfg.CatalogPath))

	watcher := catalog.NewFileWatcher(loader.Paths(), cfg.WatchInterval, func(path string) {
		next, err := loader.Reload()
		if err != nil {
			logger.Warn("catalog reload failed, keeping previous", zap.String("path", path), zap.Error(err))
			return
		}
		logger.Info("catalog reloaded", zap.String("path", path), zap.String("version", next.Version()))
	})
	watcher.Start()
	defer watcher.Stop()

	reg, err := tribes.Open(cfg.TribesPath, cfg.Preset, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := api.NewHub(logger)
	go hub.Run(ctx)

	srv := &api.Server{
		Catalog: loader.Current,
		Tribes:  reg,
		Hub:     hub,
		Lang:    cfg.Language,
		Logger:  logger.Named("api"),
	}
	cancelBroadcast := srv.BroadcastTribes()
	defer cancelBroadcast()

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}
	gs := grpc.NewServer(grpc.UnaryInterceptor(rpc.UnaryLogger(logger)))
	rpc.Register(gs, &rpc.Service{Catalog: loader.Current, Tribes: reg, Lang: cfg.Language})

	errc := make(chan error, 2)
	go func() {
		logger.Info("http listening", zap.String("addr", cfg.HTTPAddr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("http: %w", err)
		}
	}()
	go func() {
		logger.Info("grpc listening", zap.String("addr", cfg.GRPCAddr))
		if err := gs.Serve(lis); err != nil {
			errc <- fmt.Errorf("grpc: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err = <-errc:
		logger.Error("server failed", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if serr := httpSrv.Shutdown(shutdownCtx); serr != nil {
		logger.Warn("http shutdown", zap.Error(serr))
	}
	gs.GracefulStop()
	return err
}
