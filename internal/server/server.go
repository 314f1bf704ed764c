// Package server boots the HTTP process: configuration, record store
// connection, dependency wiring, and graceful shutdown. The store is
// opened here and closed here; nothing else owns connection state.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rahulkhanna/dukaan/app/routes"
	"github.com/rahulkhanna/dukaan/config"
	"github.com/rahulkhanna/dukaan/database/indexes"
	"github.com/rahulkhanna/dukaan/pkg/logger"
	"github.com/rahulkhanna/dukaan/pkg/metrics"
	"github.com/rahulkhanna/dukaan/pkg/middleware"
	"github.com/rahulkhanna/dukaan/pkg/reqid"
	"github.com/rahulkhanna/dukaan/pkg/router"
	"github.com/rahulkhanna/dukaan/pkg/store"
)

const shutdownTimeout = 10 * time.Second

// Start runs the server until SIGINT/SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	bootCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	st, err := store.ConnectMongo(bootCtx, config.MongoURI(), config.MongoDatabase(), indexes.All())
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.Close(ctx); err != nil {
			logger.Error("store close", "error", err)
		}
	}()
	logger.Info("record store connected", "database", config.MongoDatabase())

	// Optional Mongo log sink, sharing the store's client.
	if col := config.LogCollection(); col != "" {
		sink := logger.NewMongoHandler(st.Database().Collection(col))
		defer sink.Close()
		logger.AttachHandler(sink)
	}

	r := router.New()
	r.Use(
		metrics.Middleware(),
		reqid.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
	)
	routes.RegisterAPI(r, st)

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("dukaan listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	logger.Info("shutdown complete")
	return nil
}
