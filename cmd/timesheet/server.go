package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"syscall"
	"time"
)

const shutdownTimeout = 30 * time.Second

func run(addr string, handler http.Handler, start func(*http.Server, net.Listener) error, logger func(string, ...any)) error {
	if start == nil {
		return fmt.Errorf("start function is required")
	}

	// Uploads are bounded by the router, so the body timeouts only need to
	// cover a workbook of that size on a slow link.
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer func() {
		_ = listener.Close()
	}()

	if logger != nil {
		logger("timesheet listening on %s", listener.Addr())
	}

	serveErr := make(chan error, 1)
	go func() {
		if startErr := start(server, listener); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			serveErr <- startErr
			return
		}
		serveErr <- nil
	}()

	quit := make(chan os.Signal, 1)
	signalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signalStop(quit)

	select {
	case err = <-serveErr:
		return err
	case shutdownSignal := <-quit:
		if logger != nil {
			logger("shutdown signal received (%s), draining in-flight requests", shutdownSignal)
		}
	}

	ctx, cancel := newShutdownContext(context.Background(), shutdownTimeout)
	defer cancel()

	if err = server.Shutdown(ctx); err != nil {
		if logger != nil {
			logger("server forced to shutdown: %v", err)
		}
	} else if logger != nil {
		logger("server exited gracefully")
	}

	select {
	case err = <-serveErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		if logger != nil {
			logger("timed out waiting for server goroutine to exit: %v", ctx.Err())
		}
	}

	return nil
}
