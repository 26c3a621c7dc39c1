package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/pollsite/bios"
	"github.com/danielhkuo/pollsite/cliparse"
	"github.com/danielhkuo/pollsite/db"
	"github.com/danielhkuo/pollsite/docstore"
	"github.com/danielhkuo/pollsite/logging"
	"github.com/danielhkuo/pollsite/polls"
	"github.com/danielhkuo/pollsite/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", logging.Err(err))
		os.Exit(1)
	}

	slog.SetDefault(logging.New(cfg.Env, os.Stdout))
	slog.Debug("configuration loaded", "env", cfg.Env, "database_type", cfg.DatabaseType, "port", cfg.Port)

	// Connect to the document database
	dbConn, err := db.Open(cfg.DriverName(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", logging.Err(err))
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", logging.Err(err))
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", logging.Err(err))
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Staff bios
	directory := bios.Default()
	if cfg.BiosFile != "" {
		directory, err = bios.LoadFile(cfg.BiosFile)
		if err != nil {
			slog.Error("loading bios failed", "path", cfg.BiosFile, logging.Err(err))
			os.Exit(1)
		}
	}
	slog.Info("Bios loaded", "count", directory.Len())

	// Create router
	svc := polls.NewService(docstore.New(dbConn))
	mux, err := router.NewRouter(svc, directory)
	if err != nil {
		slog.Error("router setup failed", logging.Err(err))
		os.Exit(1)
	}

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		slog.Error("listen failed", "addr", server.Addr, logging.Err(err))
		os.Exit(1)
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	if err := run(&server, ln, ctrlc); err != nil {
		slog.Error("Server closed", logging.Err(err))
		return
	}
	slog.Info("Server closed")
}

// run serves on ln until a signal arrives on stop, then shuts the server
// down. It returns only after in-flight requests have drained, so callers
// can release what the handlers use.
func run(server *http.Server, ln net.Listener, stop <-chan os.Signal) error {
	drained := make(chan struct{})
	go func() {
		defer close(drained)

		// Wait for Ctrl-C signal
		<-stop
		slog.Info("Shutting down", "timeout", shutdownTimeout)
		if err := shutdown(server, shutdownTimeout); err != nil {
			slog.Error("graceful shutdown failed", logging.Err(err))
		}
	}()

	// Serve returns as soon as Shutdown starts, before handlers finish
	err := server.Serve(ln)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-drained
	return nil
}

// shutdown stops accepting connections and waits up to timeout for active
// requests. Connections still open after the deadline are closed.
func shutdown(server *http.Server, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		server.Close()
		return err
	}
	return nil
}
