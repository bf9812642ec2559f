// Package qsserve serves the QuickSight REST-JSON API from a local qsstore
// database, so that clients built on qssdk can run against it with
// qssdk.WithEndpoint instead of the real service.
//
// Requests are not authenticated: signatures are neither required nor checked.
package qsserve

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/acksell/qsight/quicksight/qsrest"
	"github.com/acksell/qsight/quicksight/qsstore"
)

// ServerConfig configures the local server.
type ServerConfig struct {
	// Port is the HTTP port to listen on.
	Port int
	// DBPath is the path to the BadgerDB database. Empty for in-memory mode.
	DBPath string
	// Region is used in the ARNs of created resources.
	Region string
	// StoreLogger receives BadgerDB's own log output. Nil discards it.
	StoreLogger badger.Logger
}

type Server struct {
	config     ServerConfig
	store      *qsstore.Store
	httpServer *http.Server
}

// NewServer opens the store the server will serve.
func NewServer(config ServerConfig) (*Server, error) {
	store, err := qsstore.New(qsstore.StoreOptions{
		Path:     config.DBPath,
		InMemory: config.DBPath == "",
		Region:   config.Region,
		Logger:   config.StoreLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating store: %w", err)
	}
	handler, err := NewHandler(store)
	if err != nil {
		store.Close()
		return nil, err
	}
	return &Server{
		config: config,
		store:  store,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", config.Port),
			Handler:      loggingMiddleware(handler),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
	}, nil
}

// Run starts the server and blocks until SIGINT, SIGTERM or a call to
// Shutdown stops it. The store is closed when Run returns, whether the server
// stopped or failed to start.
func (s *Server) Run() error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	stopped := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		select {
		case <-sigCh:
		case <-stopped:
			return
		}
		log.Println("\nShutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.Shutdown(ctx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	s.printBanner()

	err := s.httpServer.ListenAndServe()
	close(stopped)
	// A signal-driven shutdown may still be draining requests.
	<-done
	if !errors.Is(err, http.ErrServerClosed) {
		s.store.Close()
		return err
	}
	return nil
}

// Shutdown stops accepting requests, waits for in-flight ones and closes the
// store. It may be called before Run, in which case Run returns at once.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	return s.store.Close()
}

func (s *Server) printBanner() {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════════════════╗")
	fmt.Println("║                  QuickSight Local Server                     ║")
	fmt.Println("╠══════════════════════════════════════════════════════════════╣")
	fmt.Printf("║  Endpoint: http://localhost:%-33d║\n", s.config.Port)
	if s.config.DBPath == "" {
		fmt.Println("║  Mode: In-memory (data will be lost on exit)                 ║")
	} else {
		fmt.Printf("║  Database: %-50s║\n", truncate(s.config.DBPath, 50))
	}
	fmt.Printf("║  Region: %-52s║\n", truncate(s.store.Region(), 52))
	fmt.Printf("║  Operations: %-48d║\n", len(qsrest.Routes))
	fmt.Println("╠══════════════════════════════════════════════════════════════╣")
	fmt.Println("║  Press Ctrl+C to stop                                        ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════╝")
	fmt.Println()
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// loggingMiddleware logs each request with its status and the error type of
// failed ones.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		if errType := rec.Header().Get(qsrest.HeaderErrorType); errType != "" {
			log.Printf("%s %s %d %s %s", r.Method, r.URL.Path, rec.status, errType, time.Since(start))
			return
		}
		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
