package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/contactdeskhq/contactdesk/internal/config"
	"github.com/contactdeskhq/contactdesk/internal/handler"
	"github.com/contactdeskhq/contactdesk/internal/logging"
	"github.com/contactdeskhq/contactdesk/internal/repository"
	"github.com/contactdeskhq/contactdesk/internal/service"
)

func main() {
	logging.Setup()
	cfg := config.Load()

	pool, err := repository.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	contactRepo := repository.NewPgContactRepository(pool)
	contactService := service.NewContactService(contactRepo)

	h := handler.New(pool, cfg.FrontendURL)
	contactHandler := handler.NewContactHandler(contactService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Root)
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("POST /api/contacts", contactHandler.Create)
	mux.HandleFunc("GET /api/contacts", contactHandler.List)
	mux.HandleFunc("DELETE /api/contacts/{id}", contactHandler.Delete)
	// Everything else falls through to the JSON 404.
	mux.HandleFunc("/", h.NotFound)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h.CORS(handler.RequestLogger(mux)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
