package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/skyframe/skyframe/internal/facts"
	"github.com/skyframe/skyframe/internal/feed"
	"github.com/skyframe/skyframe/internal/media"
	"github.com/skyframe/skyframe/internal/server"
)

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if errors.Is(err, arg.ErrHelp) {
		p, _ := arg.NewParser(arg.Config{Program: "skyframe"}, &args{})
		p.WriteHelp(os.Stdout)
		return
	}
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.logLevel()})))

	source := feed.New(cfg.FeedURL, cfg.FeedTimeout)
	log.Printf("media feed: %s", source.URL())

	srv := server.New(server.Config{
		Source:    source,
		Resolver:  media.Resolver{DateLayout: cfg.DateLayout},
		Facts:     facts.Picker{},
		BaseURL:   cfg.BaseURL,
		Title:     cfg.Title,
		RateLimit: cfg.Rate,
		Burst:     cfg.Burst,
	})

	// The write timeout covers a feed fetch with all of its retries.
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      3*cfg.FeedTimeout + 10*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("skyframe listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-shutdownCh
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}
	log.Println("shutdown complete")
}
