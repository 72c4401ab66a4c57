package main

import (
	"log/slog"
	"strings"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/skyframe/skyframe/internal/feed"
	"github.com/skyframe/skyframe/internal/media"
)

type args struct {
	Port        string        `arg:"--port,env:PORT" default:"8080" help:"port to listen on"`
	FeedURL     string        `arg:"--feed-url,env:FEED_URL" help:"JSON feed of media items"`
	FeedTimeout time.Duration `arg:"--feed-timeout,env:FEED_TIMEOUT" default:"15s" help:"timeout for one feed request"`
	BaseURL     string        `arg:"--base-url,env:BASE_URL" default:"http://localhost:8080" help:"public URL of the site, https enables HSTS"`
	Title       string        `arg:"--title,env:SITE_TITLE" help:"page title"`
	DateLayout  string        `arg:"--date-layout,env:DATE_LAYOUT" help:"Go time layout for item dates"`
	LogLevel    string        `arg:"--log-level,env:LOG_LEVEL" default:"info" help:"debug, info, warn or error"`
	Rate        float64       `arg:"--rate,env:RATE_LIMIT_RPS" default:"2" help:"feed-backed requests per second per visitor"`
	Burst       int           `arg:"--burst,env:RATE_LIMIT_BURST" default:"10" help:"burst size per visitor"`
}

func (args) Description() string {
	return "skyframe serves a gallery of astronomy pictures and videos from a JSON feed."
}

func parseArgs(argv []string) (args, error) {
	var a args
	p, err := arg.NewParser(arg.Config{Program: "skyframe"}, &a)
	if err != nil {
		return a, err
	}
	if err := p.Parse(argv); err != nil {
		return a, err
	}
	if a.FeedURL == "" {
		a.FeedURL = feed.DefaultURL
	}
	if a.DateLayout == "" {
		a.DateLayout = media.DefaultDateLayout
	}
	return a, nil
}

func (a args) logLevel() slog.Level {
	switch strings.ToLower(a.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info", "":
		return slog.LevelInfo
	}
	slog.Info("received invalid log level, defaulting to info", "log_level", a.LogLevel)
	return slog.LevelInfo
}
