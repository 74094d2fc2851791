// Turntable is a Spotify chat assistant. It turns chat messages into
// playback actions through a language model and runs them against the
// user's Spotify account.
//
// Usage:
//
//	turntable [flags]
//	turntable --config /path/to/turntable.yaml
//
// @title                       Turntable API
// @version                     0.1
// @description                 Chat with a language model to control Spotify playback.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

//go:generate swag init --dir ../.. --generalInfo cmd/turntable/main.go --output ../../docs --outputTypes go --parseInternal

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	_ "github.com/nadzzz/turntable/docs"
	"github.com/nadzzz/turntable/internal/config"
	"github.com/nadzzz/turntable/internal/dispatch"
	"github.com/nadzzz/turntable/internal/events"
	"github.com/nadzzz/turntable/internal/health"
	"github.com/nadzzz/turntable/internal/interpreter"
	"github.com/nadzzz/turntable/internal/llm"
	"github.com/nadzzz/turntable/internal/llm/gemini"
	"github.com/nadzzz/turntable/internal/llm/local"
	"github.com/nadzzz/turntable/internal/llm/openai"
	"github.com/nadzzz/turntable/internal/session"
	"github.com/nadzzz/turntable/internal/spotify"
	"github.com/nadzzz/turntable/internal/tracing"
	"github.com/nadzzz/turntable/internal/transport"
	grpctransport "github.com/nadzzz/turntable/internal/transport/grpc"
	httptransport "github.com/nadzzz/turntable/internal/transport/http"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configFile := flag.String("config", "", "path to config file (e.g. configs/turntable.local.yaml)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("turntable %s\n", version)
		os.Exit(0)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	config.SetupLogging(cfg.Logging)
	slog.Info("turntable starting", "version", version)

	if err := run(cfg); err != nil {
		slog.Error("turntable failed", "error", err)
		os.Exit(1)
	}
	slog.Info("turntable stopped")
}

func run(cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	tp, err := tracing.Setup(cfg.Tracing, os.Stdout)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			slog.Warn("tracing shutdown", "error", err)
		}
	}()

	gen, err := newGenerator(ctx, cfg.LLM)
	if err != nil {
		return err
	}

	publisher, err := events.New(cfg.Events)
	if err != nil {
		return fmt.Errorf("events: %w", err)
	}
	defer publisher.Close()

	client := spotify.New(cfg.Spotify)
	dispatcher := dispatch.New(client)
	interp := interpreter.New(gen, dispatcher,
		interpreter.WithPublisher(publisher),
		interpreter.WithModelTimeout(cfg.LLM.Timeout),
	)

	store := session.NewMemoryStore()
	handler := session.Wrap(store, interp.Handle)

	var transports []transport.Transport
	if cfg.Transports.GRPC.Enabled {
		transports = append(transports, grpctransport.New(cfg.Transports.GRPC.Port))
	}
	if cfg.Transports.HTTP.Enabled {
		transports = append(transports, httptransport.New(cfg.Transports.HTTP,
			httptransport.WithSessions(store),
			httptransport.WithPlayer(dispatcher, client),
		))
	}
	if len(transports) == 0 {
		return errors.New("no transports enabled, enable at least one in config")
	}

	g, gctx := errgroup.WithContext(ctx)

	healthServer := health.New(cfg.Server.HealthPort)
	g.Go(func() error { return healthServer.ListenAndServe(gctx) })

	for _, t := range transports {
		g.Go(func() error {
			slog.Info("starting transport", "name", t.Name())
			if err := t.Listen(gctx, handler); err != nil {
				return fmt.Errorf("%s transport: %w", t.Name(), err)
			}
			return nil
		})
	}

	healthServer.SetReady(true)
	slog.Info("turntable ready",
		"transports", len(transports),
		"llm_backend", gen.Name(),
		"health_port", cfg.Server.HealthPort)

	<-gctx.Done()
	healthServer.SetReady(false)
	slog.Info("shutdown signal received, draining...")

	for _, t := range transports {
		if err := t.Close(); err != nil {
			slog.Error("transport close error", "name", t.Name(), "error", err)
		}
	}
	return g.Wait()
}

func newGenerator(ctx context.Context, cfg config.LLMConfig) (llm.Generator, error) {
	switch cfg.Backend {
	case "openai":
		slog.Info("using OpenAI-compatible model", "base_url", cfg.OpenAI.BaseURL, "model", cfg.OpenAI.Model)
		return openai.New(cfg.OpenAI, cfg.Timeout), nil
	case "local":
		slog.Info("using local model", "endpoint", cfg.Local.Endpoint, "model", cfg.Local.Model)
		return local.New(cfg.Local, cfg.Timeout), nil
	case "gemini":
		slog.Info("using Gemini model", "model", cfg.Gemini.Model)
		g, err := gemini.New(ctx, cfg.Gemini, cfg.Timeout, "")
		if err != nil {
			return nil, fmt.Errorf("gemini: %w", err)
		}
		return g, nil
	}
	return nil, fmt.Errorf("unknown llm backend %q", cfg.Backend)
}
