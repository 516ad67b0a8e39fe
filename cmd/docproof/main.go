// Command docproof proofreads Google Docs with a language model.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/custodia-labs/docproof/internal/adapters/driven/ai"
	"github.com/custodia-labs/docproof/internal/adapters/driven/config/env"
	"github.com/custodia-labs/docproof/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docproof/internal/adapters/driven/metrics"
	"github.com/custodia-labs/docproof/internal/adapters/driving/cli"
	"github.com/custodia-labs/docproof/internal/connectors/google"
	"github.com/custodia-labs/docproof/internal/connectors/google/docs"
	"github.com/custodia-labs/docproof/internal/core/domain"
	"github.com/custodia-labs/docproof/internal/core/ports/driven"
	"github.com/custodia-labs/docproof/internal/core/services"
	"github.com/custodia-labs/docproof/internal/logger"
	"github.com/custodia-labs/docproof/internal/telemetry"
)

// shutdownTimeout bounds the trace flush on exit.
const shutdownTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	svcs, cleanup, err := wire(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	defer cleanup()

	cli.SetServices(svcs)
	return cli.Execute(ctx)
}

// wire builds every client once and injects them into the services.
// A missing LLM key or Google credentials does not stop startup: the
// pipeline reports the problem on the first run, and `docproof config`
// still works.
func wire(ctx context.Context) (cli.Services, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	fileStore, err := file.NewConfigStore("")
	if err != nil {
		return cli.Services{}, cleanup, fmt.Errorf("open config: %w", err)
	}
	settingsService := services.NewSettingsService(env.NewConfigStore(fileStore), ai.NewConfigValidator())

	settings, err := settingsService.Get()
	if err != nil {
		return cli.Services{}, cleanup, fmt.Errorf("load settings: %w", err)
	}

	shutdown, err := telemetry.Init(ctx)
	if err != nil {
		logger.Warn("tracing: %v", err)
	} else {
		closers = append(closers, func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := shutdown(flushCtx); err != nil {
				logger.Warn("tracing shutdown: %v", err)
			}
		})
	}

	reader := newDocumentReader(ctx, settings.Google)

	llm := newLLMService(&settings.LLM)
	if llm != nil {
		closers = append(closers, func() { llm.Close() })
	}

	prompts, err := file.NewPromptStore("")
	if err != nil {
		return cli.Services{}, cleanup, fmt.Errorf("open prompts: %w", err)
	}
	if watcher, err := file.NewPromptWatcher(prompts); err != nil {
		logger.Warn("prompt hot reload disabled: %v", err)
	} else {
		go watcher.Run(ctx)
		closers = append(closers, func() { watcher.Close() })
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	pipelineMetrics, err := metrics.NewPipelineMetrics(registry)
	if err != nil {
		return cli.Services{}, cleanup, fmt.Errorf("register metrics: %w", err)
	}

	pipeline := services.NewPipeline(
		services.NewDocumentFetcher(reader),
		services.NewProofreader(llm, prompts),
		pipelineMetrics,
	)

	return cli.Services{
		Proofread: pipeline,
		Settings:  settingsService,
		Metrics:   registry,
		Tracing:   telemetry.Enabled(),
		FindPort:  services.FindAvailablePort,
	}, cleanup, nil
}

// newDocumentReader returns nil when no usable credentials are configured.
func newDocumentReader(ctx context.Context, settings domain.GoogleSettings) driven.DocumentReader {
	ts, err := google.NewTokenSource(ctx, settings)
	if err != nil {
		logger.Debug("google docs unavailable: %v", err)
		return nil
	}
	svc, err := google.NewDocsService(ctx, ts)
	if err != nil {
		logger.Warn("google docs client: %v", err)
		return nil
	}
	return telemetry.NewTracedReader(docs.NewReader(svc))
}

// newLLMService returns nil when the provider is not configured.
func newLLMService(settings *domain.LLMSettings) driven.LLMService {
	svc, err := ai.CreateLLMService(settings)
	if err != nil {
		logger.Debug("language model unavailable: %v", err)
		return nil
	}
	return telemetry.NewTracedLLM(svc)
}
