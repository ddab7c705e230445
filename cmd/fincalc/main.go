package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cloud-ru/fincalc-go/internal/config"
	"github.com/cloud-ru/fincalc-go/internal/logging"
	"github.com/cloud-ru/fincalc-go/internal/metrics"
	"github.com/cloud-ru/fincalc-go/internal/scenario"
	"github.com/cloud-ru/fincalc-go/internal/tools"
	"github.com/cloud-ru/fincalc-go/internal/tracing"
)

func main() {
	os.Exit(run())
}

func run() int {
	scenarioPath := flag.String("scenario", "", "путь к YAML файлу сценария")
	pretty := flag.Bool("pretty", false, "форматировать JSON вывод")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	logger := logging.New(cfg.LogLevel)

	if *scenarioPath == "" {
		logger.Error("не указан файл сценария (-scenario)")
		flag.Usage()
		return 2
	}

	shutdown, err := tracing.InitTracing(cfg, logger)
	if err != nil {
		logger.Error("failed to init tracing", "error", err)
		return 1
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			logger.Warn("failed to shutdown tracing", "error", err)
		}
	}()

	f, err := scenario.Load(*scenarioPath)
	if err != nil {
		logger.Error("failed to load scenario", "path", *scenarioPath, "error", err)
		return 1
	}

	runner := scenario.NewRunner(tools.Registry(cfg, tracing.Tracer), tracing.Tracer, logger)
	report := runner.Run(context.Background(), f)

	encoder := json.NewEncoder(os.Stdout)
	if *pretty {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(report); err != nil {
		logger.Error("failed to write report", "error", err)
		return 1
	}

	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
			logger.Warn("failed to write metrics", "path", cfg.MetricsTextfile, "error", err)
		}
	}

	if report.Failed > 0 {
		return 3
	}
	return 0
}
