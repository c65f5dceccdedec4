package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"

	"interbank/internal/cli"
	"interbank/internal/conversion"
	"interbank/internal/conversion/metrics"
	"interbank/internal/platform/config"
	"interbank/internal/platform/logger"
	"interbank/internal/platform/tracer"
)

// main wires configuration, logging, metrics and tracing into the conversion
// service and hands it to the command tree.
func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.FromEnv()
	log := logger.New(os.Stderr, cfg)

	reg := prometheus.NewRegistry()
	svc := conversion.New(
		conversion.WithLogger(log),
		conversion.WithMetrics(metrics.New(reg)),
		conversion.WithTracer(tracer.NewOTel()),
		conversion.WithConcurrency(cfg.BatchConcurrency),
		conversion.WithMaxBatchSize(cfg.MaxBatchSize),
	)

	// Interrupting a long batch cancels the remaining conversions.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cli.NewRootCmd(svc).ExecuteContext(ctx)

	if cfg.MetricsFile != "" {
		if werr := prometheus.WriteToTextfile(cfg.MetricsFile, reg); werr != nil {
			log.Error("failed to write metrics file", "path", cfg.MetricsFile, "error", werr)
		}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.New(color.FgRed).Sprint("Error:"), err)
		return 1
	}
	return 0
}
