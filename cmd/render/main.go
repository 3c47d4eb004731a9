// Command render lays out one inspection or work permit record read from a
// JSON file and stores the PDF in the configured artifact sink.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/FabianMondragon08/Checklist/internal/app"
	"github.com/FabianMondragon08/Checklist/internal/config"
	"github.com/FabianMondragon08/Checklist/internal/documents"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON configuration file")
	kind := flag.String("kind", "inspection", "record kind: inspection or permit")
	input := flag.String("in", "", "path to the JSON record (stdin when empty)")
	outDir := flag.String("out", "", "write to this directory instead of the configured storage")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "render:", err)
		os.Exit(1)
	}
	if *outDir != "" {
		cfg.Storage.Driver = config.DriverFileSystem
		cfg.Storage.BasePath = *outDir
	}

	logger, err := app.NewLogger(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "render:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	artifact, err := run(ctx, cfg, *kind, *input, logger)
	if err != nil {
		logger.Error("Render failed", zap.Error(err))
		os.Exit(1)
	}
	fmt.Println(artifact.Location)
}

func run(ctx context.Context, cfg *config.Config, kind, input string, logger *zap.Logger) (*documents.Artifact, error) {
	data, err := readInput(input)
	if err != nil {
		return nil, err
	}

	sinks, err := app.NewSink(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, err
	}
	service := app.NewService(cfg, sinks.Sink, logger)

	switch kind {
	case "inspection":
		var in documents.Inspection
		if err := json.Unmarshal(data, &in); err != nil {
			return nil, fmt.Errorf("failed to decode inspection: %w", err)
		}
		return service.GenerateInspectionReport(ctx, &in)
	case "permit":
		var p documents.WorkPermit
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("failed to decode work permit: %w", err)
		}
		return service.GenerateWorkPermit(ctx, &p)
	default:
		return nil, fmt.Errorf("unknown record kind %q", kind)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
