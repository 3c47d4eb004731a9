// Package app builds the document service and its dependencies from
// configuration.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/FabianMondragon08/Checklist/internal/config"
	"github.com/FabianMondragon08/Checklist/internal/documents"
	"github.com/FabianMondragon08/Checklist/pkg/storage"
)

// NewLogger returns a development logger for "debug" and a production
// logger at the given level otherwise.
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	if lvl == zapcore.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// Sinks is the artifact sink chosen by the storage driver. Local is set only
// for the filesystem driver, whose temporary files need periodic cleanup.
type Sinks struct {
	Sink  documents.ArtifactSink
	Local *documents.FileSystemSink
}

func NewSink(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (*Sinks, error) {
	switch cfg.Driver {
	case config.DriverFileSystem:
		fs, err := documents.NewFileSystemSink(cfg.BasePath, logger)
		if err != nil {
			return nil, err
		}
		return &Sinks{Sink: fs, Local: fs}, nil
	case config.DriverS3:
		client, err := storage.NewS3Client(ctx, storage.S3Config{
			Bucket:            cfg.Bucket,
			Region:            cfg.Region,
			Endpoint:          cfg.Endpoint,
			AccessKey:         cfg.AccessKey,
			SecretKey:         cfg.SecretKey,
			UsePathStyle:      cfg.UsePathStyle,
			PresignExpiration: cfg.PresignExpiration.Std(),
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create S3 client: %w", err)
		}
		return &Sinks{Sink: documents.NewS3Sink(client, cfg.KeyPrefix)}, nil
	case config.DriverMemory:
		return &Sinks{Sink: documents.NewMemorySink()}, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// NewService wires the layout options and PDF metadata from cfg.
func NewService(cfg *config.Config, sink documents.ArtifactSink, logger *zap.Logger) documents.Service {
	options := documents.DefaultOptions()
	if cfg.Documents.ObservationLines > 0 {
		options.ObservationLines = cfg.Documents.ObservationLines
	}
	pdfOptions := documents.DefaultPDFOptions()
	if cfg.Documents.Author != "" {
		pdfOptions.Author = cfg.Documents.Author
	}
	return documents.NewService(sink, documents.NewPDFGenerator(pdfOptions), options, logger)
}
