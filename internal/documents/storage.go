package documents

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/FabianMondragon08/Checklist/pkg/storage"
)

const pdfContentType = "application/pdf"

// ArtifactSink stores a finished artifact under its name. Put either stores
// the whole artifact or nothing.
type ArtifactSink interface {
	Put(ctx context.Context, name string, data []byte) (string, error)
}

// Temporary files are named tempPrefix + uuid + "-" + artifact name.
const tempPrefix = ".tmp-"

func tempName(name string) string {
	return tempPrefix + uuid.NewString() + "-" + name
}

// isTempName reports whether name has the shape produced by tempName.
func isTempName(name string) bool {
	rest, ok := strings.CutPrefix(name, tempPrefix)
	if !ok || len(rest) <= 36 || rest[36] != '-' {
		return false
	}
	_, err := uuid.Parse(rest[:36])
	return err == nil
}

// FileSystemSink writes artifacts into a directory through a temporary file
// that is renamed into place once fully written.
type FileSystemSink struct {
	dir    string
	logger *zap.Logger
}

func NewFileSystemSink(dir string, logger *zap.Logger) (*FileSystemSink, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create artifact directory: %w", err)
	}
	return &FileSystemSink{dir: dir, logger: logger}, nil
}

func (s *FileSystemSink) Put(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, tempPrefix) {
		return "", fmt.Errorf("invalid artifact name %q", name)
	}

	final := filepath.Join(s.dir, name)
	temp := filepath.Join(s.dir, tempName(name))
	if err := writeSynced(temp, data); err != nil {
		os.Remove(temp)
		return "", err
	}
	if err := os.Rename(temp, final); err != nil {
		os.Remove(temp)
		return "", fmt.Errorf("failed to publish %s: %w", name, err)
	}
	s.logger.Debug("Artifact written", zap.String("path", final), zap.Int("bytes", len(data)))
	return final, nil
}

func writeSynced(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	return f.Close()
}

// CleanupTemp removes temporary files older than maxAge left behind by
// interrupted writes. It returns how many were removed.
func (s *FileSystemSink) CleanupTemp(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to list artifact directory: %w", err)
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, e := range entries {
		if e.IsDir() || !isTempName(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil {
			s.logger.Warn("Failed to remove stale temp file", zap.String("name", e.Name()), zap.Error(err))
			continue
		}
		removed++
	}
	return removed, nil
}

// S3Sink uploads artifacts to a bucket under a key prefix.
type S3Sink struct {
	client storage.S3Client
	prefix string
}

func NewS3Sink(client storage.S3Client, prefix string) *S3Sink {
	return &S3Sink{client: client, prefix: strings.Trim(prefix, "/")}
}

func (s *S3Sink) Key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

func (s *S3Sink) Put(ctx context.Context, name string, data []byte) (string, error) {
	return s.client.Upload(ctx, s.Key(name), pdfContentType, bytes.NewReader(data))
}

// MemorySink keeps artifacts in process memory.
type MemorySink struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string][]byte)}
}

func (s *MemorySink) Put(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = bytes.Clone(data)
	return "memory://" + name, nil
}

// Get returns a stored artifact.
func (s *MemorySink) Get(name string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.files[name]
	return data, ok
}

func (s *MemorySink) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.files)
}
