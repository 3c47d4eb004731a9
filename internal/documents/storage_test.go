package documents

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockS3Client is a mock implementation of storage.S3Client
type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	data, _ := io.ReadAll(body)
	args := m.Called(ctx, key, contentType, data)
	return args.String(0), args.Error(1)
}

func (m *MockS3Client) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockS3Client) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockS3Client) GetPresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	args := m.Called(ctx, key, expiration)
	return args.String(0), args.Error(1)
}

func TestFileSystemSink_Put(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewFileSystemSink(dir, nil)
	require.NoError(t, err)

	loc, err := sink.Put(context.Background(), "Inspeccion_DC1_2024-03-01_morning.pdf", []byte("%PDF-1.3"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Inspeccion_DC1_2024-03-01_morning.pdf"), loc)

	data, err := os.ReadFile(loc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp file may remain")
}

func TestFileSystemSink_RejectsPaths(t *testing.T) {
	sink, err := NewFileSystemSink(t.TempDir(), nil)
	require.NoError(t, err)

	for _, name := range []string{"", "../escape.pdf", "sub/dir.pdf", tempName("a.pdf")} {
		_, err := sink.Put(context.Background(), name, []byte("x"))
		assert.Error(t, err, name)
	}
}

func TestFileSystemSink_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewFileSystemSink(dir, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sink.Put(ctx, "a.pdf", []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestFileSystemSink_CleanupTemp(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewFileSystemSink(dir, nil)
	require.NoError(t, err)

	stale := filepath.Join(dir, tempName("a.pdf"))
	fresh := filepath.Join(dir, tempName("b.pdf"))
	kept := filepath.Join(dir, "c.pdf")
	for _, p := range []string{stale, fresh, kept} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}
	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))
	require.NoError(t, os.Chtimes(kept, old, old))

	removed, err := sink.CleanupTemp(time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	assert.NoFileExists(t, stale)
	assert.FileExists(t, fresh)
	assert.FileExists(t, kept)
}

func TestS3Sink_Put(t *testing.T) {
	client := new(MockS3Client)
	ctx := context.Background()
	client.On("Upload", ctx, "documents/a.pdf", "application/pdf", []byte("pdf")).
		Return("https://bucket.s3.amazonaws.com/documents/a.pdf", nil)

	sink := NewS3Sink(client, "/documents/")
	loc, err := sink.Put(ctx, "a.pdf", []byte("pdf"))

	require.NoError(t, err)
	assert.Equal(t, "https://bucket.s3.amazonaws.com/documents/a.pdf", loc)
	client.AssertExpectations(t)
}

func TestS3Sink_KeyWithoutPrefix(t *testing.T) {
	assert.Equal(t, "a.pdf", NewS3Sink(nil, "").Key("a.pdf"))
	assert.Equal(t, "x/y/a.pdf", NewS3Sink(nil, "x/y").Key("a.pdf"))
}

func TestS3Sink_UploadError(t *testing.T) {
	client := new(MockS3Client)
	client.On("Upload", mock.Anything, "a.pdf", "application/pdf", mock.Anything).
		Return("", errors.New("access denied"))

	_, err := NewS3Sink(client, "").Put(context.Background(), "a.pdf", []byte("pdf"))
	assert.EqualError(t, err, "access denied")
}

func TestMemorySink(t *testing.T) {
	sink := NewMemorySink()
	data := []byte("pdf")

	loc, err := sink.Put(context.Background(), "a.pdf", data)
	require.NoError(t, err)
	assert.Equal(t, "memory://a.pdf", loc)

	data[0] = 'X'
	got, ok := sink.Get("a.pdf")
	require.True(t, ok)
	assert.Equal(t, "pdf", string(got))
	assert.Equal(t, 1, sink.Len())
}

func TestFileSystemSink_CleanupKeepsPublishedArtifacts(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewFileSystemSink(dir, nil)
	require.NoError(t, err)

	p := samplePermit()
	p.ID = "OT.tmp-7"
	loc, err := sink.Put(context.Background(), WorkPermitFileName(p), []byte("%PDF-1.3"))
	require.NoError(t, err)
	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(loc, old, old))

	removed, err := sink.CleanupTemp(time.Hour)
	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.FileExists(t, loc)
}

func TestIsTempName(t *testing.T) {
	assert.True(t, isTempName(tempName("Permiso_Trabajo_P-1_2024-03-01.pdf")))

	for _, name := range []string{
		"Permiso_Trabajo_OT.tmp-7_2024-03-01.pdf",
		"a.pdf.tmp-0b5f2c6e-6a8e-4a51-9d0c-3f2f1e0b9a11",
		".tmp-not-a-uuid-at-all-but-long-enough-x-a.pdf",
		".tmp-",
	} {
		assert.False(t, isTempName(name), name)
	}
}
