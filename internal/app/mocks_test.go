package app

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"rawbatch/internal/domain"
)

// mockFS is an in-memory file tree. Paths in files map to true for
// directories. It is safe for concurrent use by pooled workers.
type mockFS struct {
	mu      sync.Mutex
	files   map[string]bool
	failOn  map[string]error
	copies  map[string]string
	moves   map[string]string
	mkdirs  []string
	statErr error
}

func newMockFS(paths ...string) *mockFS {
	m := &mockFS{
		files:  make(map[string]bool),
		failOn: make(map[string]error),
		copies: make(map[string]string),
		moves:  make(map[string]string),
	}
	for _, path := range paths {
		m.add(path)
	}
	return m
}

// add registers a file, or a directory when path ends with a slash.
func (m *mockFS) add(path string) {
	isDir := len(path) > 1 && path[len(path)-1] == '/'
	m.files[filepath.Clean(path)] = isDir
}

func (m *mockFS) Stat(path string) (fs.FileInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.statErr != nil {
		return nil, m.statErr
	}
	isDir, ok := m.files[filepath.Clean(path)]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return mockFileInfo{name: filepath.Base(path), isDir: isDir}, nil
}

func (m *mockFS) Exists(path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[filepath.Clean(path)]
	return ok, nil
}

func (m *mockFS) MkdirAll(path string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failOn[path]; err != nil {
		return err
	}
	m.mkdirs = append(m.mkdirs, path)
	return nil
}

func (m *mockFS) CopyFile(src, dst string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failOn[src]; err != nil {
		return err
	}
	m.copies[src] = dst
	return nil
}

func (m *mockFS) MoveFile(src, dst string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failOn[src]; err != nil {
		return err
	}
	m.moves[src] = dst
	return nil
}

type mockWalker struct {
	paths []string
	err   error
}

func (m mockWalker) ListRecursively(root string) ([]string, error) {
	return m.paths, m.err
}

type mockFileInfo struct {
	name  string
	isDir bool
}

func (m mockFileInfo) Name() string { return m.name }
func (m mockFileInfo) Size() int64  { return 0 }
func (m mockFileInfo) Mode() fs.FileMode {
	if m.isDir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (m mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m mockFileInfo) IsDir() bool        { return m.isDir }
func (m mockFileInfo) Sys() any           { return nil }

type mockDecoder struct {
	failOn map[string]bool
}

func (m mockDecoder) Decode(ctx context.Context, path string) (domain.PixelBuffer, error) {
	if m.failOn[path] {
		return domain.PixelBuffer{}, errors.New("corrupt raw data")
	}
	return domain.PixelBuffer{Width: 2, Height: 1, Pix: []uint8{1, 2, 3, 4, 5, 6}}, nil
}

type mockEncoder struct {
	mu      sync.Mutex
	outputs []string
	err     error
}

func (m *mockEncoder) Encode(buf domain.PixelBuffer, path string, cfg domain.EncoderConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.outputs = append(m.outputs, path)
	return nil
}

// fixedTimer runs fn and reports a duration derived from op and path only, so
// sequential and pooled runs record the same samples.
func fixedTimer(op, path string, fn func() error) (time.Duration, error) {
	err := fn()
	return time.Duration(len(op)*10+len(path)) * time.Millisecond, err
}

func defaultPolicy() domain.Policy {
	return domain.Policy{
		OnRaw:      domain.ActionParse,
		OnImage:    domain.ActionCopy,
		OnFile:     domain.ActionCopy,
		OnExisting: domain.ExistingIgnore,
	}
}

func sortedTimes(item domain.StatisticsItem) []time.Duration {
	times := append([]time.Duration(nil), item.Times...)
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })
	return times
}
