package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	logFilePerm = 0o600
	logDirPerm  = 0o750
	bytesPerMB  = 1024 * 1024
)

// RotatingFile is an io.Writer that rolls path over to path.1, path.2, ...
// once it grows past the size limit. Only maxBackups old files are kept.
type RotatingFile struct {
	mu         sync.Mutex
	path       string
	maxSize    int64
	maxBackups int
	file       *os.File
	size       int64
}

// NewRotatingFile opens (or creates) path for appending.
// A non-positive maxSizeMB disables rotation.
func NewRotatingFile(path string, maxSizeMB, maxBackups int) (*RotatingFile, error) {
	if err := os.MkdirAll(filepath.Dir(path), logDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	r := &RotatingFile{
		path:       path,
		maxSize:    int64(maxSizeMB) * bytesPerMB,
		maxBackups: maxBackups,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RotatingFile) open() error {
	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}
	r.file = f
	r.size = info.Size()
	return nil
}

func (r *RotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.maxSize > 0 && r.size > 0 && r.size+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

// rotate must be called with r.mu held.
func (r *RotatingFile) rotate() error {
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	r.file = nil

	if r.maxBackups <= 0 {
		if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to truncate log file: %w", err)
		}
		return r.open()
	}

	// Shift path.N-1 -> path.N, dropping the oldest.
	_ = os.Remove(r.backupName(r.maxBackups))
	for i := r.maxBackups - 1; i >= 1; i-- {
		if err := os.Rename(r.backupName(i), r.backupName(i+1)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to shift log backup: %w", err)
		}
	}
	if err := os.Rename(r.path, r.backupName(1)); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}
	return r.open()
}

func (r *RotatingFile) backupName(n int) string {
	return fmt.Sprintf("%s.%d", r.path, n)
}

// Close closes the current file.
func (r *RotatingFile) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
