package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// rotatingWriter appends to a date-stamped log file inside dir and rotates
// to a fresh file once the current one exceeds maxSize bytes.
type rotatingWriter struct {
	mu      sync.Mutex
	dir     string
	maxSize int64
	file    *os.File
	written int64
}

func newRotatingWriter(dir string, maxSize int64) (*rotatingWriter, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}
	w := &rotatingWriter{dir: dir, maxSize: maxSize}
	if err := w.rotate(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *rotatingWriter) rotate() error {
	if w.file != nil {
		if err := w.file.Close(); err != nil {
			return fmt.Errorf("failed to close log file: %w", err)
		}
	}

	name := fmt.Sprintf("api-%s.log", time.Now().Format("2006-01-02-150405"))
	file, err := os.OpenFile(filepath.Join(w.dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", name, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to stat log file %s: %w", name, err)
	}

	w.file = file
	w.written = info.Size()
	return nil
}

func (w *rotatingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.written+int64(len(p)) > w.maxSize {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := w.file.Write(p)
	w.written += int64(n)
	return n, err
}

// multiHandler fans one record out to every wrapped handler.
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	var firstErr error
	for _, h := range m.handlers {
		if h.Enabled(ctx, record.Level) {
			if err := h.Handle(ctx, record.Clone()); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		handlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetupLogger builds the application logger: human-readable text on stderr
// plus JSON records in a rotating file under logDir. When the file writer
// cannot be created the logger degrades to console only.
func SetupLogger(logDir string, level string, maxFileSize int64) *slog.Logger {
	lvl := parseLevel(level)

	console := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})

	fileWriter, err := newRotatingWriter(logDir, maxFileSize)
	if err != nil {
		logger := slog.New(console)
		logger.Warn("File logging disabled", "error", err)
		return logger
	}

	var file slog.Handler = slog.NewJSONHandler(io.Writer(fileWriter), &slog.HandlerOptions{Level: lvl})
	return slog.New(&multiHandler{handlers: []slog.Handler{console, file}})
}
