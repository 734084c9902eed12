// Package exporter writes successful analysis texts to disk as date-named
// plain-text artifacts and enforces their retention. Exports are the only
// thing the API persists; everything else is recomputed per request.
package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/clinalyze/medreport-api/interfaces"
	"github.com/clinalyze/medreport-api/logging"
)

// Compile-time check to ensure FileExporter implements the Exporter interface
var _ interfaces.Exporter = (*FileExporter)(nil)

// FileExporter stores report artifacts under a single directory.
type FileExporter struct {
	dir           string
	retentionDays int
}

// NewFileExporter creates an exporter rooted at dir, keeping artifacts for
// retentionDays days.
func NewFileExporter(dir string, retentionDays int) (*FileExporter, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create export directory %s: %w", dir, err)
	}
	return &FileExporter{dir: dir, retentionDays: retentionDays}, nil
}

// Dir returns the export directory path.
func (e *FileExporter) Dir() string {
	return e.dir
}

// ReportFileName returns the artifact name for a given day.
func ReportFileName(now time.Time) string {
	return fmt.Sprintf("medical_analysis_%s.txt", now.Format("20060102"))
}

// WriteReport writes the raw analysis text to the day's artifact file and
// returns its filename. A second export on the same day overwrites the first.
func (e *FileExporter) WriteReport(raw string, now time.Time) (string, error) {
	name := ReportFileName(now)
	path := filepath.Join(e.dir, name)

	if err := os.WriteFile(path, []byte(raw), 0640); err != nil {
		return "", fmt.Errorf("failed to write report artifact %s: %w", name, err)
	}

	logging.Info("Report artifact written", "file", name, "bytes", len(raw))
	return name, nil
}

// Cleanup removes report artifacts older than the retention period and
// returns how many were deleted. Unrelated files in the directory are left
// alone.
func (e *FileExporter) Cleanup(now time.Time) (int, error) {
	entries, err := os.ReadDir(e.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read export directory %s: %w", e.dir, err)
	}

	cutoff := now.AddDate(0, 0, -e.retentionDays)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "medical_analysis_") || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			logging.Warn("Failed to stat export artifact", "file", entry.Name(), "error", err)
			continue
		}

		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(e.dir, entry.Name())); err != nil {
				logging.Warn("Failed to remove expired export artifact", "file", entry.Name(), "error", err)
				continue
			}
			removed++
		}
	}

	if removed > 0 {
		logging.Info("Expired export artifacts removed", "count", removed)
	}
	return removed, nil
}
