// Package export writes generated draft reports to disk.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteReport writes a text report atomically: the content goes to a
// temporary file in the target directory first and is renamed into
// place, so a watcher of the path never reads a half-written report. A
// trailing newline is appended when missing.
func WriteReport(path string, sections ...string) error {
	content := strings.Join(sections, "\n")
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.WriteString(content); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close report: %w", err)
	}
	tmp = nil

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("set permissions: %w", err)
	}
	// Same-directory rename keeps the operation on one filesystem,
	// where POSIX guarantees atomicity.
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename report: %w", err)
	}
	return nil
}
