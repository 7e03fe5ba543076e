package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/viper"

	"github.com/arthur-debert/ddm/ddm"
)

const (
	lockTimeout       = 5 * time.Second
	lockRetryInterval = 100 * time.Millisecond
)

// formatForPath infers a document format from the file extension.
func formatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

// formatFor resolves the working format for a file: the --format flag (or
// DDM_FORMAT / config) wins, otherwise the extension decides.
func formatFor(path string) string {
	if f := viper.GetString("format"); f != "" {
		return f
	}
	return formatForPath(path)
}

// loadDocument reads a JSON or YAML document file.
func loadDocument(path string) (*ddm.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	switch formatFor(path) {
	case "yaml":
		return ddm.FromYAML(data)
	default:
		return ddm.FromJSON(data)
	}
}

// renderDocument serializes a document in the requested output format.
func renderDocument(doc *ddm.Document, format string, indent int) (string, error) {
	if format == "yaml" {
		return doc.ToYAML()
	}
	return doc.ToJSON(indent)
}

// saveDocument writes a document back to its file under an exclusive file
// lock, using a temp-file-and-rename so readers never observe a partial
// write.
func saveDocument(path string, doc *ddm.Document) error {
	lock := flock.New(path + ".lock")
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()
	locked, err := lock.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		return fmt.Errorf("failed to lock %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("timed out waiting for lock on %s", path)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("failed to release file lock", "path", path, "error", err)
		}
	}()

	out, err := renderDocument(doc, formatFor(path), viper.GetInt("indent"))
	if err != nil {
		return err
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".ddm-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(out); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	logger.Info("document saved", "path", path, "keys", doc.Len())
	return nil
}
