package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cinewatch/internal/config"
	"cinewatch/internal/logging"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := logging.New(logging.Options{Format: "xml"})
	if err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "run.log")
	logger, err := logging.New(logging.Options{
		Format:      "json",
		OutputPaths: []string{path},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("showtime collected", logging.String("film_id", "1000"), logging.Int("theaters", 3))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"film_id":"1000"`) {
		t.Fatalf("log file missing structured field: %s", data)
	}
}

func TestNewFromConfigCreatesLogDir(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(t.TempDir(), "logs")
	cfg.Logging.Format = "console"

	if _, err := logging.NewFromConfig(&cfg); err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.LogDir, "cinewatch.log")); err != nil {
		t.Fatalf("expected log file: %v", err)
	}
}
