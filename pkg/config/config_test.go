package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("config = %+v, want defaults", cfg)
	}
}

func TestLoadParsesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `tracks_dir: /games/icr2/tracks
extra_models:
  - sky.3do
report_suffix: _assets.txt
watch_debounce_ms: 250
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TracksDir != "/games/icr2/tracks" {
		t.Errorf("TracksDir = %q", cfg.TracksDir)
	}
	if !reflect.DeepEqual(cfg.ExtraModels, []string{"sky.3do"}) {
		t.Errorf("ExtraModels = %v", cfg.ExtraModels)
	}
	if cfg.ReportSuffix != "_assets.txt" {
		t.Errorf("ReportSuffix = %q", cfg.ReportSuffix)
	}
	if cfg.WatchDebounceMS != 250 {
		t.Errorf("WatchDebounceMS = %d", cfg.WatchDebounceMS)
	}
}

func TestLoadBadValuesFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("watch_debounce_ms: -5\nreport_suffix: \"\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.WatchDebounceMS != 500 {
		t.Errorf("WatchDebounceMS = %d, want default 500", cfg.WatchDebounceMS)
	}
	if cfg.ReportSuffix != "_file_analysis.txt" {
		t.Errorf("ReportSuffix = %q, want default", cfg.ReportSuffix)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.TracksDir = "/opt/icr2/tracks"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("round trip mismatch: %+v != %+v", loaded, cfg)
	}
}
