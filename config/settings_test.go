package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"reelview/config"
)

func TestLoadCreatesDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	manager := config.NewManager(path)

	settings, err := manager.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if settings.Server.Port != 8080 {
		t.Fatalf("unexpected port %d", settings.Server.Port)
	}
	if settings.Playback.DefaultMovieRuntimeMin != 90 {
		t.Fatalf("unexpected default movie runtime %d", settings.Playback.DefaultMovieRuntimeMin)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected settings file to be written: %v", err)
	}
}

func TestLoadBackfillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	partial := `{"catalog": {"apiKey": "abc"}, "server": {"port": 9090}}`
	if err := os.WriteFile(path, []byte(partial), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	settings, err := config.NewManager(path).Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if settings.Catalog.APIKey != "abc" {
		t.Fatalf("unexpected api key %q", settings.Catalog.APIKey)
	}
	if settings.Server.Port != 9090 {
		t.Fatalf("unexpected port %d", settings.Server.Port)
	}
	if settings.Catalog.Language != "en-US" || settings.Storage.Dir != "data" {
		t.Fatalf("defaults not backfilled: %+v", settings)
	}
	if settings.Playback.PersistDebounceMs != 500 {
		t.Fatalf("unexpected debounce %d", settings.Playback.PersistDebounceMs)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	manager := config.NewManager(path)

	settings := config.DefaultSettings()
	settings.Catalog.APIKey = "key"
	settings.Playback.TickSeconds = 2
	if err := manager.Save(settings); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := manager.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded != settings {
		t.Fatalf("round trip mismatch: %+v != %+v", loaded, settings)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if _, err := config.NewManager(path).Load(); err == nil {
		t.Fatal("expected an error for malformed settings")
	}
}
