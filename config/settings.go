// Package config holds the application settings persisted as a JSON file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Settings represents the application configuration persisted to disk.
type Settings struct {
	Server   ServerSettings   `json:"server"`
	Catalog  CatalogSettings  `json:"catalog"`
	Storage  StorageSettings  `json:"storage"`
	Playback PlaybackSettings `json:"playback"`
	Log      LogSettings      `json:"log"`
}

type ServerSettings struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// CatalogSettings configures the external metadata service client.
type CatalogSettings struct {
	APIKey      string `json:"apiKey"`
	BearerToken string `json:"bearerToken,omitempty"`
	Language    string `json:"language"`
	Region      string `json:"region"`
}

// StorageSettings locates the local key-value store for user state.
type StorageSettings struct {
	Dir string `json:"dir"`
}

// PlaybackSettings tunes the simulated playback clock.
type PlaybackSettings struct {
	TickSeconds              int `json:"tickSeconds"`
	PersistDebounceMs        int `json:"persistDebounceMs"`
	DefaultMovieRuntimeMin   int `json:"defaultMovieRuntimeMin"`
	DefaultEpisodeRuntimeMin int `json:"defaultEpisodeRuntimeMin"`
}

type LogSettings struct {
	File       string `json:"file"`
	MaxSize    int    `json:"maxSize"`    // megabytes
	MaxBackups int    `json:"maxBackups"`
	MaxAge     int    `json:"maxAge"` // days
	Compress   bool   `json:"compress"`
}

// DefaultSettings returns the settings written on first start.
func DefaultSettings() Settings {
	return Settings{
		Server: ServerSettings{Host: "0.0.0.0", Port: 8080},
		Catalog: CatalogSettings{
			Language: "en-US",
			Region:   "US",
		},
		Storage: StorageSettings{Dir: "data"},
		Playback: PlaybackSettings{
			TickSeconds:              1,
			PersistDebounceMs:        500,
			DefaultMovieRuntimeMin:   90,
			DefaultEpisodeRuntimeMin: 45,
		},
		Log: LogSettings{MaxSize: 10, MaxBackups: 3, MaxAge: 28},
	}
}

// Manager loads and saves the settings file.
type Manager struct {
	path string
}

// NewManager creates a manager for the settings file at configPath.
func NewManager(configPath string) *Manager {
	return &Manager{path: configPath}
}

// Load reads the settings file, creating it with defaults when missing.
// Absent numeric fields are backfilled with their defaults so older files
// keep working after upgrades.
func (m *Manager) Load() (Settings, error) {
	if m.path == "" {
		return Settings{}, errors.New("config path not set")
	}
	if _, err := os.Stat(m.path); errors.Is(err, fs.ErrNotExist) {
		defaults := DefaultSettings()
		if err := m.Save(defaults); err != nil {
			return Settings{}, err
		}
		return defaults, nil
	}

	data, err := os.ReadFile(m.path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	applyDefaults(&settings)
	return settings, nil
}

// Save writes the settings file atomically.
func (m *Manager) Save(s Settings) error {
	if dir := filepath.Dir(m.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}

	tmp := m.path + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create settings temp file: %w", err)
	}

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		file.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("close settings temp file: %w", err)
	}
	if err := os.Rename(tmp, m.path); err != nil {
		return fmt.Errorf("replace settings file: %w", err)
	}
	return nil
}

func applyDefaults(s *Settings) {
	defaults := DefaultSettings()
	if s.Server.Port == 0 {
		s.Server.Port = defaults.Server.Port
	}
	if s.Catalog.Language == "" {
		s.Catalog.Language = defaults.Catalog.Language
	}
	if s.Catalog.Region == "" {
		s.Catalog.Region = defaults.Catalog.Region
	}
	if s.Storage.Dir == "" {
		s.Storage.Dir = defaults.Storage.Dir
	}
	if s.Playback.TickSeconds <= 0 {
		s.Playback.TickSeconds = defaults.Playback.TickSeconds
	}
	if s.Playback.PersistDebounceMs <= 0 {
		s.Playback.PersistDebounceMs = defaults.Playback.PersistDebounceMs
	}
	if s.Playback.DefaultMovieRuntimeMin <= 0 {
		s.Playback.DefaultMovieRuntimeMin = defaults.Playback.DefaultMovieRuntimeMin
	}
	if s.Playback.DefaultEpisodeRuntimeMin <= 0 {
		s.Playback.DefaultEpisodeRuntimeMin = defaults.Playback.DefaultEpisodeRuntimeMin
	}
}
