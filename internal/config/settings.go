package config

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	ioutils "github.com/albiontools/icon-downloader/internal/io"
)

// Settings holds all configuration options.
type Settings struct {
	// Network settings
	BaseURL        string  `json:"base_url"`
	TimeoutSeconds float64 `json:"timeout_seconds"`
	UserAgent      string  `json:"user_agent"`

	// Default paths, overridable by positional CLI arguments
	InputPath string `json:"input_path"`
	OutputDir string `json:"output_dir"`

	// ItemsOverlayPath is an optional YAML file of extra
	// name: identifier pairs merged over the embedded item table.
	ItemsOverlayPath string `json:"items_overlay_path"`

	// KeepComments preserves comment and blank lines verbatim when the
	// input file is rewritten after a run.
	KeepComments bool `json:"keep_comments"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		BaseURL:        "https://render.albiononline.com/v1/item/",
		TimeoutSeconds: 15,
		UserAgent:      "albion-icon-downloader",

		InputPath: "downloads.txt",
		OutputDir: "downloads",

		KeepComments: true,
	}
}

// Load reads settings from a JSON file, then applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			settings.applyEnv()
			return settings, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	settings.applyEnv()
	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return ioutils.WriteFile(path, data)
}

// Timeout returns the HTTP timeout as a duration.
func (s *Settings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds * float64(time.Second))
}

// applyEnv overrides settings from the environment. A .env file in the
// working directory is loaded first if present; absence is not an error.
func (s *Settings) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("ALBION_BASE_URL"); v != "" {
		s.BaseURL = v
	}
	if v := os.Getenv("ALBION_USER_AGENT"); v != "" {
		s.UserAgent = v
	}
	if v := os.Getenv("ALBION_TIMEOUT"); v != "" {
		if seconds, err := strconv.ParseFloat(v, 64); err == nil && seconds > 0 {
			s.TimeoutSeconds = seconds
		}
	}
}
