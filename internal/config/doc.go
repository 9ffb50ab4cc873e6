// Package config provides configuration management for the icon
// downloader.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Environment overrides, including a .env file in the working
//     directory (ALBION_BASE_URL, ALBION_USER_AGENT, ALBION_TIMEOUT)
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Reads downloads.txt, writes to downloads/
//	// Fetches from render.albiononline.com with a 15s timeout
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.json")
//	// Uses defaults if the file doesn't exist
package config
