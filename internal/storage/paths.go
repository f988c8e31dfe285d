// Package storage persists boards and settings in BadgerDB.
package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "ageofchess"

// GetDataDir returns the platform-specific data directory for the application.
// - macOS: ~/Library/Application Support/ageofchess/
// - Linux: ~/.local/share/ageofchess/
// - Windows: %APPDATA%/ageofchess/
func GetDataDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		// Check XDG_DATA_HOME first
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dataDir := filepath.Join(baseDir, appName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}

// GetDatabaseDir returns the BadgerDB directory. An empty override selects
// "db" under the data directory.
func GetDatabaseDir(override string) (string, error) {
	dbDir := override
	if dbDir == "" {
		dataDir, err := GetDataDir()
		if err != nil {
			return "", err
		}
		dbDir = filepath.Join(dataDir, "db")
	}

	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}
	return dbDir, nil
}
