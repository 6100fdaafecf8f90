package utils

import (
	"os"
	"path/filepath"
)

// ConfigFileName is the file looked up by DefaultConfigPath.
const ConfigFileName = "config.json"

// FindUp walks from the working directory towards the filesystem root and
// returns the first existing path named name. It returns "" if none exists.
func FindUp(name string) string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "" // reached root
		}
		dir = parent
	}
}

// DefaultConfigPath returns the nearest config.json above the working
// directory, or the bare file name when there is none.
func DefaultConfigPath() string {
	if p := FindUp(ConfigFileName); p != "" {
		return p
	}
	return ConfigFileName
}
