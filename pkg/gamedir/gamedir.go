// Package gamedir locates the game installation whose tracks are being
// analyzed. Each track lives in its own subdirectory of the tracks folder,
// named after the track.
package gamedir

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// GameDir represents the game's on-disk layout.
type GameDir struct {
	TracksPath string
}

// New resolves the tracks directory. Priority: explicit override (from
// config), then the TRACKSCAN_TRACKS_DIR environment variable, then the
// current working directory, which suits running the tool from inside the
// game folder.
func New(override string) (*GameDir, error) {
	if override != "" {
		return &GameDir{TracksPath: override}, nil
	}
	if env := os.Getenv("TRACKSCAN_TRACKS_DIR"); env != "" {
		return &GameDir{TracksPath: env}, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}
	return &GameDir{TracksPath: cwd}, nil
}

// ConfigPath returns the config file location, following the XDG Base
// Directory specification on Unix and AppData on Windows.
func ConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "trackscan", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "trackscan", "config.yaml"), nil
	}

	return filepath.Join(homeDir, ".config", "trackscan", "config.yaml"), nil
}

// TrackPath returns the directory for a named track.
func (g *GameDir) TrackPath(track string) string {
	return filepath.Join(g.TracksPath, track)
}

// TrackExists checks whether a track directory is present.
func (g *GameDir) TrackExists(track string) bool {
	info, err := os.Stat(g.TrackPath(track))
	return err == nil && info.IsDir()
}

// ListTracks returns the names of track directories that contain a root
// model named after the directory, sorted alphabetically.
func (g *GameDir) ListTracks() ([]string, error) {
	entries, err := os.ReadDir(g.TracksPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tracks directory %s: %w", g.TracksPath, err)
	}

	var tracks []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		root := filepath.Join(g.TracksPath, entry.Name(), entry.Name()+".3do")
		if hasFileFold(root) {
			tracks = append(tracks, entry.Name())
		}
	}
	sort.Strings(tracks)
	return tracks, nil
}

// hasFileFold checks for a file, tolerating case differences in the final
// path element.
func hasFileFold(path string) bool {
	if _, err := os.Stat(path); err == nil {
		return true
	}
	dir, base := filepath.Split(path)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if strings.EqualFold(entry.Name(), base) {
			return true
		}
	}
	return false
}
