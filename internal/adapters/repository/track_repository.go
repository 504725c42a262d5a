package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/icr2-tools/trackscan/internal/core/domain"
	"github.com/icr2-tools/trackscan/internal/core/ports"
)

// TrackRepository reads a track folder from the filesystem. Filenames are
// matched case-insensitively, mirroring the platform the asset formats
// come from; lookups go through a canonical-name index built on first use.
type TrackRepository struct {
	track string
	dir   string

	mu    sync.RWMutex
	index map[string]string // canonical name -> actual filename
}

// NewTrackRepository creates a repository for one track directory.
func NewTrackRepository(track, dir string) *TrackRepository {
	return &TrackRepository{
		track: track,
		dir:   dir,
	}
}

// Ensure it implements the port
var _ ports.TrackRepository = (*TrackRepository)(nil)

// Track returns the track name.
func (r *TrackRepository) Track() string {
	return r.track
}

// ListModelNames returns the .3do files in the track folder.
func (r *TrackRepository) ListModelNames(ctx context.Context) ([]string, error) {
	return r.listByExt(".3do")
}

// ListTextureNames returns the .mip files in the track folder.
func (r *TrackRepository) ListTextureNames(ctx context.Context) ([]string, error) {
	return r.listByExt(".mip")
}

func (r *TrackRepository) listByExt(ext string) ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read track directory %s: %w", r.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ext) {
			names = append(names, entry.Name())
		}
	}
	// ReadDir order is already lexical; sort on the canonical form so the
	// report does not reshuffle when files differ only in case.
	sort.Slice(names, func(i, j int) bool {
		return domain.CanonicalName(names[i]) < domain.CanonicalName(names[j])
	})
	return names, nil
}

// ReadFile returns the raw bytes of an asset file.
func (r *TrackRepository) ReadFile(ctx context.Context, name string) ([]byte, error) {
	path, err := r.resolve(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

// Stat returns the byte size of an asset file.
func (r *TrackRepository) Stat(ctx context.Context, name string) (int64, error) {
	path, err := r.resolve(name)
	if err != nil {
		return 0, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", name, err)
	}
	return info.Size(), nil
}

// Exists checks whether an asset file is present, ignoring case.
func (r *TrackRepository) Exists(ctx context.Context, name string) bool {
	_, err := r.resolve(name)
	return err == nil
}

// resolve maps a canonical asset name to its on-disk path.
func (r *TrackRepository) resolve(name string) (string, error) {
	r.mu.RLock()
	index := r.index
	r.mu.RUnlock()

	if index == nil {
		var err error
		index, err = r.buildIndex()
		if err != nil {
			return "", err
		}
	}

	actual, ok := index[domain.CanonicalName(name)]
	if !ok {
		return "", fmt.Errorf("file not found: %s", name)
	}
	return filepath.Join(r.dir, actual), nil
}

func (r *TrackRepository) buildIndex() (map[string]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read track directory %s: %w", r.dir, err)
	}

	index := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		index[domain.CanonicalName(entry.Name())] = entry.Name()
	}

	r.mu.Lock()
	r.index = index
	r.mu.Unlock()
	return index, nil
}
