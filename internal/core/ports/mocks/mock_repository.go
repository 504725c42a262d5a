package mocks

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/icr2-tools/trackscan/internal/core/domain"
)

// MockTrackRepository is an in-memory implementation of the TrackRepository
// port for testing. Files are keyed by canonical name; insertion order is
// preserved so discovery-order assertions hold.
type MockTrackRepository struct {
	mu    sync.RWMutex
	track string
	order []string
	files map[string][]byte
}

// NewMockTrackRepository creates an empty mock repository for a track.
func NewMockTrackRepository(track string) *MockTrackRepository {
	return &MockTrackRepository{
		track: track,
		files: make(map[string][]byte),
	}
}

// AddFile registers a file with the given content.
func (m *MockTrackRepository) AddFile(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := domain.CanonicalName(name)
	if _, ok := m.files[key]; !ok {
		m.order = append(m.order, name)
	}
	m.files[key] = data
}

// Track returns the track name.
func (m *MockTrackRepository) Track() string {
	return m.track
}

// ListModelNames returns registered .3do files in insertion order.
func (m *MockTrackRepository) ListModelNames(ctx context.Context) ([]string, error) {
	return m.listByExt(".3do")
}

// ListTextureNames returns registered .mip files in insertion order.
func (m *MockTrackRepository) ListTextureNames(ctx context.Context) ([]string, error) {
	return m.listByExt(".mip")
}

func (m *MockTrackRepository) listByExt(ext string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var names []string
	for _, name := range m.order {
		if strings.EqualFold(filepath.Ext(name), ext) {
			names = append(names, name)
		}
	}
	return names, nil
}

// ReadFile returns the registered content for a file.
func (m *MockTrackRepository) ReadFile(ctx context.Context, name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.files[domain.CanonicalName(name)]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", name)
	}
	return data, nil
}

// Stat returns the byte size of a registered file.
func (m *MockTrackRepository) Stat(ctx context.Context, name string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.files[domain.CanonicalName(name)]
	if !ok {
		return 0, fmt.Errorf("file not found: %s", name)
	}
	return int64(len(data)), nil
}

// Exists checks whether a file was registered.
func (m *MockTrackRepository) Exists(ctx context.Context, name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.files[domain.CanonicalName(name)]
	return ok
}
