package services

import (
	"context"
	"fmt"

	"github.com/icr2-tools/trackscan/internal/core/domain"
	"github.com/icr2-tools/trackscan/internal/core/ports"
	"github.com/icr2-tools/trackscan/pkg/papyrus"
)

// AnalyzeService walks a track's model reference graph and resolves its
// texture usage into a read-only Analysis snapshot.
type AnalyzeService struct {
	repo        ports.TrackRepository
	extraModels []string
}

// NewAnalyzeService creates a new analyze service. extraModels are root
// models pulled in alongside the track's own .3do; the game loads sky and
// horizon models that no track model references directly.
func NewAnalyzeService(repo ports.TrackRepository, extraModels []string) *AnalyzeService {
	return &AnalyzeService{
		repo:        repo,
		extraModels: extraModels,
	}
}

// Execute runs the full analysis for the repository's track.
//
// The model set is the closure of the root model plus the configured extra
// models under nested .3do references, visited breadth-first so discovery
// order is deterministic. Missing or unreadable models are recorded and the
// walk continues; only a failure to list the track folder is fatal.
func (s *AnalyzeService) Execute(ctx context.Context) (*domain.Analysis, error) {
	track := s.repo.Track()
	if err := domain.ValidateTrackName(track); err != nil {
		return nil, err
	}

	// Listing doubles as the directory existence check.
	onDisk, err := s.repo.ListTextureNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list track textures: %w", err)
	}

	models := s.collectModels(ctx, track)
	res := domain.Resolve(models, onDisk)

	analysis := &domain.Analysis{
		Track:   track,
		Models:  models,
		Unused:  res.Unused,
		Missing: res.Missing,
	}

	missingSet := make(map[string]bool, len(res.Missing))
	for _, name := range res.Missing {
		missingSet[name] = true
	}
	for _, name := range res.Referenced {
		if missingSet[name] {
			continue
		}
		analysis.Referenced = append(analysis.Referenced, s.readTexture(ctx, name))
	}

	return analysis, nil
}

// collectModels walks the nested-model graph starting at the track's root
// model and the configured extras.
func (s *AnalyzeService) collectModels(ctx context.Context, track string) []domain.Model {
	queue := []string{domain.TrackModelName(track)}
	for _, extra := range s.extraModels {
		queue = append(queue, domain.CanonicalName(extra))
	}

	visited := make(map[string]bool)
	var models []domain.Model

	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if visited[name] {
			continue
		}
		visited[name] = true

		m := s.readModel(ctx, name)
		models = append(models, m)

		for _, child := range m.ChildRefs {
			if !visited[domain.CanonicalName(child)] {
				queue = append(queue, domain.CanonicalName(child))
			}
		}
	}

	return models
}

func (s *AnalyzeService) readModel(ctx context.Context, name string) domain.Model {
	if !s.repo.Exists(ctx, name) {
		return domain.Model{Name: name, Missing: true}
	}

	m := domain.Model{Name: name}
	if size, err := s.repo.Stat(ctx, name); err == nil {
		m.Size = size
	}

	data, err := s.repo.ReadFile(ctx, name)
	if err != nil {
		m.Err = err
		return m
	}

	hdr, err := papyrus.ReadModelHeader(name, data)
	if err != nil {
		m.Err = err
		return m
	}

	m.MipRefs = hdr.MipRefs
	m.ChildRefs = hdr.ChildRefs
	return m
}

func (s *AnalyzeService) readTexture(ctx context.Context, name string) domain.Texture {
	t := domain.Texture{Name: name}
	if size, err := s.repo.Stat(ctx, name); err == nil {
		t.Size = size
	}

	data, err := s.repo.ReadFile(ctx, name)
	if err != nil {
		t.Err = err
		return t
	}

	hdr, err := papyrus.ReadTextureHeader(name, data)
	if err != nil {
		t.Err = err
		return t
	}

	t.Width = hdr.Width
	t.Height = hdr.Height
	return t
}
