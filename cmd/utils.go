package cmd

import (
	"fmt"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"

	"github.com/icr2-tools/trackscan/internal/adapters/repository"
	"github.com/icr2-tools/trackscan/internal/core/services"
)

// resolveTrack returns the track named in args, or falls back to an
// interactive picker over the tracks found in the tracks directory.
func resolveTrack(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	tracks, err := game.ListTracks()
	if err != nil {
		return "", err
	}
	if len(tracks) == 0 {
		return "", fmt.Errorf("no tracks found in %s", game.TracksPath)
	}

	idx, err := fuzzyfinder.Find(
		tracks,
		func(i int) string { return tracks[i] },
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return fmt.Sprintf("Track: %s\nFolder: %s", tracks[i], game.TrackPath(tracks[i]))
		}),
	)
	if err != nil {
		return "", fmt.Errorf("no track selected")
	}
	return tracks[idx], nil
}

// newAnalyzer builds the analyzer for one track, checking the track
// directory exists first.
func newAnalyzer(track string) (*services.AnalyzeService, error) {
	if !game.TrackExists(track) {
		return nil, fmt.Errorf("track directory not found: %s", game.TrackPath(track))
	}
	repo := repository.NewTrackRepository(track, game.TrackPath(track))
	return services.NewAnalyzeService(repo, appConfig.ExtraModels), nil
}

// formatBytes renders a byte count in a human-readable unit.
func formatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
