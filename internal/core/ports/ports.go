package ports

import "context"

// TrackRepository defines the port for reading a track folder's assets.
// Implementations return names in on-disk discovery order; report output
// depends on that order being stable between runs.
type TrackRepository interface {
	// Track returns the track name this repository serves.
	Track() string

	// ListModelNames returns the .3do filenames present in the track folder.
	ListModelNames(ctx context.Context) ([]string, error)

	// ListTextureNames returns the .mip filenames present in the track folder.
	ListTextureNames(ctx context.Context) ([]string, error)

	// ReadFile returns the raw bytes of one asset file.
	ReadFile(ctx context.Context, name string) ([]byte, error)

	// Stat returns the byte size of one asset file.
	Stat(ctx context.Context, name string) (int64, error)

	// Exists checks whether an asset file is present, case-insensitively.
	Exists(ctx context.Context, name string) bool
}
