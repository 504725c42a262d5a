package domain

import (
	"fmt"
	"strings"
)

// Model represents one .3do file discovered for a track.
type Model struct {
	Name      string   // filename as discovered, e.g. "watglen.3do"
	Size      int64    // byte size on disk
	MipRefs   []string // referenced textures in header order, duplicates possible
	ChildRefs []string // nested model references in header order
	Missing   bool     // referenced but not present on disk
	Err       error    // non-nil when the header could not be parsed
}

// Texture represents one .mip file with its parsed header fields.
type Texture struct {
	Name   string // canonical filename, e.g. "asphalt.mip"
	Size   int64
	Width  uint32
	Height uint32
	Err    error // non-nil when the header could not be parsed
}

// Analysis is the read-only snapshot produced by one analyzer run.
type Analysis struct {
	Track      string
	Models     []Model   // discovery order
	Referenced []Texture // unique referenced textures, first-seen order
	Unused     []string  // on-disk textures never referenced, disk order
	Missing    []string  // referenced textures absent on disk, first-seen order
}

// ModelSizeTotal sums the sizes of all readable model files.
func (a *Analysis) ModelSizeTotal() int64 {
	var total int64
	for _, m := range a.Models {
		if m.Size > 0 {
			total += m.Size
		}
	}
	return total
}

// TextureSizeTotal sums the sizes of all referenced textures found on disk.
func (a *Analysis) TextureSizeTotal() int64 {
	var total int64
	for _, t := range a.Referenced {
		if t.Size > 0 {
			total += t.Size
		}
	}
	return total
}

// CanonicalName normalizes an asset filename for comparison. The source
// platform's filesystem is case-insensitive, so all set operations run on
// the lowercased form.
func CanonicalName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// TrackModelName returns the root model filename for a track,
// e.g. "watglen" -> "watglen.3do".
func TrackModelName(track string) string {
	return CanonicalName(track) + ".3do"
}

// ValidateTrackName rejects names that cannot form a track directory.
func ValidateTrackName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("track name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("track name cannot contain path separators")
	}
	return nil
}
