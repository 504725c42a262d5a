package services

import (
	"fmt"
	"strings"

	"github.com/icr2-tools/trackscan/internal/core/domain"
)

// DefaultReportSuffix is appended to the track name to form the report
// filename, matching the layout longtime track editors expect.
const DefaultReportSuffix = "_file_analysis.txt"

// ReportService renders an Analysis into the plain-text report. Rendering
// is pure formatting: identical input produces byte-identical output.
type ReportService struct {
	suffix string
}

// NewReportService creates a report service. An empty suffix falls back to
// DefaultReportSuffix.
func NewReportService(suffix string) *ReportService {
	if suffix == "" {
		suffix = DefaultReportSuffix
	}
	return &ReportService{suffix: suffix}
}

// Filename returns the report filename for a track.
func (s *ReportService) Filename(track string) string {
	return domain.CanonicalName(track) + s.suffix
}

// Render produces the report text for one analysis run.
func (s *ReportService) Render(a *domain.Analysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "All 3DO files used by the track:\n")
	for _, m := range a.Models {
		fmt.Fprintf(&b, "%s\n", m.Name)
	}

	fmt.Fprintf(&b, "\nDetails of each 3DO file:\n")
	for _, m := range a.Models {
		switch {
		case m.Missing:
			fmt.Fprintf(&b, "%s: File not found\n", m.Name)
		case m.Err != nil:
			fmt.Fprintf(&b, "%s: Unreadable (%v)\n", m.Name, m.Err)
		default:
			fmt.Fprintf(&b, "%s: Size = %d bytes\n", m.Name, m.Size)
		}
	}

	fmt.Fprintf(&b, "\nAll unique MIP files used by the track:\n")
	for _, t := range a.Referenced {
		fmt.Fprintf(&b, "%s\n", t.Name)
	}

	fmt.Fprintf(&b, "\nDetails of each MIP file:\n")
	for _, t := range a.Referenced {
		if t.Err != nil {
			fmt.Fprintf(&b, "%s: Unreadable (%v)\n", t.Name, t.Err)
			continue
		}
		fmt.Fprintf(&b, "%s: Width = %d, Height = %d, Size = %d bytes\n",
			t.Name, t.Width, t.Height, t.Size)
	}

	if len(a.Missing) > 0 {
		fmt.Fprintf(&b, "\nMissing MIP files (referenced but not found on disk):\n")
		for _, name := range a.Missing {
			fmt.Fprintf(&b, "%s\n", name)
		}
	}

	fmt.Fprintf(&b, "\nUnused MIP files in the folder:\n")
	for _, name := range a.Unused {
		fmt.Fprintf(&b, "%s\n", name)
	}

	fmt.Fprintf(&b, "\nTotal number of MIP files: %d\n", len(a.Referenced)+len(a.Missing))
	fmt.Fprintf(&b, "Total size of all 3DO files: %d bytes\n", a.ModelSizeTotal())
	fmt.Fprintf(&b, "Total size of all MIP files: %d bytes\n", a.TextureSizeTotal())
	fmt.Fprintf(&b, "Total number of unused MIP files: %d\n", len(a.Unused))

	return b.String()
}
