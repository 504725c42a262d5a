package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/icr2-tools/trackscan/internal/core/domain"
)

func sampleAnalysis() *domain.Analysis {
	return &domain.Analysis{
		Track: "car",
		Models: []domain.Model{
			{Name: "car.3do", Size: 148},
		},
		Referenced: []domain.Texture{
			{Name: "tex1.mip", Size: 4096, Width: 64, Height: 64},
			{Name: "tex2.mip", Size: 1024, Width: 32, Height: 32},
		},
		Unused: []string{"tex3.mip"},
	}
}

func TestReportService_Render(t *testing.T) {
	svc := NewReportService("")
	out := svc.Render(sampleAnalysis())

	wantLines := []string{
		"car.3do: Size = 148 bytes",
		"tex1.mip: Width = 64, Height = 64, Size = 4096 bytes",
		"tex2.mip: Width = 32, Height = 32, Size = 1024 bytes",
		"tex3.mip",
		"Total number of MIP files: 2",
		"Total size of all 3DO files: 148 bytes",
		"Total size of all MIP files: 5120 bytes",
		"Total number of unused MIP files: 1",
	}
	for _, line := range wantLines {
		if !strings.Contains(out, line) {
			t.Errorf("report missing line %q\n--- report ---\n%s", line, out)
		}
	}

	// Section B order must follow first-seen reference order.
	if strings.Index(out, "tex1.mip") > strings.Index(out, "tex2.mip") {
		t.Error("referenced textures out of first-seen order")
	}
}

func TestReportService_RenderIdempotent(t *testing.T) {
	svc := NewReportService("")
	a := sampleAnalysis()
	if svc.Render(a) != svc.Render(a) {
		t.Error("rendering the same analysis twice must be byte-identical")
	}
}

func TestReportService_MissingNotice(t *testing.T) {
	svc := NewReportService("")
	a := sampleAnalysis()
	a.Missing = []string{"missing.mip"}

	out := svc.Render(a)
	if !strings.Contains(out, "Missing MIP files (referenced but not found on disk):\nmissing.mip") {
		t.Errorf("missing texture notice absent:\n%s", out)
	}
	// Missing references still count toward the referenced total.
	if !strings.Contains(out, "Total number of MIP files: 3") {
		t.Errorf("missing reference not counted in totals:\n%s", out)
	}
}

func TestReportService_NoMissingSectionWhenClean(t *testing.T) {
	svc := NewReportService("")
	out := svc.Render(sampleAnalysis())
	if strings.Contains(out, "Missing MIP files") {
		t.Error("missing section rendered for a clean track")
	}
}

func TestReportService_UnreadableEntries(t *testing.T) {
	svc := NewReportService("")
	a := sampleAnalysis()
	a.Models = append(a.Models, domain.Model{Name: "broken.3do", Err: errors.New("header truncated")})
	a.Models = append(a.Models, domain.Model{Name: "horiz.3do", Missing: true})

	out := svc.Render(a)
	if !strings.Contains(out, "broken.3do: Unreadable (header truncated)") {
		t.Errorf("unreadable model not noted:\n%s", out)
	}
	if !strings.Contains(out, "horiz.3do: File not found") {
		t.Errorf("missing model not noted:\n%s", out)
	}
}

func TestReportService_Filename(t *testing.T) {
	svc := NewReportService("")
	if got := svc.Filename("Watglen"); got != "watglen_file_analysis.txt" {
		t.Errorf("Filename = %q, want watglen_file_analysis.txt", got)
	}
	custom := NewReportService("_assets.txt")
	if got := custom.Filename("oval"); got != "oval_assets.txt" {
		t.Errorf("Filename = %q, want oval_assets.txt", got)
	}
}
