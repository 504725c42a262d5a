package services

import (
	"context"
	"encoding/binary"
	"reflect"
	"testing"

	"github.com/icr2-tools/trackscan/internal/core/ports/mocks"
)

// model3do assembles a minimal .3do header referencing the given texture
// and nested model names (without extensions).
func model3do(mips, children []string) []byte {
	data := make([]byte, 20)
	binary.LittleEndian.PutUint32(data[8:], uint32(len(mips)))
	binary.LittleEndian.PutUint32(data[16:], uint32(len(children)))
	for _, n := range append(append([]string{}, mips...), children...) {
		field := make([]byte, 8)
		copy(field, n)
		data = append(data, field...)
	}
	return data
}

// texMip assembles a .mip file of exactly size bytes with the given
// dimensions in its header.
func texMip(width, height uint32, size int) []byte {
	data := make([]byte, size)
	binary.LittleEndian.PutUint32(data[8:], width)
	binary.LittleEndian.PutUint32(data[12:], height)
	return data
}

func TestAnalyzeService_Execute(t *testing.T) {
	repo := mocks.NewMockTrackRepository("car")
	repo.AddFile("car.3do", model3do([]string{"tex1", "tex2", "tex1"}, nil))
	repo.AddFile("tex1.mip", texMip(64, 64, 4096))
	repo.AddFile("tex2.mip", texMip(32, 32, 1024))
	repo.AddFile("tex3.mip", texMip(16, 16, 512))

	svc := NewAnalyzeService(repo, nil)
	a, err := svc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(a.Models) != 1 || a.Models[0].Name != "car.3do" {
		t.Fatalf("Models = %+v, want single car.3do", a.Models)
	}

	var refNames []string
	for _, tex := range a.Referenced {
		refNames = append(refNames, tex.Name)
	}
	if !reflect.DeepEqual(refNames, []string{"tex1.mip", "tex2.mip"}) {
		t.Errorf("Referenced = %v, want [tex1.mip tex2.mip]", refNames)
	}
	if a.Referenced[0].Width != 64 || a.Referenced[0].Height != 64 || a.Referenced[0].Size != 4096 {
		t.Errorf("tex1 detail = %+v, want 64x64 4096 bytes", a.Referenced[0])
	}
	if !reflect.DeepEqual(a.Unused, []string{"tex3.mip"}) {
		t.Errorf("Unused = %v, want [tex3.mip]", a.Unused)
	}
	if got := a.TextureSizeTotal(); got != 5120 {
		t.Errorf("TextureSizeTotal = %d, want 5120", got)
	}
	if got := a.ModelSizeTotal(); got != int64(len(model3do([]string{"tex1", "tex2", "tex1"}, nil))) {
		t.Errorf("ModelSizeTotal = %d, want size of car.3do", got)
	}
}

func TestAnalyzeService_NestedModels(t *testing.T) {
	repo := mocks.NewMockTrackRepository("ring")
	repo.AddFile("ring.3do", model3do([]string{"road"}, []string{"bridge"}))
	repo.AddFile("bridge.3do", model3do([]string{"girder"}, []string{"ring"}))
	repo.AddFile("road.mip", texMip(128, 128, 2048))
	repo.AddFile("girder.mip", texMip(64, 64, 1024))

	svc := NewAnalyzeService(repo, nil)
	a, err := svc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The cycle back to ring.3do must not loop or duplicate.
	var names []string
	for _, m := range a.Models {
		names = append(names, m.Name)
	}
	if !reflect.DeepEqual(names, []string{"ring.3do", "bridge.3do"}) {
		t.Errorf("Models = %v, want [ring.3do bridge.3do]", names)
	}
	if len(a.Referenced) != 2 {
		t.Errorf("Referenced = %+v, want road and girder", a.Referenced)
	}
}

func TestAnalyzeService_ExtraModels(t *testing.T) {
	repo := mocks.NewMockTrackRepository("oval")
	repo.AddFile("oval.3do", model3do([]string{"wall"}, nil))
	repo.AddFile("sky.3do", model3do([]string{"cloud"}, nil))
	repo.AddFile("wall.mip", texMip(64, 64, 256))
	repo.AddFile("cloud.mip", texMip(256, 64, 512))

	svc := NewAnalyzeService(repo, []string{"sky.3do", "horiz.3do"})
	a, err := svc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var names []string
	for _, m := range a.Models {
		names = append(names, m.Name)
	}
	if !reflect.DeepEqual(names, []string{"oval.3do", "sky.3do", "horiz.3do"}) {
		t.Errorf("Models = %v, want root plus extras in order", names)
	}
	if !a.Models[2].Missing {
		t.Error("horiz.3do should be flagged missing")
	}
	if len(a.Referenced) != 2 {
		t.Errorf("Referenced = %+v, want wall and cloud", a.Referenced)
	}
}

func TestAnalyzeService_MissingTexture(t *testing.T) {
	repo := mocks.NewMockTrackRepository("mosport")
	repo.AddFile("mosport.3do", model3do([]string{"gone", "here"}, nil))
	repo.AddFile("here.mip", texMip(32, 32, 128))

	svc := NewAnalyzeService(repo, nil)
	a, err := svc.Execute(context.Background())
	if err != nil {
		t.Fatalf("run must complete despite missing texture: %v", err)
	}

	if !reflect.DeepEqual(a.Missing, []string{"gone.mip"}) {
		t.Errorf("Missing = %v, want [gone.mip]", a.Missing)
	}
	if len(a.Referenced) != 1 || a.Referenced[0].Name != "here.mip" {
		t.Errorf("Referenced = %+v, want only here.mip with details", a.Referenced)
	}
}

func TestAnalyzeService_UnreadableModel(t *testing.T) {
	repo := mocks.NewMockTrackRepository("laguna")
	repo.AddFile("laguna.3do", []byte{1, 2, 3})
	repo.AddFile("stray.mip", texMip(8, 8, 64))

	svc := NewAnalyzeService(repo, nil)
	a, err := svc.Execute(context.Background())
	if err != nil {
		t.Fatalf("run must complete despite unreadable model: %v", err)
	}

	if a.Models[0].Err == nil {
		t.Error("truncated model should carry a parse error")
	}
	if !reflect.DeepEqual(a.Unused, []string{"stray.mip"}) {
		t.Errorf("Unused = %v, want [stray.mip]", a.Unused)
	}
}
