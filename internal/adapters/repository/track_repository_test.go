package repository

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestTrackRepository_List(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "watglen.3do", []byte("model"))
	writeFile(t, dir, "SKY.3DO", []byte("model"))
	writeFile(t, dir, "asphalt.mip", []byte("texture"))
	writeFile(t, dir, "Grass.MIP", []byte("texture"))
	writeFile(t, dir, "readme.txt", []byte("notes"))
	if err := os.Mkdir(filepath.Join(dir, "backup.mip"), 0755); err != nil {
		t.Fatal(err)
	}

	repo := NewTrackRepository("watglen", dir)
	ctx := context.Background()

	models, err := repo.ListModelNames(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(models, []string{"SKY.3DO", "watglen.3do"}) {
		t.Errorf("models = %v, want [SKY.3DO watglen.3do]", models)
	}

	textures, err := repo.ListTextureNames(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(textures, []string{"asphalt.mip", "Grass.MIP"}) {
		t.Errorf("textures = %v, want [asphalt.mip Grass.MIP]", textures)
	}
}

func TestTrackRepository_CaseInsensitiveLookup(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "track.mip", []byte("pixels"))

	repo := NewTrackRepository("test", dir)
	ctx := context.Background()

	if !repo.Exists(ctx, "TRACK.MIP") {
		t.Error("lookup should ignore case")
	}

	data, err := repo.ReadFile(ctx, "Track.Mip")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "pixels" {
		t.Errorf("content = %q, want pixels", data)
	}

	size, err := repo.Stat(ctx, "TRACK.mip")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if size != int64(len("pixels")) {
		t.Errorf("size = %d, want %d", size, len("pixels"))
	}
}

func TestTrackRepository_MissingDirectory(t *testing.T) {
	repo := NewTrackRepository("ghost", filepath.Join(t.TempDir(), "ghost"))
	ctx := context.Background()

	if _, err := repo.ListTextureNames(ctx); err == nil {
		t.Error("listing a missing directory must fail")
	}
	if repo.Exists(ctx, "any.mip") {
		t.Error("Exists must be false for a missing directory")
	}
}

func TestTrackRepository_MissingFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "present.mip", []byte("x"))

	repo := NewTrackRepository("test", dir)
	ctx := context.Background()

	if _, err := repo.ReadFile(ctx, "absent.mip"); err == nil {
		t.Error("reading an absent file must fail")
	}
	if _, err := repo.Stat(ctx, "absent.mip"); err == nil {
		t.Error("stating an absent file must fail")
	}
}
