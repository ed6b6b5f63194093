package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveFlipsRows(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := NewScreenshots(dir, "seaworld")
	s.now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 8e6, time.UTC) }

	// Two rows, bottom row red, top row blue, alpha zero as read back
	pixels := []byte{
		255, 0, 0, 0, 255, 0, 0, 0,
		0, 0, 255, 0, 0, 0, 255, 0,
	}
	name, err := s.Save(pixels, 2, 2)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if want := filepath.Join(dir, "seaworld_2026-03-04_05-06-07.008.png"); name != want {
		t.Errorf("filename %s, want %s", name, want)
	}

	f, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	r, g, b, a := img.At(0, 0).RGBA()
	if r != 0 || g != 0 || b != 0xffff || a != 0xffff {
		t.Errorf("top-left = %d %d %d %d, want opaque blue", r, g, b, a)
	}
	r, _, b, _ = img.At(1, 1).RGBA()
	if r != 0xffff || b != 0 {
		t.Errorf("bottom-right should be red")
	}
}

func TestSaveSizeMismatch(t *testing.T) {
	s := NewScreenshots(t.TempDir(), "x")
	if _, err := s.Save(make([]byte, 7), 2, 1); err == nil {
		t.Error("expected error for short pixel data")
	}
}
