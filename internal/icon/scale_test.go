package icon

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestScaleUniformSource(t *testing.T) {
	red := color.RGBA{R: 0xC8, A: 0xFF}
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			src.SetRGBA(x, y, red)
		}
	}

	dst := Scale(src, 16)
	if got := dst.Bounds(); got != image.Rect(0, 0, 16, 16) {
		t.Fatalf("Scale bounds = %v, want 16x16", got)
	}
	for _, p := range []image.Point{{0, 0}, {15, 0}, {8, 8}, {0, 15}, {15, 15}} {
		if got := dst.RGBAAt(p.X, p.Y); got != red {
			t.Errorf("scaled pixel %v = %v, want %v", p, got, red)
		}
	}
}

func TestLoadLogoRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	data, err := EncodePNG(Draw(32))
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	img, err := LoadLogo(path)
	if err != nil {
		t.Fatalf("LoadLogo: %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 32, 32) {
		t.Errorf("logo bounds = %v, want 32x32", got)
	}
}

func TestLoadLogoMissingFile(t *testing.T) {
	if _, err := LoadLogo(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("LoadLogo succeeded on a missing file")
	}
}

func TestLoadLogoRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	if err := os.WriteFile(path, []byte("not a png"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := LoadLogo(path); err == nil {
		t.Error("LoadLogo succeeded on non-PNG data")
	}
}
