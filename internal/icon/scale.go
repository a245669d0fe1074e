package icon

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/draw"
)

// LoadLogo reads PNG source art for scaled icon sets.
func LoadLogo(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening logo: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding logo %s: %w", path, err)
	}
	return img, nil
}

// Scale resamples src onto a fresh size×size canvas with Catmull-Rom
// interpolation.
func Scale(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), draw.Over, nil)
	return dst
}
