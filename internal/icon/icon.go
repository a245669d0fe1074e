// Package icon renders the Updraft extension icon set: a white upward
// arrow on the brand green, drawn procedurally so the build needs no
// checked-in artwork.
package icon

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
)

var (
	// Background is the brand green (#4CAF50).
	Background = color.RGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}

	// Foreground is the arrow fill.
	Foreground = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Vertices returns the corners of the upward arrow triangle on a
// size×size canvas. Integer division throughout, so neighboring sizes
// can land on the same pixel grid.
func Vertices(size int) (apex, baseLeft, baseRight image.Point) {
	arrow := size / 3
	cx, cy := size/2, size/2
	apex = image.Pt(cx, cy-arrow/2)
	baseLeft = image.Pt(cx-arrow/2, cy+arrow/2)
	baseRight = image.Pt(cx+arrow/2, cy+arrow/2)
	return apex, baseLeft, baseRight
}

// Draw renders the icon at the given size. The same size always yields
// the same pixels.
func Draw(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{Background}, image.Point{}, draw.Src)

	apex, baseLeft, baseRight := Vertices(size)
	fillTriangle(img, apex, baseLeft, baseRight, Foreground)
	return img
}

// fillTriangle fills a symmetric flat-bottom triangle, edges included.
// The base row can sit closer to the apex than the nominal arrow height
// when that height is odd, so the slope comes from the actual vertex rows.
func fillTriangle(img *image.RGBA, apex, baseLeft, baseRight image.Point, c color.RGBA) {
	height := baseLeft.Y - apex.Y
	if height <= 0 {
		img.SetRGBA(apex.X, apex.Y, c)
		return
	}
	halfBase := baseRight.X - apex.X
	for y := apex.Y; y <= baseLeft.Y; y++ {
		halfWidth := (y - apex.Y) * halfBase / height
		for x := apex.X - halfWidth; x <= apex.X+halfWidth; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// EncodePNG returns img as PNG bytes. An opaque RGBA raster comes out as
// 8-bit truecolor.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
