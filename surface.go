package tableimage

import (
	"image"

	"github.com/TheEdenCrazy/tableimage/imageutil"
)

// ImageSurface adapts a decoded image.Image to the PixelSurface interface.
// The source is alpha-composited onto a uniform background color once at
// construction, so transparent and translucent images come out the way a
// browser would paint them over that background.
type ImageSurface struct {
	rgba *image.RGBA
}

// NewImageSurface flattens img against the given background color and wraps
// the result.
func NewImageSurface(img image.Image, background RGB) *ImageSurface {
	return &ImageSurface{rgba: imageutil.Flatten(img, background.ToColor())}
}

// Size returns the image dimensions in pixels.
func (s *ImageSurface) Size() (width, height int) {
	b := s.rgba.Bounds()
	return b.Dx(), b.Dy()
}

// PixelAt returns the color in column x of row y, counted from the top-left
// corner. It panics when the coordinates lie outside the image.
func (s *ImageSurface) PixelAt(x, y int) RGB {
	b := s.rgba.Bounds()
	if x < 0 || y < 0 || x >= b.Dx() || y >= b.Dy() {
		panic("tableimage: pixel coordinates out of range")
	}
	c := s.rgba.RGBAAt(b.Min.X+x, b.Min.Y+y)
	return RGB{R: c.R, G: c.G, B: c.B}
}
