package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

// Flatten alpha-composites img onto a uniform background color and returns
// the result as an RGBA image with bounds anchored at the origin.
// Transparent and translucent pixels blend with the background the way a
// browser blends them with a page; opaque images come through unchanged.
func Flatten(img image.Image, background color.Color) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}
