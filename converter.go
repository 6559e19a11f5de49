// Package tableimage converts raster images into HTML table markup, one
// table cell per horizontal run of identical pixels. In CSS mode every
// distinct color is assigned a short prefix-free class name by a generalized
// Huffman construction, so the colors covering the most pixels get the
// shortest names; inline mode embeds all styling in the markup instead.
package tableimage

import (
	"image"

	"github.com/TheEdenCrazy/tableimage/imageutil"
)

// DefaultPixelSize is how many output px each image pixel spans in both axes
// when no size is configured.
const DefaultPixelSize = 3

// DefaultBackground is the color composited under transparent image regions
// when no background is configured.
var DefaultBackground = RGB{R: 255, G: 255, B: 255}

// Converter turns pixel surfaces into HTML table markup. A Converter holds
// configuration only; each conversion builds its own weight table, code tree
// and identifier, so one Converter may run conversions from multiple
// goroutines concurrently.
type Converter struct {
	// Configuration options
	PixelSize    int
	InlineStyles bool
	Alphabet     string
	Background   RGB

	// Identifier source (private)
	identSource func() string
}

// ConverterOption is a functional option for configuring a Converter.
type ConverterOption func(*Converter)

// NewConverter creates a new Converter with the given options.
// Default values: PixelSize=3, InlineStyles=false (CSS mode),
// Alphabet=DefaultAlphabet, Background=white.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{
		PixelSize:   DefaultPixelSize,
		Alphabet:    DefaultAlphabet,
		Background:  DefaultBackground,
		identSource: randomIdent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithPixelSize sets the edge length of one image pixel in output px.
func WithPixelSize(size int) ConverterOption {
	return func(c *Converter) {
		c.PixelSize = size
	}
}

// WithInlineStyles switches between inline styling (true) and CSS classes
// (false).
func WithInlineStyles(inline bool) ConverterOption {
	return func(c *Converter) {
		c.InlineStyles = inline
	}
}

// WithAlphabet sets the symbol alphabet palette class names are drawn from.
// Symbols must be valid in CSS class names; the default alphabet's ASCII
// letters always are.
func WithAlphabet(alphabet string) ConverterOption {
	return func(c *Converter) {
		c.Alphabet = alphabet
	}
}

// WithBackground sets the color composited under transparent image regions.
func WithBackground(background RGB) ConverterOption {
	return func(c *Converter) {
		c.Background = background
	}
}

// WithIdentSource replaces the random table-identifier generator used in CSS
// mode. Tests use a fixed source to make output deterministic; the source
// must be safe for concurrent use if the Converter is shared.
func WithIdentSource(source func() string) ConverterOption {
	return func(c *Converter) {
		c.identSource = source
	}
}

// Convert runs the full pipeline on a pixel surface: extract runs, weigh
// colors, assign palette codes, and emit markup. In inline mode css is
// empty; in CSS mode html and css belong together and reference the same
// table identifier.
func (c *Converter) Convert(surface PixelSurface) (html, css string, err error) {
	runs := ContiguousRows(surface)
	if c.InlineStyles {
		return RenderInline(runs, c.PixelSize), "", nil
	}
	codes, err := BuildPalette(runs, c.Alphabet)
	if err != nil {
		return "", "", err
	}
	html, css = RenderCSS(runs, codes, c.PixelSize, c.identSource())
	return html, css, nil
}

// ConvertImage converts a decoded image, compositing it onto the converter's
// background color first.
func (c *Converter) ConvertImage(img image.Image) (html, css string, err error) {
	return c.Convert(NewImageSurface(img, c.Background))
}

// ConvertFile loads the image at path and converts it. PNG, JPEG, GIF,
// TIFF, WebP and BMP files are decoded.
func (c *Converter) ConvertFile(path string) (html, css string, err error) {
	img, err := imageutil.LoadImage(path)
	if err != nil {
		return "", "", err
	}
	return c.ConvertImage(img)
}
