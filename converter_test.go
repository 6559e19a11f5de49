package tableimage

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/TheEdenCrazy/tableimage/imageutil"
)

func fixedIdent() string {
	return "testtableidentab"
}

func TestNewConverterDefaults(t *testing.T) {
	t.Parallel()
	c := NewConverter()
	if c.PixelSize != DefaultPixelSize {
		t.Errorf("Expected pixel size %d, got %d", DefaultPixelSize, c.PixelSize)
	}
	if c.InlineStyles {
		t.Error("Expected CSS mode by default")
	}
	if c.Alphabet != DefaultAlphabet {
		t.Errorf("Expected default alphabet, got %q", c.Alphabet)
	}
	if c.Background != DefaultBackground {
		t.Errorf("Expected white background, got %v", c.Background)
	}
}

func TestConverterConvertCSSMode(t *testing.T) {
	t.Parallel()
	surface := gridSurface{
		{red, red, blue},
		{blue, blue, blue},
	}
	conv := NewConverter(WithIdentSource(fixedIdent))
	html, css, err := conv.Convert(surface)
	if err != nil {
		t.Fatalf("Failed to convert: %v", err)
	}
	if !strings.Contains(html, `id="testtableidentab"`) {
		t.Errorf("Expected table to carry the identifier, got:\n%s", html)
	}
	if !strings.Contains(css, "table#testtableidentab tr{line-height:3px;}") {
		t.Errorf("Expected row height rule, got:\n%s", css)
	}
	// Blue covers four pixels to red's two, so blue takes the first symbol.
	if !strings.Contains(css, "td.a{background:#00f;}") {
		t.Errorf("Expected blue to map to class a, got:\n%s", css)
	}
	if !strings.Contains(css, "td.b{background:#f00;}") {
		t.Errorf("Expected red to map to class b, got:\n%s", css)
	}

	again, againCSS, err := conv.Convert(surface)
	if err != nil {
		t.Fatalf("Failed to convert: %v", err)
	}
	if again != html || againCSS != css {
		t.Error("Expected identical output across conversions with a fixed identifier source")
	}
}

func TestConverterInlineMode(t *testing.T) {
	t.Parallel()
	conv := NewConverter(WithInlineStyles(true), WithPixelSize(5))
	html, css, err := conv.Convert(gridSurface{{red, red}})
	if err != nil {
		t.Fatalf("Failed to convert: %v", err)
	}
	if css != "" {
		t.Errorf("Expected empty stylesheet in inline mode, got %q", css)
	}
	if !strings.Contains(html, `background:#f00;width:10px;`) {
		t.Errorf("Expected inline style with scaled width, got:\n%s", html)
	}
}

func TestConverterAlphabetTooSmall(t *testing.T) {
	t.Parallel()
	conv := NewConverter(WithAlphabet("x"))
	if _, _, err := conv.Convert(gridSurface{{red, blue}}); !errors.Is(err, ErrAlphabetTooSmall) {
		t.Errorf("Expected ErrAlphabetTooSmall, got %v", err)
	}

	// Inline mode never builds a palette, so the alphabet is not consulted.
	inline := NewConverter(WithAlphabet("x"), WithInlineStyles(true))
	if _, _, err := inline.Convert(gridSurface{{red, blue}}); err != nil {
		t.Errorf("Expected inline mode to ignore the alphabet, got %v", err)
	}
}

func TestConverterConvertImageBlendsBackground(t *testing.T) {
	t.Parallel()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 0, G: 255, B: 0, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{A: 0}) // fully transparent

	conv := NewConverter(WithInlineStyles(true), WithBackground(red))
	html, _, err := conv.ConvertImage(img)
	if err != nil {
		t.Fatalf("Failed to convert: %v", err)
	}
	if !strings.Contains(html, "background:#0f0;") {
		t.Errorf("Expected opaque pixel to keep its color, got:\n%s", html)
	}
	if !strings.Contains(html, "background:#f00;") {
		t.Errorf("Expected transparent pixel to take the background color, got:\n%s", html)
	}
}

func TestConverterConvertFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "solid.png")
	img := imageutil.CreateSolidImage(4, 2, color.RGBA{B: 255, A: 255})
	if err := imageutil.SavePNG(img, path); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	conv := NewConverter(WithIdentSource(fixedIdent))
	html, css, err := conv.ConvertFile(path)
	if err != nil {
		t.Fatalf("Failed to convert file: %v", err)
	}
	if !strings.Contains(html, `class="a"`) {
		t.Errorf("Expected the single color to map to class a, got:\n%s", html)
	}
	if !strings.Contains(css, "td.a{background:#00f;}") {
		t.Errorf("Expected stylesheet rule for blue, got:\n%s", css)
	}
}

func TestConverterConvertFileMissing(t *testing.T) {
	t.Parallel()
	conv := NewConverter()
	if _, _, err := conv.ConvertFile(filepath.Join(t.TempDir(), "absent.png")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestConverterVerticalGradientRows(t *testing.T) {
	t.Parallel()
	surface := NewImageSurface(imageutil.CreateVerticalGradientImage(3, 4), DefaultBackground)
	rows := SplitRows(ContiguousRows(surface))
	if len(rows) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(rows))
	}
	for i, row := range rows {
		if len(row) != 1 || row[0].Count != 3 {
			t.Errorf("Expected one full-width run in row %d, got %v", i, row)
		}
	}
}

func TestConverterGradientPalette(t *testing.T) {
	t.Parallel()
	surface := NewImageSurface(imageutil.CreateGradientImage(8, 2), DefaultBackground)
	runs := ContiguousRows(surface)
	codes, err := BuildPalette(runs, DefaultAlphabet)
	if err != nil {
		t.Fatalf("Failed to build palette: %v", err)
	}
	if len(codes) != 8 {
		t.Errorf("Expected 8 palette entries for an 8-column gradient, got %d", len(codes))
	}
}

func TestConverterConcurrent(t *testing.T) {
	t.Parallel()
	surface := NewImageSurface(imageutil.CreateColorBarsImage(64, 16), DefaultBackground)
	conv := NewConverter(WithIdentSource(fixedIdent))

	const workers = 8
	outputs := make([]string, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			html, css, err := conv.Convert(surface)
			outputs[i] = html + css
			errs[i] = err
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("Worker %d failed: %v", i, errs[i])
		}
		if outputs[i] != outputs[0] {
			t.Errorf("Worker %d produced different output", i)
		}
	}
}

func BenchmarkConvert(b *testing.B) {
	surface := NewImageSurface(imageutil.CreateColorBarsImage(320, 64), DefaultBackground)
	conv := NewConverter(WithIdentSource(fixedIdent))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := conv.Convert(surface); err != nil {
			b.Fatalf("Failed to convert: %v", err)
		}
	}
}

func BenchmarkConvertInline(b *testing.B) {
	surface := NewImageSurface(imageutil.CreateColorBarsImage(320, 64), DefaultBackground)
	conv := NewConverter(WithInlineStyles(true))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := conv.Convert(surface); err != nil {
			b.Fatalf("Failed to convert: %v", err)
		}
	}
}
