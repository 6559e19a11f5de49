// Command tableimage renders raster images as HTML tables, one cell per
// horizontal run of identical pixels. By default every distinct color is
// assigned a short CSS class name weighted by how much of the image it
// covers; -no-css inlines all styling into the markup instead.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/TheEdenCrazy/tableimage"
	"github.com/TheEdenCrazy/tableimage/imageutil"
)

func main() {
	noCSS := flag.Bool("no-css", false,
		"Inline all styling in the HTML instead of emitting CSS classes "+
			"(much larger output)")
	fullDocument := flag.Bool("full-document", false,
		"Emit a standalone HTML document with the stylesheet inlined")
	combined := flag.String("combined", "",
		"Write markup and stylesheet together to this file ('-' for stdout)")
	htmlPath := flag.String("html", "",
		"Write the HTML fragments to this file (requires -css, excludes -combined)")
	cssPath := flag.String("css", "",
		"Write the stylesheet to this file (requires -html, excludes -combined)")
	appendMode := flag.Bool("append", false,
		"Append to existing output files instead of truncating them")
	pixelSize := flag.Int("pixel-size", tableimage.DefaultPixelSize,
		"Edge length of one image pixel in output px")
	background := flag.String("background", "255,255,255",
		"Background color blended under transparency, as 'R,G,B' or '#rrggbb'")
	alphabet := flag.String("alphabet", tableimage.DefaultAlphabet,
		"Symbols palette class names are drawn from (at least two)")
	gzipOut := flag.Bool("gzip", false,
		"Compress file outputs with gzip, appending .gz to their names")
	verbose := flag.Bool("verbose", false,
		"Report per-image statistics and timing on stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: %s [options] <image> [<image> ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "tableimage: no input images")
		flag.Usage()
		os.Exit(2)
	}
	if *combined != "" && (*htmlPath != "" || *cssPath != "") {
		fatal(fmt.Errorf("-combined cannot be used together with -html/-css"))
	}
	if (*htmlPath == "") != (*cssPath == "") {
		fatal(fmt.Errorf("-html and -css must be given together"))
	}

	bg, err := parseBackground(*background)
	if err != nil {
		fatal(err)
	}

	conv := tableimage.NewConverter(
		tableimage.WithPixelSize(*pixelSize),
		tableimage.WithInlineStyles(*noCSS),
		tableimage.WithAlphabet(*alphabet),
		tableimage.WithBackground(bg),
	)

	inputs := flag.Args()
	htmlChunks := make([]string, len(inputs))
	cssChunks := make([]string, len(inputs))
	for i, path := range inputs {
		start := time.Now()
		img, err := imageutil.LoadImage(path)
		if err != nil {
			fatal(err)
		}
		surface := tableimage.NewImageSurface(img, bg)
		html, css, err := conv.Convert(surface)
		if err != nil {
			fatal(err)
		}
		htmlChunks[i] = html
		cssChunks[i] = css
		if *verbose {
			w, h := surface.Size()
			colors := tableimage.ColorWeights(tableimage.ContiguousRows(surface)).Len()
			fmt.Fprintf(os.Stderr,
				"%s: %dx%d px, %d colors, %d bytes html, %d bytes css, %v\n",
				path, w, h, colors, len(html), len(css), time.Since(start))
		}
	}

	switch {
	case *combined != "":
		html := strings.Join(htmlChunks, "\n")
		css := strings.Join(cssChunks, "\n")
		if *fullDocument {
			html = tableimage.FullDocument(tableimage.CombineHTMLCSS(html, css))
			css = ""
		}
		writeOrDie(*combined, tableimage.CombineHTMLCSS(html, css), *appendMode, *gzipOut, *verbose)

	case *htmlPath != "":
		html := strings.Join(htmlChunks, "\n")
		css := strings.Join(cssChunks, "\n")
		if *fullDocument {
			html = tableimage.FullDocument(tableimage.CombineHTMLCSS(html, css))
			css = ""
		}
		writeOrDie(*htmlPath, html, *appendMode, *gzipOut, *verbose)
		if strings.TrimSpace(css) != "" {
			writeOrDie(*cssPath, css, *appendMode, *gzipOut, *verbose)
		}

	default:
		// One .html (and .css when produced) next to each input.
		for i, path := range inputs {
			html, css := htmlChunks[i], cssChunks[i]
			if *fullDocument {
				html = tableimage.FullDocument(tableimage.CombineHTMLCSS(html, css))
				css = ""
			}
			writeOrDie(path+".html", html, *appendMode, *gzipOut, *verbose)
			if strings.TrimSpace(css) != "" {
				writeOrDie(path+".css", css, *appendMode, *gzipOut, *verbose)
			}
		}
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "tableimage: %v\n", err)
	os.Exit(1)
}

func writeOrDie(path, content string, appendMode, gzipped, verbose bool) {
	dest, err := writeOutput(path, content, appendMode, gzipped)
	if err != nil {
		fatal(err)
	}
	if verbose && dest != "-" {
		fmt.Fprintf(os.Stderr, "wrote %s\n", dest)
	}
}

// writeOutput writes content to path, with "-" meaning stdout. File outputs
// honor append mode and, when gzipped, receive a .gz name suffix; appended
// gzip members concatenate into a single valid stream. The name actually
// written to is returned.
func writeOutput(path, content string, appendMode, gzipped bool) (string, error) {
	if path == "-" {
		return path, writeContent(os.Stdout, content, gzipped)
	}
	if gzipped {
		path += ".gz"
	}
	flags := os.O_WRONLY | os.O_CREATE
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return path, fmt.Errorf("failed to open %s: %w", path, err)
	}
	if err := writeContent(f, content, gzipped); err != nil {
		f.Close()
		return path, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return path, fmt.Errorf("failed to close %s: %w", path, err)
	}
	return path, nil
}

func writeContent(w io.Writer, content string, gzipped bool) error {
	if !gzipped {
		_, err := io.WriteString(w, content)
		return err
	}
	zw := gzip.NewWriter(w)
	if _, err := io.WriteString(zw, content); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// parseBackground interprets spec as a background color: either three comma
// separated decimal channels, each clamped into [0, 255], or a CSS hex
// literal of the form #rgb or #rrggbb.
func parseBackground(spec string) (tableimage.RGB, error) {
	if strings.HasPrefix(spec, "#") {
		return parseHexColor(spec)
	}
	parts := strings.Split(spec, ",")
	if len(parts) != 3 {
		return tableimage.RGB{}, fmt.Errorf("background must be 'R,G,B' or '#rrggbb', got %q", spec)
	}
	var channels [3]int
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return tableimage.RGB{}, fmt.Errorf("bad background channel %q in %q", part, spec)
		}
		channels[i] = v
	}
	return tableimage.RGBFromInts(channels[0], channels[1], channels[2]), nil
}

func parseHexColor(spec string) (tableimage.RGB, error) {
	hex := spec[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return tableimage.RGB{}, fmt.Errorf("hex background must be #rgb or #rrggbb, got %q", spec)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tableimage.RGB{}, fmt.Errorf("bad hex background %q", spec)
	}
	return tableimage.RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
