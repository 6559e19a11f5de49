package tableimage

// Run describes Count consecutive pixels of the same color within a single
// image row. Runs never span rows. A Run with Count == 0 is a row divider,
// the sentinel that terminates each row's runs; dividers carry no color.
type Run struct {
	Count int
	Color RGB
}

// RowDivider returns the sentinel Run marking the end of a row. A well-formed
// run sequence contains exactly one divider after each row's runs, including
// the last row, so the number of dividers equals the image height.
func RowDivider() Run {
	return Run{}
}

// IsDivider reports whether r is a row divider rather than a pixel run.
func (r Run) IsDivider() bool {
	return r.Count == 0
}

// PixelSurface provides ordered access to the pixels of a decoded image.
// The origin (0, 0) is the top-left pixel. Implementations panic when
// PixelAt is called outside the surface bounds.
type PixelSurface interface {
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)
	// PixelAt returns the color of the pixel in column x of row y.
	PixelAt(x, y int) RGB
}

// RunSource is implemented by pixel surfaces that can enumerate their own
// run sequence, for example a surface backed by a format that already stores
// rows run-length encoded. ContiguousRows delegates to it when present. The
// returned sequence must obey the same row and divider contract as the
// generic scan.
type RunSource interface {
	ContiguousRows() []Run
}

// ContiguousRows collapses a pixel surface into a flat run sequence:
// left to right, top to bottom, consecutive identical pixels within a row
// merged into a single Run, and every row terminated by a RowDivider. A
// surface implementing RunSource supplies its own extraction instead. An
// empty surface (zero columns or zero rows) yields an empty sequence.
func ContiguousRows(surface PixelSurface) []Run {
	if src, ok := surface.(RunSource); ok {
		return src.ContiguousRows()
	}
	width, height := surface.Size()
	if width == 0 || height == 0 {
		return nil
	}
	runs := make([]Run, 0, 2*height)
	for y := 0; y < height; y++ {
		current := surface.PixelAt(0, y)
		count := 1
		for x := 1; x < width; x++ {
			c := surface.PixelAt(x, y)
			if c == current {
				count++
				continue
			}
			runs = append(runs, Run{Count: count, Color: current})
			current = c
			count = 1
		}
		runs = append(runs, Run{Count: count, Color: current})
		runs = append(runs, RowDivider())
	}
	return runs
}

// SplitRows groups a flat run sequence into per-row slices, consuming the
// dividers. Runs trailing the final divider do not form a row and are
// dropped.
func SplitRows(runs []Run) [][]Run {
	var rows [][]Run
	var row []Run
	for _, r := range runs {
		if r.IsDivider() {
			rows = append(rows, row)
			row = nil
			continue
		}
		row = append(row, r)
	}
	return rows
}
