package tableimage

// DefaultAlphabet is the symbol set used for palette codes when none is
// configured: the ASCII letters, lowercase first. Letter-only codes are
// always valid CSS class names.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// WeightTable tallies the total pixel coverage of each distinct color in an
// image. It remembers the order in which colors were first added, so every
// stage deriving output from it (code assignment seeding, stylesheet rule
// emission) is deterministic for a given image.
type WeightTable struct {
	order   []RGB
	weights map[RGB]int
}

// NewWeightTable returns an empty weight table.
func NewWeightTable() *WeightTable {
	return &WeightTable{weights: make(map[RGB]int)}
}

// Add increases the weight of color c by n, registering the color on first
// sight.
func (t *WeightTable) Add(c RGB, n int) {
	if _, seen := t.weights[c]; !seen {
		t.order = append(t.order, c)
	}
	t.weights[c] += n
}

// Weight returns the accumulated weight of c, zero when the color was never
// added. The table is sparse: colors that never appear have no entry.
func (t *WeightTable) Weight(c RGB) int {
	return t.weights[c]
}

// Len returns the number of distinct colors in the table.
func (t *WeightTable) Len() int {
	return len(t.order)
}

// Colors returns the distinct colors in first-seen order. The slice is
// shared with the table; callers must not modify it.
func (t *WeightTable) Colors() []RGB {
	return t.order
}

// ColorWeights folds a run sequence into a WeightTable, summing run counts
// per color. Row dividers carry no pixels and are skipped.
func ColorWeights(runs []Run) *WeightTable {
	table := NewWeightTable()
	for _, r := range runs {
		if r.IsDivider() {
			continue
		}
		table.Add(r.Color, r.Count)
	}
	return table
}

// BuildPalette derives the palette for a run sequence: every distinct color
// is assigned a prefix-free code over alphabet, weighted so that colors
// covering more pixels receive shorter codes. The codes serve as CSS class
// names in the rendered markup.
func BuildPalette(runs []Run, alphabet string) (map[RGB]string, error) {
	return PrefixCodes(ColorWeights(runs), alphabet)
}
