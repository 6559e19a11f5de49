package tableimage

import (
	"fmt"
	"math/rand"
	"strings"
)

// tableStyle keeps cells flush against each other so the table reads as a
// contiguous image: fixed layout, no border, no spacing.
const tableStyle = "table-layout:fixed;border:0;border-spacing:0;"

// identLength is the length of generated table identifiers.
const identLength = 16

// randomIdent returns a random letters-only identifier used to scope a
// table's stylesheet rules to that one table. It is the default identifier
// source of a Converter; math/rand's global source is safe for concurrent
// use.
func randomIdent() string {
	var b strings.Builder
	b.Grow(identLength)
	for i := 0; i < identLength; i++ {
		b.WriteByte(DefaultAlphabet[rand.Intn(len(DefaultAlphabet))])
	}
	return b.String()
}

// RenderInline renders a run sequence as an HTML table with every style
// inlined in the markup: each cell carries its background color and width in
// a style attribute, and each row carries its line height. The result needs
// no stylesheet but repeats the full color literal for every run, so it is
// far larger than CSS mode for images with recurring colors. pixelSize is
// the edge length of one image pixel in output px.
func RenderInline(runs []Run, pixelSize int) string {
	var html strings.Builder
	fmt.Fprintf(&html, "<table style=\"%s\">\n", tableStyle)
	for _, row := range SplitRows(runs) {
		fmt.Fprintf(&html, "<tr style=\"line-height:%dpx;\">\n", pixelSize)
		for _, r := range row {
			fmt.Fprintf(&html, "<td style=\"background:%s;width:%dpx;\"", r.Color.Hex(), r.Count*pixelSize)
			if r.Count > 1 {
				fmt.Fprintf(&html, " colspan=\"%d\"", r.Count)
			}
			html.WriteString("></td>\n")
		}
		html.WriteString("</tr>\n")
	}
	html.WriteString("</table>\n")
	return html.String()
}

// RenderCSS renders a run sequence as an HTML table plus a stylesheet. Each
// cell references its color through a class name from codes, and the
// stylesheet scopes every rule to the table's unique identifier so the pair
// can be embedded in an existing page without touching other tables. The
// stylesheet carries one line-height rule for the table's rows followed by
// one background rule per distinct color, in order of first appearance in
// the run sequence.
func RenderCSS(runs []Run, codes map[RGB]string, pixelSize int, tableID string) (html, css string) {
	var h strings.Builder
	fmt.Fprintf(&h, "<table style=\"%s\" id=\"%s\">\n", tableStyle, tableID)
	for _, row := range SplitRows(runs) {
		h.WriteString("<tr>\n")
		for _, r := range row {
			fmt.Fprintf(&h, "<td style=\"width:%dpx;\" class=\"%s\"", r.Count*pixelSize, codes[r.Color])
			if r.Count > 1 {
				fmt.Fprintf(&h, " colspan=\"%d\"", r.Count)
			}
			h.WriteString("></td>\n")
		}
		h.WriteString("</tr>\n")
	}
	h.WriteString("</table>\n")

	var c strings.Builder
	fmt.Fprintf(&c, "table#%s tr{line-height:%dpx;}\n", tableID, pixelSize)
	seen := make(map[RGB]bool, len(codes))
	for _, r := range runs {
		if r.IsDivider() || seen[r.Color] {
			continue
		}
		seen[r.Color] = true
		fmt.Fprintf(&c, "table#%s td.%s{background:%s;}\n", tableID, codes[r.Color], r.Color.Hex())
	}
	return h.String(), c.String()
}
