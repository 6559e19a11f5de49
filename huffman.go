package tableimage

import (
	"errors"
	"sort"
)

// ErrAlphabetTooSmall is returned when a code alphabet holds fewer than two
// distinct symbols after duplicate removal. No prefix-free code over such an
// alphabet can tell two keys apart.
var ErrAlphabetTooSmall = errors.New("tableimage: code alphabet needs at least two distinct symbols")

// codeNode is one node of the tree grown during prefix-code construction.
// A node is either a leaf carrying a color or an internal node carrying the
// children merged beneath it; children is nil exactly for leaves. The prefix
// accumulates the node's code symbols as successive merges prepend to it.
type codeNode struct {
	prefix   string
	color    RGB
	children []*codeNode
}

// weightedNode pairs a code tree node with the total pixel weight beneath it
// while it waits in the merge queue.
type weightedNode struct {
	node   *codeNode
	weight int
}

// prependPrefix pushes symbol onto the front of every accumulated prefix in
// the subtree rooted at n. Leaves collect their full root-to-leaf symbol
// path this way, one symbol per merge, outermost merge first.
func prependPrefix(n *codeNode, symbol string) {
	n.prefix = symbol + n.prefix
	for _, child := range n.children {
		prependPrefix(child, symbol)
	}
}

// uniqueSymbols splits alphabet into its symbols with duplicates removed,
// preserving first occurrence.
func uniqueSymbols(alphabet string) []string {
	seen := make(map[rune]bool, len(alphabet))
	symbols := make([]string, 0, len(alphabet))
	for _, r := range alphabet {
		if seen[r] {
			continue
		}
		seen[r] = true
		symbols = append(symbols, string(r))
	}
	return symbols
}

// PrefixCodes assigns every color in weights a non-empty prefix-free code
// over alphabet, minimizing the total weight-times-length cost. The
// construction generalizes Huffman coding to alphabets of arbitrary size:
// each round the pending nodes are sorted by weight in descending order, the
// trailing group of up to len(alphabet) lightest nodes is merged beneath a
// fresh internal node, and each group member has a distinct alphabet symbol
// prepended throughout its subtree, in alphabet order from the heaviest
// member down. Ties keep their prior order, and the queue is seeded in the
// weight table's first-seen order, so the mapping is deterministic.
//
// A single color receives the first alphabet symbol as its code; an empty
// weight table yields an empty mapping. An alphabet with fewer than two
// distinct symbols fails with ErrAlphabetTooSmall before any construction.
func PrefixCodes(weights *WeightTable, alphabet string) (map[RGB]string, error) {
	symbols := uniqueSymbols(alphabet)
	if len(symbols) < 2 {
		return nil, ErrAlphabetTooSmall
	}

	colors := weights.Colors()
	codes := make(map[RGB]string, len(colors))
	switch len(colors) {
	case 0:
		return codes, nil
	case 1:
		codes[colors[0]] = symbols[0]
		return codes, nil
	}

	leaves := make([]*codeNode, len(colors))
	queue := make([]weightedNode, len(colors))
	for i, c := range colors {
		leaves[i] = &codeNode{color: c}
		queue[i] = weightedNode{node: leaves[i], weight: weights.Weight(c)}
	}

	for len(queue) > 1 {
		sort.SliceStable(queue, func(i, j int) bool {
			return queue[i].weight > queue[j].weight
		})

		group := len(symbols)
		if group > len(queue) {
			group = len(queue)
		}
		merged := queue[len(queue)-group:]
		queue = queue[:len(queue)-group]

		parent := &codeNode{children: make([]*codeNode, group)}
		total := 0
		for i, wn := range merged {
			prependPrefix(wn.node, symbols[i])
			parent.children[i] = wn.node
			total += wn.weight
		}
		queue = append(queue, weightedNode{node: parent, weight: total})
	}

	for _, leaf := range leaves {
		codes[leaf.color] = leaf.prefix
	}
	return codes, nil
}
