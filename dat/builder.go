package dat

import (
	"fmt"
	"sort"
)

type buildNode struct {
	state    uint32
	terminal bool
	children map[uint16]*buildNode
}

// Builder collects words and compiles them into a DAT.
// A Builder must not be used after Freeze.
type Builder struct {
	root  *buildNode
	dat   *DAT
	sigma uint16
	words int
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		root: &buildNode{children: make(map[uint16]*buildNode)},
		dat:  &DAT{Root: 1},
	}
}

// Add inserts a word. Empty words are ignored; code points outside the BMP
// are rejected.
func (b *Builder) Add(word string) error {
	if b.root == nil {
		return fmt.Errorf("dat: builder already frozen")
	}
	if word == "" {
		return nil
	}
	n := b.root
	for _, r := range word {
		if r > 0xFFFF {
			return fmt.Errorf("dat: code point %U of %q outside BMP", r, word)
		}
		dense := b.encode(uint16(r))
		if dense == 0 {
			return fmt.Errorf("dat: alphabet overflow at %q", word)
		}
		child := n.children[dense]
		if child == nil {
			child = &buildNode{children: make(map[uint16]*buildNode)}
			n.children[dense] = child
		}
		n = child
	}
	if !n.terminal {
		n.terminal = true
		b.words++
	}
	return nil
}

func (b *Builder) encode(r uint16) uint16 {
	if dense := b.dat.Alphabet.Dense(r); dense != 0 {
		return dense
	}
	if b.sigma == ^uint16(0) {
		return 0
	}
	b.sigma++
	b.dat.Alphabet.set(r, b.sigma)
	return b.sigma
}

// Freeze lays out the collected words as a double array, breadth first.
func (b *Builder) Freeze() *DAT {
	d := b.dat
	if b.root == nil {
		return d
	}
	d.Sigma = b.sigma
	d.words = b.words
	ensureIndex(d, int(d.Root))
	b.root.state = d.Root
	queue := []*buildNode{b.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		d.Terminal[n.state] = n.terminal
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := findBase(d.Check, labels)
		ensureIndex(d, base+int(labels[len(labels)-1]))
		d.Base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(label)
			child := n.children[label]
			child.state = uint32(t)
			d.Check[t] = int32(n.state)
			queue = append(queue, child)
		}
	}
	b.root = nil
	return d
}

func sortedLabels(children map[uint16]*buildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i] < labels[j]
	})
	return labels
}

// findBase returns the smallest base for which all label slots are free.
// Slot Root is reserved.
func findBase(check []int32, labels []uint16) int {
	for base := 1; ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label)
			if t == 1 || (t < len(check) && check[t] != 0) {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func ensureIndex(d *DAT, idx int) {
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
	d.Terminal = append(d.Terminal, make([]bool, grow)...)
}
