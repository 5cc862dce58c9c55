package dat

import "sort"

// buildNode is a node in the mutable trie used while a DAT is being built.
type buildNode struct {
	state    uint32
	children map[uint16]*buildNode
	arenaOff uint32 // 1-based arena index; 0 means not terminal
}

// Builder constructs a DAT incrementally, then compiles it into the
// Base/Check double array with Freeze.
type Builder struct {
	frozen      bool
	root        *buildNode
	runeToDense map[rune]uint16
	nextDenseID uint16
	compiled    *DAT
}

// NewBuilder creates an empty, mutable trie builder.
func NewBuilder() *Builder {
	b := &Builder{
		root:        &buildNode{children: make(map[uint16]*buildNode)},
		runeToDense: make(map[rune]uint16),
		compiled: &DAT{
			Root: 1,
		},
	}
	return b
}

// EncodeKey maps a string's runes to dense alphabet IDs, assigning new
// dense IDs for runes not yet seen. It returns (nil, false) if a rune
// falls outside the Basic Multilingual Plane, which this trie cannot
// index.
func (b *Builder) EncodeKey(s string) ([]uint16, bool) {
	key := make([]uint16, 0, len(s))
	if b.frozen {
		for _, r := range s {
			if r > 0xFFFF {
				return nil, false
			}
			dense := b.compiled.Dense(r)
			if dense == 0 {
				return nil, false
			}
			key = append(key, dense)
		}
		return key, true
	}
	for _, r := range s {
		if r > 0xFFFF {
			return nil, false
		}
		dense, ok := b.runeToDense[r]
		if !ok {
			if b.nextDenseID == ^uint16(0) {
				return nil, false
			}
			b.nextDenseID++
			dense = b.nextDenseID
			b.runeToDense[r] = dense
			b.compiled.MapPaged.Set(uint16(r), dense)
		}
		key = append(key, dense)
	}
	return key, true
}

// Insert records that key terminates at a node holding arenaIndex (a
// 0-based index into the caller's payload arena). Insert must be called
// before Freeze.
func (b *Builder) Insert(key []uint16, arenaIndex int) {
	if b.frozen || len(key) == 0 {
		return
	}
	n := b.root
	for _, c := range key {
		child := n.children[c]
		if child == nil {
			child = &buildNode{children: make(map[uint16]*buildNode)}
			n.children[c] = child
		}
		n = child
	}
	n.arenaOff = uint32(arenaIndex) + 1
}

// Freeze compiles the mutable trie into the Base/Check double array and
// returns the resulting DAT. The builder must not be used after Freeze.
func (b *Builder) Freeze() *DAT {
	if b.frozen {
		return b.compiled
	}
	b.compiled.Sigma = b.nextDenseID
	b.compiled.Base = make([]int32, int(b.compiled.Root)+1)
	b.compiled.Check = make([]int32, int(b.compiled.Root)+1)
	b.compiled.ArenaOff = make([]uint32, int(b.compiled.Root)+1)
	b.root.state = b.compiled.Root
	queue := []*buildNode{b.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		ensureArena(b.compiled, int(n.state))
		b.compiled.ArenaOff[n.state] = n.arenaOff
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := findBase(b.compiled.Check, labels)
		ensureIndex(b.compiled, base+int(labels[len(labels)-1]))
		b.compiled.Base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(label)
			ensureIndex(b.compiled, t)
			child := n.children[label]
			child.state = uint32(t)
			b.compiled.Check[t] = int32(n.state)
			queue = append(queue, child)
		}
	}
	b.root = nil
	b.runeToDense = nil
	b.frozen = true
	return b.compiled
}

func sortedLabels(children map[uint16]*buildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels
}

func findBase(check []int32, labels []uint16) int {
	for base := 1; ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label)
			if t < len(check) && check[t] != 0 {
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
	if len(d.ArenaOff) > 0 {
		d.ArenaOff = append(d.ArenaOff, make([]uint32, grow)...)
	}
}

func ensureArena(d *DAT, idx int) {
	ensureIndex(d, idx)
}
