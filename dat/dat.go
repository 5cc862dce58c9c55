// Package dat implements a frozen double-array trie over dense rune IDs.
//
// It is adapted from a double-array pattern trie originally built for
// Liang-style hyphenation lookups. The lookup machinery (Base/Check
// transition, paged BMP rune mapping) is unchanged; the payload model is
// not: instead of a packed digit vector per terminal node, each terminal
// stores a 1-based offset into a caller-owned arena, so the trie can index
// payloads of any size or shape.
package dat

// DAT is a frozen double-array trie.
//   - Nodes/states are indices into Base/Check (0 is unused; Root is typically 1).
//   - Transition: t := Base[s] + c; valid if Check[t] == s; next state is t.
//   - c is a dense alphabet ID in [1..Sigma]. c==0 means "not in alphabet".
//
// Terminals:
//   - If ArenaOff[s] != 0, node s is terminal and ArenaOff[s]-1 is the index
//     of its payload in a caller-owned arena slice.
//
// Mapping:
//   - MapPaged is a BMP mapping from rune (0..65535) to dense alphabet ID.
//     0 means "not part of the trie's alphabet".
type DAT struct {
	// Root state index (commonly 1).
	Root uint32

	// Sigma is the size of the dense alphabet (maximum dense ID).
	Sigma uint16

	// Base and Check are the classic double-array.
	Base  []int32 // len == N
	Check []int32 // len == N

	// ArenaOff holds 1-based arena indices for terminal nodes.
	// 0 means "not terminal".
	ArenaOff []uint32 // len == N

	// MapPaged maps BMP runes to dense IDs [0..Sigma].
	MapPaged PagedMapBMP
}

// NStates returns the number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Transition returns (nextState, ok). dense must be in [1..Sigma].
func (d *DAT) Transition(state uint32, dense uint16) (uint32, bool) {
	if int(state) >= len(d.Base) || int(state) >= len(d.Check) {
		return 0, false
	}
	t := int32(d.Base[state]) + int32(dense)
	if t <= 0 || int(t) >= len(d.Check) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// Dense maps a BMP rune to a dense alphabet ID.
// Returns 0 if the rune is not in the alphabet.
func (d *DAT) Dense(r rune) uint16 {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	return d.MapPaged.Dense(uint16(r))
}

// ArenaIndex returns the 0-based arena index stored at state, and whether
// state is terminal.
func (d *DAT) ArenaIndex(state uint32) (int, bool) {
	if int(state) >= len(d.ArenaOff) {
		return 0, false
	}
	off := d.ArenaOff[state]
	if off == 0 {
		return 0, false
	}
	return int(off - 1), true
}

// Stats reports density metrics for the trie.
type Stats struct {
	UsedSlots  int
	TotalSlots int
	MaxStateID int
}

// FillRatio returns UsedSlots/TotalSlots, or 0 for an empty trie.
func (s Stats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// Stats computes density metrics by scanning Check for occupied slots.
func (d *DAT) Stats() Stats {
	stats := Stats{TotalSlots: d.NStates(), MaxStateID: int(d.Root)}
	if stats.TotalSlots == 0 {
		return stats
	}
	used := 0
	maxID := int(d.Root)
	for i := range d.Check {
		if i == int(d.Root) || d.Check[i] != 0 {
			used++
			if i > maxID {
				maxID = i
			}
		}
	}
	stats.UsedSlots = used
	stats.MaxStateID = maxID
	return stats
}
