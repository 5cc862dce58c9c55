package deromanize

// StatReplacement is the probabilistic counterpart of Replacement: instead
// of an ordinal weight it carries a probability in [0, 1], and Add
// multiplies probabilities instead of summing weights.
//
// Grounded on the StatRep variant of Replacement in the original
// deromanize key generator, which overrides __add__ to multiply rather
// than add.
type StatReplacement struct {
	Prob     float64
	Value    string
	KeyValue []KeyValue
}

// Add combines two StatReplacements: probabilities multiply, values and
// provenance concatenate exactly as Replacement.Add does.
func (r StatReplacement) Add(other StatReplacement) StatReplacement {
	kv := make([]KeyValue, 0, len(r.KeyValue)+len(other.KeyValue))
	kv = append(kv, r.KeyValue...)
	kv = append(kv, other.KeyValue...)
	return StatReplacement{
		Prob:     r.Prob * other.Prob,
		Value:    r.Value + other.Value,
		KeyValue: kv,
	}
}

// StatReplacementList is the probabilistic counterpart of ReplacementList,
// produced by ReplacementList.MakeStat. Add is the same cartesian product
// as ReplacementList.Add, combining candidates with StatReplacement.Add.
type StatReplacementList struct {
	KeyParts   []string
	Candidates []StatReplacement
	Broken     BrokenClusters
}

// Key returns the romanized string this list was derived from.
func (l StatReplacementList) Key() string {
	return joinParts(l.Broken.Reassemble(l.KeyParts))
}

// Add combines two StatReplacementLists: KeyParts concatenate, Broken
// tables merge, and Candidates become the cartesian product of l's
// candidates against other's.
func (l StatReplacementList) Add(other StatReplacementList) StatReplacementList {
	parts := make([]string, 0, len(l.KeyParts)+len(other.KeyParts))
	parts = append(parts, l.KeyParts...)
	parts = append(parts, other.KeyParts...)

	candidates := make([]StatReplacement, 0, len(l.Candidates)*len(other.Candidates))
	for _, a := range l.Candidates {
		for _, b := range other.Candidates {
			candidates = append(candidates, a.Add(b))
		}
	}

	return StatReplacementList{
		KeyParts:   parts,
		Candidates: candidates,
		Broken:     l.Broken.Merge(other.Broken),
	}
}

func joinParts(parts []string) string {
	out := ""
	for _, p := range parts {
		out += p
	}
	return out
}
