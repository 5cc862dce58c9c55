package deromanize

import (
	"sort"
	"strings"
)

// ReplacementList is the weighted, ordered set of candidate original-script
// renderings produced for one romanized token (or, after Add, for a run of
// concatenated tokens).
//
// KeyParts holds the romanized fragments this list's key is made of, in
// order; Key reassembles them (via Broken, if set) into the natural
// romanized string a reader would recognize.
type ReplacementList struct {
	KeyParts   []string
	Candidates []Replacement
	Broken     BrokenClusters
}

// NewReplacementList builds a ReplacementList for a single romanized token
// with the given candidates.
func NewReplacementList(key string, candidates []Replacement) ReplacementList {
	return ReplacementList{KeyParts: []string{key}, Candidates: candidates}
}

// emptyReplacementList is the identity element of Add: key "" and a single
// zero-weight, empty-value candidate with no provenance.
var emptyReplacementList = ReplacementList{
	KeyParts:   nil,
	Candidates: []Replacement{emptyReplacement},
}

// Key returns the romanized string this list was derived from.
func (l ReplacementList) Key() string {
	return strings.Join(l.Broken.Reassemble(l.KeyParts), "")
}

// Add combines two ReplacementLists: KeyParts concatenate, Broken tables
// merge, and Candidates become the cartesian product of l's candidates
// against other's, in lexicographic product order (l outer, other inner),
// each pair combined with Replacement.Add.
func (l ReplacementList) Add(other ReplacementList) ReplacementList {
	parts := make([]string, 0, len(l.KeyParts)+len(other.KeyParts))
	parts = append(parts, l.KeyParts...)
	parts = append(parts, other.KeyParts...)

	candidates := make([]Replacement, 0, len(l.Candidates)*len(other.Candidates))
	for _, a := range l.Candidates {
		for _, b := range other.Candidates {
			candidates = append(candidates, a.Add(b))
		}
	}

	return ReplacementList{
		KeyParts:   parts,
		Candidates: candidates,
		Broken:     l.Broken.Merge(other.Broken),
	}
}

// Sort stably orders Candidates by ascending weight.
func (l ReplacementList) Sort() {
	sort.SliceStable(l.Candidates, func(i, j int) bool {
		return l.Candidates[i].Weight < l.Candidates[j].Weight
	})
}

// Prune sorts Candidates and removes duplicate values, keeping the
// lowest-weight occurrence of each.
func (l *ReplacementList) Prune() {
	l.Sort()
	seen := make(map[string]bool, len(l.Candidates))
	out := l.Candidates[:0:0]
	for _, c := range l.Candidates {
		if seen[c.Value] {
			continue
		}
		seen[c.Value] = true
		out = append(out, c)
	}
	l.Candidates = out
}

// AddWeight returns a copy of l with w added to every candidate's weight.
func (l ReplacementList) AddWeight(w int) ReplacementList {
	candidates := make([]Replacement, len(l.Candidates))
	for i, c := range l.Candidates {
		c.Weight += w
		candidates[i] = c
	}
	return ReplacementList{KeyParts: l.KeyParts, Candidates: candidates, Broken: l.Broken}
}

// MakeStat converts l's ordinal weights into a StatReplacementList of
// normalized probabilities: candidates with lower weight get higher
// probability. MakeStat fails with EmptyReductionError if l has no
// candidates.
func (l ReplacementList) MakeStat() (StatReplacementList, error) {
	if len(l.Candidates) == 0 {
		return StatReplacementList{}, &EmptyReductionError{}
	}
	maxWeight := l.Candidates[0].Weight
	for _, c := range l.Candidates {
		if c.Weight > maxWeight {
			maxWeight = c.Weight
		}
	}
	m := maxWeight + 1
	scores := make([]int, len(l.Candidates))
	sum := 0
	for i, c := range l.Candidates {
		scores[i] = m - c.Weight
		sum += scores[i]
	}
	stats := make([]StatReplacement, len(l.Candidates))
	for i, c := range l.Candidates {
		prob := 0.0
		if sum > 0 {
			prob = float64(scores[i]) / float64(sum)
		}
		stats[i] = StatReplacement{Prob: prob, Value: c.Value, KeyValue: c.KeyValue}
	}
	return StatReplacementList{KeyParts: l.KeyParts, Candidates: stats, Broken: l.Broken}, nil
}

// AddReplacementLists left-folds Add over lists. It fails with
// EmptyReductionError on an empty input, since Add has no way to invent a
// key-less identity value on its own in that case.
func AddReplacementLists(lists []ReplacementList) (ReplacementList, error) {
	if len(lists) == 0 {
		return ReplacementList{}, &EmptyReductionError{}
	}
	acc := lists[0]
	for _, l := range lists[1:] {
		acc = acc.Add(l)
	}
	return acc, nil
}

// AddReplacements left-folds Replacement.Add over reps, failing with
// EmptyReductionError on an empty input.
func AddReplacements(reps []Replacement) (Replacement, error) {
	if len(reps) == 0 {
		return Replacement{}, &EmptyReductionError{}
	}
	acc := reps[0]
	for _, r := range reps[1:] {
		acc = acc.Add(r)
	}
	return acc, nil
}
