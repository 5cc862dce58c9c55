package deromanize

import "strings"

// KeyValue is one (romanized_segment, original_segment) pair in a
// Replacement's provenance trace.
type KeyValue struct {
	Romanized string
	Original  string
}

// Replacement is one candidate original-script rendering of a romanized
// segment, together with its ordinal weight and the provenance trail of
// (romanized, original) segment pairs that produced it.
//
// Replacement values are immutable: Add always returns a fresh value.
type Replacement struct {
	Weight   int
	Value    string
	KeyValue []KeyValue
}

// NewReplacement builds a single-segment Replacement: romanized maps to
// value at the given weight.
func NewReplacement(weight int, romanized, value string) Replacement {
	return Replacement{
		Weight:   weight,
		Value:    value,
		KeyValue: []KeyValue{{Romanized: romanized, Original: value}},
	}
}

// emptyReplacement is the identity element of Add: zero weight, empty
// value, and an empty provenance trail (so adding it never touches the
// other operand's provenance).
var emptyReplacement = Replacement{}

// Add combines two Replacements: weights add, values concatenate, and
// provenance trails concatenate. Add is associative but not commutative.
func (r Replacement) Add(other Replacement) Replacement {
	kv := make([]KeyValue, 0, len(r.KeyValue)+len(other.KeyValue))
	kv = append(kv, r.KeyValue...)
	kv = append(kv, other.KeyValue...)
	return Replacement{
		Weight:   r.Weight + other.Weight,
		Value:    r.Value + other.Value,
		KeyValue: kv,
	}
}

// Key returns the romanized string this Replacement was derived from: the
// concatenation of the first components of KeyValue.
func (r Replacement) Key() string {
	if len(r.KeyValue) == 1 {
		return r.KeyValue[0].Romanized
	}
	var b strings.Builder
	for _, kv := range r.KeyValue {
		b.WriteString(kv.Romanized)
	}
	return b.String()
}

// Copy returns a Replacement with its own backing KeyValue slice, so that
// appending to the copy's provenance can never alias the original.
func (r Replacement) Copy() Replacement {
	kv := make([]KeyValue, len(r.KeyValue))
	copy(kv, r.KeyValue)
	return Replacement{Weight: r.Weight, Value: r.Value, KeyValue: kv}
}
