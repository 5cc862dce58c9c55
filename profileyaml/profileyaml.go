// Package profileyaml adapts YAML documents into the generic profile tree
// that deromanize.Build consumes. It plays the same role for the key
// engine that the tex package plays for a hyphenation dictionary: the
// core engine takes a format-agnostic tree, and a small adapter package
// on the side knows how to produce one from a concrete file format.
package profileyaml

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load decodes a single YAML document from r into a generic profile tree
// (nested map[string]any / []any / scalar values) suitable for
// deromanize.Build.
func Load(r io.Reader) (any, error) {
	var root any
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&root); err != nil {
		return nil, err
	}
	return root, nil
}

// LoadFile opens path and decodes it as a single profile document.
func LoadFile(path string) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// LoadFiles loads and merges a sequence of profile documents, in order.
// This lets a profile be assembled from a base file plus overlays: later
// files extend earlier ones rather than replacing them outright.
func LoadFiles(paths ...string) (any, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("profileyaml: no files given")
	}
	var merged any
	for i, p := range paths {
		doc, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			merged = doc
			continue
		}
		merged = Merge(merged, doc)
	}
	return merged, nil
}

// Merge combines two generic profile trees. Maps merge key by key,
// recursing into shared keys; sequences sharing a key concatenate rather
// than replace, so that a group or char_sets alias declared in both a and
// b ends up with the union of their entries. Unlike the engine's own
// CharacterGroup.Merge, no weights are shifted: b's string entries take
// their positions after a's, and explicit [weight, value] pairs keep their
// declared weights. Any other clash is resolved in favor of b.
func Merge(a, b any) any {
	am, aIsMap := a.(map[string]any)
	bm, bIsMap := b.(map[string]any)
	if aIsMap && bIsMap {
		out := make(map[string]any, len(am)+len(bm))
		for k, v := range am {
			out[k] = v
		}
		for k, v := range bm {
			if existing, ok := out[k]; ok {
				out[k] = Merge(existing, v)
			} else {
				out[k] = v
			}
		}
		return out
	}

	as, aIsSeq := a.([]any)
	bs, bIsSeq := b.([]any)
	if aIsSeq && bIsSeq {
		out := make([]any, 0, len(as)+len(bs))
		out = append(out, as...)
		out = append(out, bs...)
		return out
	}

	return b
}
