package deromanize

// KeySpec is the parsed form of one entry under a profile's top-level
// "keys" section: what a compiled Key is built from.
type KeySpec struct {
	Base     string
	Groups   []string
	Patterns []string
	Suffix   bool
}

// ParseKeySpec parses one "keys" entry. base/parent names the key this
// one inherits its groups and patterns from, if any; groups names
// top-level character groups and patterns names entries of the profile's
// top-level "patterns" section to union in; suffix switches the
// resulting Key to longest-suffix matching.
func ParseKeySpec(name string, raw map[string]any) (KeySpec, error) {
	where := "key " + name
	spec := KeySpec{}

	if base, ok := raw["base"]; ok {
		s, err := asString(where+" base", base)
		if err != nil {
			return KeySpec{}, err
		}
		spec.Base = s
	} else if parent, ok := raw["parent"]; ok {
		s, err := asString(where+" parent", parent)
		if err != nil {
			return KeySpec{}, err
		}
		spec.Base = s
	}

	if groups, ok := raw["groups"]; ok {
		names, err := parseNameList(where+" groups", groups)
		if err != nil {
			return KeySpec{}, err
		}
		spec.Groups = names
	}

	if patterns, ok := raw["patterns"]; ok {
		names, err := parseNameList(where+" patterns", patterns)
		if err != nil {
			return KeySpec{}, err
		}
		spec.Patterns = names
	}

	if suffix, ok := raw["suffix"]; ok {
		b, ok := suffix.(bool)
		if !ok {
			return KeySpec{}, &BadEntryError{Where: where + " suffix", Got: suffix}
		}
		spec.Suffix = b
	} else if mode, ok := raw["mode"]; ok {
		s, err := asString(where+" mode", mode)
		if err != nil {
			return KeySpec{}, err
		}
		spec.Suffix = s == "suffix"
	}

	return spec, nil
}

func parseNameList(where string, raw any) ([]string, error) {
	items, err := asSlice(where, raw)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(items))
	for i, item := range items {
		s, err := asString(where, item)
		if err != nil {
			return nil, err
		}
		names[i] = s
	}
	return names, nil
}

// ParseBrokenClusters parses a profile's top-level "broken_clusters"
// section: a sequence of [first, second, combined] triples describing
// which adjacent pairs of romanized key parts should be displayed as one
// combined cluster.
func ParseBrokenClusters(raw []any) (BrokenClusters, error) {
	bc := make(BrokenClusters, len(raw))
	for _, item := range raw {
		triple, err := asSlice("broken_clusters entry", item)
		if err != nil {
			return nil, err
		}
		if len(triple) != 3 {
			return nil, &BadEntryError{Where: "broken_clusters entry", Got: item}
		}
		a, err := asString("broken_clusters entry", triple[0])
		if err != nil {
			return nil, err
		}
		b, err := asString("broken_clusters entry", triple[1])
		if err != nil {
			return nil, err
		}
		combined, err := asString("broken_clusters entry", triple[2])
		if err != nil {
			return nil, err
		}
		bc[[2]string{a, b}] = combined
	}
	return bc, nil
}
