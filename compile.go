package deromanize

import "sort"

// Build compiles a generic profile tree (as produced by an adapter such
// as profileyaml) into an Engine.
//
// A profile is a map with up to four reserved top-level sections:
//
//	keys            map[string]keySpec   -- what each compiled Key is built from
//	char_sets       map[string]any        -- alias name -> declared token list
//	broken_clusters []any                 -- [a, b, combined] reassembly triples
//	patterns        map[string]any        -- pattern group name -> {lhs: rhs}
//
// Every other top-level entry is a character group: a map from romanized
// token to its candidate original-script renderings.
func Build(profile any) (*Engine, error) {
	root, err := asMap("profile", profile)
	if err != nil {
		return nil, err
	}

	cs := &CharSets{groups: map[string][]string{}}
	if raw, ok := root["char_sets"]; ok {
		m, err := asMap("char_sets", raw)
		if err != nil {
			return nil, err
		}
		cs, err = NewCharSets(m)
		if err != nil {
			return nil, err
		}
	}

	broken := BrokenClusters{}
	if raw, ok := root["broken_clusters"]; ok {
		items, err := asSlice("broken_clusters", raw)
		if err != nil {
			return nil, err
		}
		broken, err = ParseBrokenClusters(items)
		if err != nil {
			return nil, err
		}
	}

	keySpecsRaw, ok := root["keys"]
	if !ok {
		return nil, &BadEntryError{Where: "profile", Got: "missing keys section"}
	}
	keySpecsMap, err := asMap("keys", keySpecsRaw)
	if err != nil {
		return nil, err
	}
	keySpecs := make(map[string]KeySpec, len(keySpecsMap))
	for name, raw := range keySpecsMap {
		m, err := asMap("key "+name, raw)
		if err != nil {
			return nil, err
		}
		spec, err := ParseKeySpec(name, m)
		if err != nil {
			return nil, err
		}
		keySpecs[name] = spec
	}

	patternGroups := map[string][]PatternRule{}
	if raw, ok := root["patterns"]; ok {
		m, err := asMap("patterns", raw)
		if err != nil {
			return nil, err
		}
		for name, groupRaw := range m {
			groupMap, err := asMap("patterns "+name, groupRaw)
			if err != nil {
				return nil, err
			}
			rules, err := ParsePatternGroup(name, groupMap)
			if err != nil {
				return nil, err
			}
			patternGroups[name] = rules
		}
	}

	groups := map[string]CharacterGroup{}
	for name, raw := range root {
		switch name {
		case "keys", "char_sets", "broken_clusters", "patterns":
			continue
		}
		m, err := asMap("group "+name, raw)
		if err != nil {
			return nil, err
		}
		group, err := ParseCharacterGroup(name, m)
		if err != nil {
			return nil, err
		}
		groups[name] = group
	}

	allTokens := CharacterGroup{}
	for _, name := range sortedGroupNames(groups) {
		allTokens = allTokens.Merge(groups[name])
	}

	order, err := topoSortKeys(keySpecs)
	if err != nil {
		return nil, err
	}

	mergedGroups := make(map[string]CharacterGroup, len(keySpecs))
	compiled := make(map[string]*Key, len(keySpecs))
	for _, name := range order {
		spec := keySpecs[name]

		var merged CharacterGroup
		if spec.Base != "" {
			base, ok := mergedGroups[spec.Base]
			if !ok {
				return nil, &UnknownGroupError{Group: spec.Base}
			}
			merged = CharacterGroup{}.Merge(base)
		} else {
			merged = CharacterGroup{}
		}

		for _, groupName := range spec.Groups {
			g, ok := groups[groupName]
			if !ok {
				return nil, &UnknownGroupError{Group: groupName}
			}
			merged = merged.Merge(g)
		}

		for _, patternName := range spec.Patterns {
			rules, ok := patternGroups[patternName]
			if !ok {
				return nil, &UnknownGroupError{Group: patternName}
			}
			for _, rule := range rules {
				expanded, err := ExpandPattern(cs, allTokens, rule)
				if err != nil {
					return nil, err
				}
				tracer().Infof("key=%s pattern=%s rule=%q expanded to %d tokens",
					name, patternName, rule.LHS, len(expanded))
				merged = merged.Merge(expanded)
			}
		}

		for token, rl := range merged {
			rl.Broken = rl.Broken.Merge(broken)
			merged[token] = rl
		}

		mergedGroups[name] = merged
		key, err := NewKey(merged, spec.Suffix)
		if err != nil {
			return nil, err
		}
		compiled[name] = key
	}

	return &Engine{Keys: compiled}, nil
}

func sortedGroupNames(groups map[string]CharacterGroup) []string {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// topoSortKeys orders key names so that every key's base (if any) comes
// before it, failing with KeyCycleError if the base/parent graph has a
// cycle.
func topoSortKeys(specs map[string]KeySpec) ([]string, error) {
	const (
		unvisited = 0
		visiting  = 1
		visited   = 2
	)
	state := make(map[string]int, len(specs))
	order := make([]string, 0, len(specs))

	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	var visit func(name string, path []string) error
	visit = func(name string, path []string) error {
		switch state[name] {
		case visited:
			return nil
		case visiting:
			return &KeyCycleError{Cycle: append(append([]string{}, path...), name)}
		}
		spec, ok := specs[name]
		if !ok {
			return &UnknownGroupError{Group: name}
		}
		state[name] = visiting
		if spec.Base != "" {
			if err := visit(spec.Base, append(path, name)); err != nil {
				return err
			}
		}
		state[name] = visited
		order = append(order, name)
		return nil
	}

	for _, name := range names {
		if err := visit(name, nil); err != nil {
			return nil, err
		}
	}
	return order, nil
}
