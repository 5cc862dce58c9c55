package deromanize

import "fmt"

// CharacterGroup maps a romanized token to the ReplacementList of
// original-script candidates it may stand for. It is the compiled form of
// one profile group entry (a top-level profile key, or one of the groups
// named by a key-spec's `groups` list).
type CharacterGroup map[string]ReplacementList

// ParseCharacterGroup builds a CharacterGroup from a generic profile node
// (a map from romanized token to a variant spec). A variant spec is one
// of:
//   - a bare string: a single candidate at weight 0.
//   - a two-element [weight, value] sequence with an integer first
//     element: a single candidate at that weight.
//   - a sequence of strings: candidates at weights 0, 1, 2, ... in list
//     order.
//   - a sequence of two-element [weight, value] sequences: candidates at
//     explicit weights.
func ParseCharacterGroup(name string, raw map[string]any) (CharacterGroup, error) {
	group := make(CharacterGroup, len(raw))
	for token, variant := range raw {
		where := fmt.Sprintf("group %q token %q", name, token)
		rl, err := parseVariant(where, token, variant)
		if err != nil {
			return nil, err
		}
		group[token] = rl
	}
	return group, nil
}

func parseVariant(where, token string, variant any) (ReplacementList, error) {
	switch v := variant.(type) {
	case string:
		return NewReplacementList(token, []Replacement{NewReplacement(0, token, v)}), nil
	case []any:
		if len(v) == 2 {
			if weight, err := asInt(where, v[0]); err == nil {
				value, err := asString(where, v[1])
				if err != nil {
					return ReplacementList{}, err
				}
				return NewReplacementList(token, []Replacement{NewReplacement(weight, token, value)}), nil
			}
		}
		candidates := make([]Replacement, 0, len(v))
		for i, item := range v {
			switch entry := item.(type) {
			case string:
				candidates = append(candidates, NewReplacement(i, token, entry))
			case []any:
				if len(entry) != 2 {
					return ReplacementList{}, &BadEntryError{Where: where, Got: entry}
				}
				weight, err := asInt(where, entry[0])
				if err != nil {
					return ReplacementList{}, err
				}
				value, err := asString(where, entry[1])
				if err != nil {
					return ReplacementList{}, err
				}
				candidates = append(candidates, NewReplacement(weight, token, value))
			default:
				return ReplacementList{}, &BadEntryError{Where: where, Got: item}
			}
		}
		return NewReplacementList(token, candidates), nil
	default:
		return ReplacementList{}, &BadEntryError{Where: where, Got: variant}
	}
}

// Merge unions g with other: tokens present in only one side pass through
// unchanged; tokens present in both get other's candidates appended after
// g's, with other's weights shifted up so they sort strictly after g's
// existing candidates for that token.
func (g CharacterGroup) Merge(other CharacterGroup) CharacterGroup {
	merged := make(CharacterGroup, len(g)+len(other))
	for token, rl := range g {
		merged[token] = rl
	}
	for token, rl := range other {
		existing, ok := merged[token]
		if !ok {
			merged[token] = rl
			continue
		}
		offset := maxCandidateWeight(existing.Candidates) + 1
		shifted := make([]Replacement, len(rl.Candidates))
		for i, c := range rl.Candidates {
			c.Weight += offset
			shifted[i] = c
		}
		candidates := make([]Replacement, 0, len(existing.Candidates)+len(shifted))
		candidates = append(candidates, existing.Candidates...)
		candidates = append(candidates, shifted...)
		merged[token] = ReplacementList{
			KeyParts:   existing.KeyParts,
			Candidates: candidates,
			Broken:     existing.Broken.Merge(rl.Broken),
		}
	}
	return merged
}

func maxCandidateWeight(candidates []Replacement) int {
	max := 0
	for i, c := range candidates {
		if i == 0 || c.Weight > max {
			max = c.Weight
		}
	}
	return max
}
