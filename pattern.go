package deromanize

import "strings"

// PatternTemplate is one weighted right-hand-side template of a pattern
// rule. Template text may contain \N backreferences (1-based) to the
// rule's left-hand-side captures, interleaved with literal original-script
// text.
type PatternTemplate struct {
	Weight   int
	Template string
}

// PatternRule is one entry of a profile's patterns group: a left-hand
// side built from literal characters and char_sets aliases, and a list of
// right-hand-side templates describing how to render each concrete match.
type PatternRule struct {
	LHS string
	RHS []PatternTemplate
}

// ParsePatternRHS parses a generic profile node (the value half of a
// patterns group entry) into a list of PatternTemplates. It accepts a bare
// string, a sequence of strings weighted by position, or a sequence of
// [weight, template] pairs; unlike ParseCharacterGroup it does not accept
// a single bare [weight, template] pair.
func ParsePatternRHS(where string, raw any) ([]PatternTemplate, error) {
	switch v := raw.(type) {
	case string:
		return []PatternTemplate{{Weight: 0, Template: v}}, nil
	case []any:
		templates := make([]PatternTemplate, 0, len(v))
		for i, item := range v {
			switch entry := item.(type) {
			case string:
				templates = append(templates, PatternTemplate{Weight: i, Template: entry})
			case []any:
				if len(entry) != 2 {
					return nil, &BadEntryError{Where: where, Got: entry}
				}
				weight, err := asInt(where, entry[0])
				if err != nil {
					return nil, err
				}
				tmpl, err := asString(where, entry[1])
				if err != nil {
					return nil, err
				}
				templates = append(templates, PatternTemplate{Weight: weight, Template: tmpl})
			default:
				return nil, &BadEntryError{Where: where, Got: item}
			}
		}
		return templates, nil
	default:
		return nil, &BadEntryError{Where: where, Got: raw}
	}
}

// ParsePatternGroup parses one entry of a profile's top-level "patterns"
// section: a map from LHS pattern text to its RHS templates.
func ParsePatternGroup(name string, raw map[string]any) ([]PatternRule, error) {
	rules := make([]PatternRule, 0, len(raw))
	for lhs, rhsRaw := range raw {
		where := "patterns " + name + " rule " + lhs
		rhs, err := ParsePatternRHS(where, rhsRaw)
		if err != nil {
			return nil, err
		}
		rules = append(rules, PatternRule{LHS: lhs, RHS: rhs})
	}
	return rules, nil
}

// lhsSegment is one piece of a scanned pattern left-hand side: either a
// literal run of characters, or a char_sets alias capture.
type lhsSegment struct {
	isCapture bool
	alias     string
	literal   string
}

// scanLHS scans rule text left to right, greedily matching the longest
// char_sets alias at each position (never letting two matches overlap)
// and treating everything else as literal text.
func scanLHS(cs *CharSets, lhs string) []lhsSegment {
	runes := []rune(lhs)
	var segs []lhsSegment
	i := 0
	for i < len(runes) {
		if alias, length, ok := cs.FindAliasAt(runes, i); ok {
			segs = append(segs, lhsSegment{isCapture: true, alias: alias})
			i += length
			continue
		}
		segs = append(segs, lhsSegment{literal: string(runes[i])})
		i++
	}
	return segs
}

// capturedToken is one concrete token chosen for a capture during
// expansion, along with the ReplacementList it contributes.
type capturedToken struct {
	token string
	rl    ReplacementList
}

// ExpandPattern expands rule against the alias declarations in cs. tokens
// is the union of every profile group, used to look up the ReplacementList
// each alias's declared tokens contribute (a char_sets alias just declares
// which romanized tokens belong to the class; the candidates for those
// tokens come from whichever group actually defines them).
//
// It cross-produces every capture's declared tokens, substitutes the
// chosen tokens into the LHS to build a concrete romanized key, and
// substitutes their ReplacementLists into each RHS template's \N
// backreferences to build that key's candidates.
func ExpandPattern(cs *CharSets, tokens CharacterGroup, rule PatternRule) (CharacterGroup, error) {
	segs := scanLHS(cs, rule.LHS)

	var captureAliases []string
	for _, seg := range segs {
		if seg.isCapture {
			captureAliases = append(captureAliases, seg.alias)
		}
	}

	perCapture := make([][]capturedToken, len(captureAliases))
	for idx, alias := range captureAliases {
		declared, err := cs.Tokens(alias)
		if err != nil {
			return nil, err
		}
		list := make([]capturedToken, 0, len(declared))
		for _, tok := range declared {
			rl, ok := tokens[tok]
			if !ok {
				return nil, &NoSuchTokenError{Token: tok}
			}
			list = append(list, capturedToken{token: tok, rl: rl})
		}
		perCapture[idx] = list
	}

	result := CharacterGroup{}
	for _, combo := range cartesianCapturedTokens(perCapture) {
		var key strings.Builder
		capIdx := 0
		for _, seg := range segs {
			if seg.isCapture {
				key.WriteString(combo[capIdx].token)
				capIdx++
			} else {
				key.WriteString(seg.literal)
			}
		}
		keyToken := key.String()

		var templateResults []ReplacementList
		for _, tmpl := range rule.RHS {
			rl, err := expandTemplate(tmpl, keyToken, combo)
			if err != nil {
				return nil, err
			}
			templateResults = append(templateResults, rl)
		}
		merged := ReplacementList{KeyParts: []string{keyToken}}
		for _, tr := range templateResults {
			merged.Candidates = append(merged.Candidates, tr.Candidates...)
			merged.Broken = merged.Broken.Merge(tr.Broken)
		}
		result = result.Merge(CharacterGroup{keyToken: merged})
	}
	return result, nil
}

// cartesianCapturedTokens enumerates every combination of one entry per
// capture, in lexicographic product order (first capture varies slowest).
func cartesianCapturedTokens(perCapture [][]capturedToken) [][]capturedToken {
	if len(perCapture) == 0 {
		return [][]capturedToken{{}}
	}
	combos := [][]capturedToken{{}}
	for _, options := range perCapture {
		next := make([][]capturedToken, 0, len(combos)*len(options))
		for _, combo := range combos {
			for _, opt := range options {
				extended := make([]capturedToken, len(combo)+1)
				copy(extended, combo)
				extended[len(combo)] = opt
				next = append(next, extended)
			}
		}
		combos = next
	}
	return combos
}

// templateSegment is one piece of a scanned RHS template: either a
// backreference to a 1-based capture index, or literal original-script
// text.
type templateSegment struct {
	isRef bool
	ref   int
	text  string
}

func scanTemplate(template string) []templateSegment {
	runes := []rune(template)
	var segs []templateSegment
	var literal []rune
	flush := func() {
		if len(literal) > 0 {
			segs = append(segs, templateSegment{text: string(literal)})
			literal = nil
		}
	}
	i := 0
	for i < len(runes) {
		if runes[i] == '\\' && i+1 < len(runes) && runes[i+1] >= '0' && runes[i+1] <= '9' {
			flush()
			j := i + 1
			for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
				j++
			}
			n := 0
			for _, d := range runes[i+1 : j] {
				n = n*10 + int(d-'0')
			}
			segs = append(segs, templateSegment{isRef: true, ref: n})
			i = j
			continue
		}
		literal = append(literal, runes[i])
		i++
	}
	flush()
	return segs
}

// expandTemplate builds the ReplacementList one RHS template contributes
// for a single concrete combo of captured tokens, then overrides its key
// to keyToken (the whole LHS match) and folds in the template's own
// weight.
func expandTemplate(tmpl PatternTemplate, keyToken string, combo []capturedToken) (ReplacementList, error) {
	segs := scanTemplate(tmpl.Template)
	if len(segs) == 0 {
		return ReplacementList{KeyParts: []string{keyToken}, Candidates: []Replacement{{Weight: tmpl.Weight}}}, nil
	}

	lists := make([]ReplacementList, len(segs))
	for i, seg := range segs {
		if seg.isRef {
			if seg.ref < 1 || seg.ref > len(combo) {
				return ReplacementList{}, &BadEntryError{Where: "pattern template", Got: tmpl.Template}
			}
			lists[i] = combo[seg.ref-1].rl
		} else {
			lists[i] = NewReplacementList("", []Replacement{
				{Weight: 0, Value: seg.text, KeyValue: []KeyValue{{Romanized: "", Original: seg.text}}},
			})
		}
	}

	folded, err := AddReplacementLists(lists)
	if err != nil {
		return ReplacementList{}, err
	}
	folded = folded.AddWeight(tmpl.Weight)
	folded.KeyParts = []string{keyToken}
	return folded, nil
}
