package deromanize

import (
	"github.com/derekparker/trie"
)

// CharSets resolves the alias names declared under a profile's char_sets
// section (for example "C" for consonants, "V" for vowels) against the
// literal text of a pattern rule's left-hand side. Aliases are looked up
// by longest match so that, for instance, a two-character alias always
// wins over a one-character alias that happens to be its prefix.
//
// The alias trie is the dynamic, build-time counterpart to the frozen
// dat trie used by Key: it only needs Add/Find, never a frozen lookup
// table, since char_sets are resolved once at compile time, not on every
// decode call.
type CharSets struct {
	aliasTrie   *trie.Trie
	maxAliasLen int
	groups      map[string][]string
}

// NewCharSets builds a CharSets from a generic profile node: a map from
// alias name to a sequence of token strings.
func NewCharSets(raw map[string]any) (*CharSets, error) {
	t := trie.New()
	groups := make(map[string][]string, len(raw))
	maxLen := 0
	for alias, v := range raw {
		tokens, err := parseAliasTokens(alias, v)
		if err != nil {
			return nil, err
		}
		groups[alias] = tokens
		t.Add(alias, alias)
		if l := len([]rune(alias)); l > maxLen {
			maxLen = l
		}
	}
	return &CharSets{aliasTrie: t, maxAliasLen: maxLen, groups: groups}, nil
}

func parseAliasTokens(alias string, v any) ([]string, error) {
	where := "char_sets alias " + alias
	items, err := asSlice(where, v)
	if err != nil {
		return nil, err
	}
	tokens := make([]string, len(items))
	for i, item := range items {
		s, err := asString(where, item)
		if err != nil {
			return nil, err
		}
		tokens[i] = s
	}
	return tokens, nil
}

// Tokens returns the declared token set for an alias.
func (cs *CharSets) Tokens(alias string) ([]string, error) {
	tokens, ok := cs.groups[alias]
	if !ok {
		return nil, &UnknownGroupError{Group: alias}
	}
	return tokens, nil
}

// FindAliasAt finds the longest alias name that matches runes starting at
// pos. It returns the matched alias and its length in runes, or ok=false
// if no declared alias matches at pos.
func (cs *CharSets) FindAliasAt(runes []rune, pos int) (alias string, length int, ok bool) {
	maxL := cs.maxAliasLen
	if pos+maxL > len(runes) {
		maxL = len(runes) - pos
	}
	for l := maxL; l >= 1; l-- {
		candidate := string(runes[pos : pos+l])
		if _, found := cs.aliasTrie.Find(candidate); found {
			return candidate, l, true
		}
	}
	return "", 0, false
}
