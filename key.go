package deromanize

import (
	"sort"

	"github.com/unroman/keyengine/dat"
)

// Key is a compiled, greedy longest-match tokenizer over one
// CharacterGroup. In prefix mode it matches the longest known token at the
// front of a word; in suffix mode it matches the longest known token at
// the end of a word, by building its trie over reversed tokens and walking
// it over the reversed word.
type Key struct {
	Suffix bool
	Group  CharacterGroup

	frozen bool
	trie   *dat.DAT
	arena  []ReplacementList
}

// NewKey builds and freezes a Key over group. suffix selects longest-suffix
// matching instead of the default longest-prefix matching.
func NewKey(group CharacterGroup, suffix bool) (*Key, error) {
	k := &Key{Suffix: suffix, Group: group}
	if err := k.freeze(); err != nil {
		return nil, err
	}
	return k, nil
}

func (k *Key) freeze() error {
	if k.frozen {
		return nil
	}
	b := dat.NewBuilder()
	tokens := make([]string, 0, len(k.Group))
	for tok := range k.Group {
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)

	arena := make([]ReplacementList, 0, len(tokens))
	for _, tok := range tokens {
		encodeTok := tok
		if k.Suffix {
			encodeTok = reverseString(tok)
		}
		encoded, ok := b.EncodeKey(encodeTok)
		if !ok {
			return &BadEntryError{Where: "key token", Got: tok}
		}
		if len(encoded) == 0 {
			continue
		}
		arenaIdx := len(arena)
		arena = append(arena, k.Group[tok])
		b.Insert(encoded, arenaIdx)
	}
	k.trie = b.Freeze()
	k.arena = arena
	k.frozen = true
	stats := k.trie.Stats()
	tracer().Infof("key trie stats suffix=%t used=%d total=%d fill=%.2f maxStateID=%d",
		k.Suffix, stats.UsedSlots, stats.TotalSlots, stats.FillRatio(), stats.MaxStateID)
	return nil
}

// Token looks up a single romanized token directly, bypassing the trie.
func (k *Key) Token(token string) (ReplacementList, error) {
	rl, ok := k.Group[token]
	if !ok {
		return ReplacementList{}, &NoSuchTokenError{Token: token}
	}
	return rl, nil
}

// GetPart finds the longest token at the front of word (or, in suffix
// mode, at the end of word) and returns its ReplacementList along with
// the unmatched remainder of word. It fails with NoMatchError if no token
// matches at all.
func (k *Key) GetPart(word string) (ReplacementList, string, error) {
	runes := []rune(word)
	if k.Suffix {
		reverseRunes(runes)
	}

	state := k.trie.Root
	bestLen := -1
	bestArena := -1
	for i, r := range runes {
		dense := k.trie.Dense(r)
		if dense == 0 {
			break
		}
		next, ok := k.trie.Transition(state, dense)
		if !ok {
			break
		}
		state = next
		if idx, ok := k.trie.ArenaIndex(state); ok {
			bestLen = i + 1
			bestArena = idx
		}
	}
	if bestLen < 0 {
		return ReplacementList{}, word, &NoMatchError{Word: word}
	}

	if k.Suffix {
		matched := append([]rune{}, runes[:bestLen]...)
		reverseRunes(matched)
		rest := append([]rune{}, runes[bestLen:]...)
		reverseRunes(rest)
		return k.arena[bestArena], string(rest), nil
	}
	return k.arena[bestArena], string(runes[bestLen:]), nil
}

// GetAllParts repeatedly applies GetPart until word is fully consumed,
// returning the ReplacementList for each matched part left-to-right, so
// that concatenating every returned part's key reproduces word. In suffix
// mode, parts are peeled off the end of word first (rightmost match
// first) and then reversed into left-to-right order before being
// returned.
func (k *Key) GetAllParts(word string) ([]ReplacementList, error) {
	var parts []ReplacementList
	remaining := word
	for remaining != "" {
		rl, rest, err := k.GetPart(remaining)
		if err != nil {
			return nil, err
		}
		parts = append(parts, rl)
		remaining = rest
	}
	if k.Suffix {
		for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
			parts[i], parts[j] = parts[j], parts[i]
		}
	}
	return parts, nil
}

// GetStatPart is GetPart followed by MakeStat on the matched part.
func (k *Key) GetStatPart(word string) (StatReplacementList, string, error) {
	rl, rest, err := k.GetPart(word)
	if err != nil {
		return StatReplacementList{}, word, err
	}
	stat, err := rl.MakeStat()
	if err != nil {
		return StatReplacementList{}, rest, err
	}
	return stat, rest, nil
}

// GetAllStatParts is GetAllParts with every part converted via MakeStat.
func (k *Key) GetAllStatParts(word string) ([]StatReplacementList, error) {
	parts, err := k.GetAllParts(word)
	if err != nil {
		return nil, err
	}
	stats := make([]StatReplacementList, len(parts))
	for i, p := range parts {
		stat, err := p.MakeStat()
		if err != nil {
			return nil, err
		}
		stats[i] = stat
	}
	return stats, nil
}

func reverseString(s string) string {
	runes := []rune(s)
	reverseRunes(runes)
	return string(runes)
}

func reverseRunes(runes []rune) {
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
}
