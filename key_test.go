package deromanize

import "testing"

func mustGroup(t *testing.T, name string, raw map[string]any) CharacterGroup {
	t.Helper()
	g, err := ParseCharacterGroup(name, raw)
	if err != nil {
		t.Fatalf("ParseCharacterGroup(%s): %v", name, err)
	}
	return g
}

func TestKeyGetPartPrefixLongestMatch(t *testing.T) {
	group := mustGroup(t, "consonants", map[string]any{
		"s":  "ש",
		"sh": "ש",
		"l":  "ל",
	})
	k, err := NewKey(group, false)
	if err != nil {
		t.Fatalf("NewKey: %v", err)
	}
	rl, rest, err := k.GetPart("shalom")
	if err != nil {
		t.Fatalf("GetPart: %v", err)
	}
	if rl.Key() != "sh" {
		t.Fatalf("matched key = %q, want %q", rl.Key(), "sh")
	}
	if rest != "alom" {
		t.Fatalf("rest = %q, want %q", rest, "alom")
	}
}

func TestKeyGetPartSuffixMatch(t *testing.T) {
	group := mustGroup(t, "final", map[string]any{"m": "ם"})
	k, err := NewKey(group, true)
	if err != nil {
		t.Fatalf("NewKey: %v", err)
	}
	rl, rest, err := k.GetPart("shalom")
	if err != nil {
		t.Fatalf("GetPart: %v", err)
	}
	if rl.Key() != "m" || rl.Candidates[0].Value != "ם" {
		t.Fatalf("matched = %+v", rl)
	}
	if rest != "shalo" {
		t.Fatalf("rest = %q, want %q", rest, "shalo")
	}
}

func TestKeyGetPartNoMatch(t *testing.T) {
	group := mustGroup(t, "consonants", map[string]any{"s": "ש"})
	k, _ := NewKey(group, false)
	if _, _, err := k.GetPart("xyz"); err == nil {
		t.Fatalf("expected NoMatchError")
	} else if _, ok := err.(*NoMatchError); !ok {
		t.Fatalf("err = %v, want *NoMatchError", err)
	}
}

func TestKeyToken(t *testing.T) {
	group := mustGroup(t, "consonants", map[string]any{"s": "ש"})
	k, _ := NewKey(group, false)
	if _, err := k.Token("s"); err != nil {
		t.Fatalf("Token(s): %v", err)
	}
	if _, err := k.Token("zzz"); err == nil {
		t.Fatalf("expected NoSuchTokenError")
	}
}

func TestKeyGetAllParts(t *testing.T) {
	group := mustGroup(t, "base", map[string]any{
		"s":  "ש",
		"sh": "ש",
		"a":  "",
		"l":  "ל",
		"o":  []any{"ו", ""},
		"m":  "מ",
	})
	k, err := NewKey(group, false)
	if err != nil {
		t.Fatalf("NewKey: %v", err)
	}
	parts, err := k.GetAllParts("shalom")
	if err != nil {
		t.Fatalf("GetAllParts: %v", err)
	}
	if len(parts) != 5 {
		t.Fatalf("len(parts) = %d, want 5", len(parts))
	}
	folded, err := AddReplacementLists(parts)
	if err != nil {
		t.Fatalf("AddReplacementLists: %v", err)
	}
	folded.Sort()
	if folded.Candidates[0].Value != "שלומ" {
		t.Fatalf("best candidate = %q, want %q", folded.Candidates[0].Value, "שלומ")
	}
	if folded.Candidates[1].Value != "שלמ" {
		t.Fatalf("second candidate = %q, want %q", folded.Candidates[1].Value, "שלמ")
	}
}

func TestKeyGetAllPartsSuffixOrder(t *testing.T) {
	group := mustGroup(t, "final", map[string]any{
		"a": "A",
		"b": "B",
		"c": "C",
	})
	k, err := NewKey(group, true)
	if err != nil {
		t.Fatalf("NewKey: %v", err)
	}
	parts, err := k.GetAllParts("abc")
	if err != nil {
		t.Fatalf("GetAllParts: %v", err)
	}
	if len(parts) != 3 {
		t.Fatalf("len(parts) = %d, want 3", len(parts))
	}
	var concatenated string
	for _, p := range parts {
		concatenated += p.Key()
	}
	if concatenated != "abc" {
		t.Fatalf("concatenated keys = %q, want %q", concatenated, "abc")
	}
}
