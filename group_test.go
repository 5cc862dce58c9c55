package deromanize

import "testing"

func TestParseCharacterGroup(t *testing.T) {
	raw := map[string]any{
		"a": "א",
		"o": []any{"ו", ""},
		"w": []any{[]any{15, "ו"}},
	}
	group, err := ParseCharacterGroup("vowels", raw)
	if err != nil {
		t.Fatalf("ParseCharacterGroup: %v", err)
	}
	if len(group["a"].Candidates) != 1 || group["a"].Candidates[0].Value != "א" {
		t.Fatalf("a = %+v", group["a"])
	}
	if len(group["o"].Candidates) != 2 || group["o"].Candidates[1].Weight != 1 {
		t.Fatalf("o = %+v", group["o"])
	}
	if group["w"].Candidates[0].Weight != 15 {
		t.Fatalf("w = %+v", group["w"])
	}
}

func TestCharacterGroupMergeShiftsWeight(t *testing.T) {
	base, err := ParseCharacterGroup("vowels", map[string]any{
		"o": []any{"ו", ""},
	})
	if err != nil {
		t.Fatalf("ParseCharacterGroup base: %v", err)
	}
	extra, err := ParseCharacterGroup("infrequent", map[string]any{
		"o": []any{[]any{15, "א"}},
	})
	if err != nil {
		t.Fatalf("ParseCharacterGroup extra: %v", err)
	}

	merged := base.Merge(extra)
	candidates := merged["o"].Candidates
	if len(candidates) != 3 {
		t.Fatalf("len(candidates) = %d, want 3", len(candidates))
	}
	last := candidates[2]
	if last.Value != "א" || last.Weight != 17 {
		t.Fatalf("shifted candidate = %+v, want weight 17 value א", last)
	}
}

func TestCharacterGroupMergeDisjointTokens(t *testing.T) {
	a, _ := ParseCharacterGroup("g1", map[string]any{"s": "ש"})
	b, _ := ParseCharacterGroup("g2", map[string]any{"l": "ל"})
	merged := a.Merge(b)
	if len(merged) != 2 {
		t.Fatalf("len(merged) = %d, want 2", len(merged))
	}
}
