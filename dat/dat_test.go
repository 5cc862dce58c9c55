package dat

import "testing"

func buildSimple(t *testing.T) (*DAT, map[string]int) {
	t.Helper()
	b := NewBuilder()
	arena := map[string]int{"sh": 0, "s": 1, "l": 2}
	for tok, idx := range arena {
		encoded, ok := b.EncodeKey(tok)
		if !ok {
			t.Fatalf("EncodeKey(%q) failed", tok)
		}
		b.Insert(encoded, idx)
	}
	return b.Freeze(), arena
}

func walk(d *DAT, s string) (int, bool) {
	state := d.Root
	lastArena := -1
	found := false
	for _, r := range s {
		dense := d.Dense(r)
		if dense == 0 {
			break
		}
		next, ok := d.Transition(state, dense)
		if !ok {
			break
		}
		state = next
		if idx, ok := d.ArenaIndex(state); ok {
			lastArena = idx
			found = true
		}
	}
	return lastArena, found
}

func TestDATLongestMatch(t *testing.T) {
	d, arena := buildSimple(t)
	idx, ok := walk(d, "shalom")
	if !ok {
		t.Fatalf("expected a match")
	}
	if idx != arena["sh"] {
		t.Fatalf("longest match index = %d, want %d (sh)", idx, arena["sh"])
	}
}

func TestDATShorterTokenAlsoTerminal(t *testing.T) {
	d, arena := buildSimple(t)
	idx, ok := walk(d, "s")
	if !ok {
		t.Fatalf("expected a match")
	}
	if idx != arena["s"] {
		t.Fatalf("match index = %d, want %d (s)", idx, arena["s"])
	}
}

func TestDATNoMatch(t *testing.T) {
	d, _ := buildSimple(t)
	if _, ok := walk(d, "xyz"); ok {
		t.Fatalf("expected no match")
	}
}

func TestDATStatsFillRatio(t *testing.T) {
	d, _ := buildSimple(t)
	stats := d.Stats()
	if stats.TotalSlots == 0 {
		t.Fatalf("expected non-zero TotalSlots")
	}
	if r := stats.FillRatio(); r <= 0 || r > 1 {
		t.Fatalf("FillRatio() = %f, want in (0, 1]", r)
	}
}

func TestDATEmptyStats(t *testing.T) {
	var d DAT
	if r := d.Stats().FillRatio(); r != 0 {
		t.Fatalf("FillRatio() on empty DAT = %f, want 0", r)
	}
}
