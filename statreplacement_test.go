package deromanize

import "testing"

func TestStatReplacementAddMultipliesProbabilities(t *testing.T) {
	a := StatReplacement{Prob: 0.5, Value: "ש", KeyValue: []KeyValue{{Romanized: "s", Original: "ש"}}}
	b := StatReplacement{Prob: 0.25, Value: "ל", KeyValue: []KeyValue{{Romanized: "l", Original: "ל"}}}
	got := a.Add(b)
	if got.Prob != 0.125 {
		t.Fatalf("Prob = %f, want 0.125", got.Prob)
	}
	if got.Value != "של" {
		t.Fatalf("Value = %q, want %q", got.Value, "של")
	}
}

func TestStatReplacementListAddCartesianProduct(t *testing.T) {
	left := StatReplacementList{KeyParts: []string{"s"}, Candidates: []StatReplacement{{Prob: 1, Value: "ש"}}}
	right := StatReplacementList{KeyParts: []string{"o"}, Candidates: []StatReplacement{
		{Prob: 0.6, Value: "ו"}, {Prob: 0.4, Value: ""},
	}}
	got := left.Add(right)
	if got.Key() != "so" {
		t.Fatalf("Key() = %q, want %q", got.Key(), "so")
	}
	if len(got.Candidates) != 2 {
		t.Fatalf("len(Candidates) = %d, want 2", len(got.Candidates))
	}
	if got.Candidates[0].Value != "שו" || got.Candidates[0].Prob != 0.6 {
		t.Fatalf("Candidates[0] = %+v", got.Candidates[0])
	}
}
