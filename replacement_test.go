package deromanize

import (
	"reflect"
	"testing"
)

func TestReplacementAdd(t *testing.T) {
	a := NewReplacement(2, "sh", "ש")
	b := NewReplacement(3, "a", "")
	got := a.Add(b)
	if got.Weight != 5 {
		t.Fatalf("Weight = %d, want 5", got.Weight)
	}
	if got.Value != "ש" {
		t.Fatalf("Value = %q, want %q", got.Value, "ש")
	}
	want := []KeyValue{{Romanized: "sh", Original: "ש"}, {Romanized: "a", Original: ""}}
	if !reflect.DeepEqual(got.KeyValue, want) {
		t.Fatalf("KeyValue = %v, want %v", got.KeyValue, want)
	}
	if got.Key() != "sha" {
		t.Fatalf("Key() = %q, want %q", got.Key(), "sha")
	}
}

func TestReplacementAddAssociative(t *testing.T) {
	a := NewReplacement(1, "s", "ש")
	b := NewReplacement(2, "a", "")
	c := NewReplacement(3, "l", "ל")

	left := a.Add(b).Add(c)
	right := a.Add(b.Add(c))

	if !reflect.DeepEqual(left, right) {
		t.Fatalf("Add is not associative: %+v != %+v", left, right)
	}
}

func TestReplacementAddIdentity(t *testing.T) {
	a := NewReplacement(4, "r", "ר")

	if got := emptyReplacement.Add(a); !reflect.DeepEqual(got, a) {
		t.Fatalf("identity.Add(a) = %+v, want %+v", got, a)
	}
	if got := a.Add(emptyReplacement); !reflect.DeepEqual(got, a) {
		t.Fatalf("a.Add(identity) = %+v, want %+v", got, a)
	}
}
