package profileyaml

import (
	"strings"
	"testing"
)

func TestLoadDecodesNestedTree(t *testing.T) {
	doc := `
consonants:
  s: "a"
  sh:
    - "b"
    - "c"
keys:
  base:
    groups: [consonants]
`
	parsed, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	root, ok := parsed.(map[string]any)
	if !ok {
		t.Fatalf("root type = %T, want map[string]any", parsed)
	}
	consonants, ok := root["consonants"].(map[string]any)
	if !ok {
		t.Fatalf("consonants type = %T", root["consonants"])
	}
	if consonants["s"] != "a" {
		t.Fatalf("consonants[s] = %v, want a", consonants["s"])
	}
	sh, ok := consonants["sh"].([]any)
	if !ok || len(sh) != 2 {
		t.Fatalf("consonants[sh] = %v", consonants["sh"])
	}
}

func TestMergeUnionsMapsAndSequences(t *testing.T) {
	a := map[string]any{
		"consonants": map[string]any{
			"s": []any{"x"},
		},
	}
	b := map[string]any{
		"consonants": map[string]any{
			"s": []any{"y"},
			"l": "z",
		},
		"vowels": map[string]any{"a": "w"},
	}
	merged := Merge(a, b).(map[string]any)
	consonants := merged["consonants"].(map[string]any)
	s := consonants["s"].([]any)
	if len(s) != 2 || s[0] != "x" || s[1] != "y" {
		t.Fatalf("s = %v, want [x y]", s)
	}
	if consonants["l"] != "z" {
		t.Fatalf("l = %v, want z", consonants["l"])
	}
	if _, ok := merged["vowels"]; !ok {
		t.Fatalf("expected vowels to be present in merged tree")
	}
}

func TestMergeScalarPrefersSecond(t *testing.T) {
	got := Merge("a", "b")
	if got != "b" {
		t.Fatalf("Merge(a, b) = %v, want b", got)
	}
}
