package deromanize

import (
	"reflect"
	"testing"
)

func TestBrokenClustersReassemble(t *testing.T) {
	bc := BrokenClusters{{"s", "h"}: "sh"}
	got := bc.Reassemble([]string{"s", "h", "a"})
	want := []string{"sh", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Reassemble = %v, want %v", got, want)
	}
}

func TestBrokenClustersReassembleNoMatch(t *testing.T) {
	bc := BrokenClusters{{"s", "h"}: "sh"}
	got := bc.Reassemble([]string{"a", "h", "s"})
	want := []string{"a", "h", "s"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Reassemble = %v, want %v", got, want)
	}
}

func TestBrokenClustersMerge(t *testing.T) {
	a := BrokenClusters{{"s", "h"}: "sh"}
	b := BrokenClusters{{"t", "s"}: "ts"}
	merged := a.Merge(b)
	if len(merged) != 2 {
		t.Fatalf("len(merged) = %d, want 2", len(merged))
	}
}
