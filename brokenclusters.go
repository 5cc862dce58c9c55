package deromanize

// BrokenClusters records how to reassemble a natural key string when a
// pattern rule has split what a reader would consider one cluster (for
// example a digraph) into two adjacent key parts. It is keyed by the pair
// of parts exactly as produced by pattern expansion and maps to the
// combined form that should appear in a ReplacementList's Key.
type BrokenClusters map[[2]string]string

// Reassemble rewrites parts by merging any adjacent pair found in bc into
// its combined form. Merging is greedy and left-to-right: once a pair is
// merged, the result does not participate in further merges.
func (bc BrokenClusters) Reassemble(parts []string) []string {
	if len(bc) == 0 || len(parts) < 2 {
		return parts
	}
	out := make([]string, 0, len(parts))
	for i := 0; i < len(parts); i++ {
		if i+1 < len(parts) {
			if combined, ok := bc[[2]string{parts[i], parts[i+1]}]; ok {
				out = append(out, combined)
				i++
				continue
			}
		}
		out = append(out, parts[i])
	}
	return out
}

// Merge returns a BrokenClusters containing the entries of bc and other,
// with other's entries taking precedence on key collision.
func (bc BrokenClusters) Merge(other BrokenClusters) BrokenClusters {
	if len(bc) == 0 {
		return other
	}
	if len(other) == 0 {
		return bc
	}
	merged := make(BrokenClusters, len(bc)+len(other))
	for k, v := range bc {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}
