/*
Package deromanize implements the key engine for reverse transliteration
(deromanization): given a word written in a Romanized form of some
non-Latin script, it produces a ranked, weighted list of plausible
original-script spellings.

A profile describes how Romanized tokens map to original-script tokens,
using character groups, key inheritance, and pattern rules over declared
character classes. Build compiles a profile into an Engine holding one
compiled Key per named entry under the profile's "keys" section. Each Key
is a greedy, longest-match tokenizer; FrontMidEnd composes three Keys
("front", "mid", "end") into the canonical whole-word decode strategy.

The engine is not a statistical language model. Weights are ordinal hints
chosen by the profile author; output ranking is deterministic and there is
no learning involved.
*/
package deromanize

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'deromanize'
func tracer() tracing.Trace {
	return tracing.Select("deromanize")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
