package deromanize

// FrontMidEnd is the canonical whole-word decode strategy: it composes
// the "front", "mid" and "end" Keys of e to split a romanized word into
// an initial cluster, a run of medial clusters, and a final cluster, and
// combines their candidates in that order.
//
// It tries the word ending first: match "end" against the tail of the
// word (if that consumes the whole word, the "end" match alone is the
// result), then "front" against what's left, then reduce "mid" over
// whatever remains between them. If matching "front" or "mid" fails at
// that point, it falls back to matching "front" directly against the
// whole word and reducing "mid" over the rest, without an "end" match at
// all.
func (e *Engine) FrontMidEnd(word string) (ReplacementList, error) {
	front, err := e.Key("front")
	if err != nil {
		return ReplacementList{}, err
	}
	mid, err := e.Key("mid")
	if err != nil {
		return ReplacementList{}, err
	}
	end, err := e.Key("end")
	if err != nil {
		return ReplacementList{}, err
	}

	if rl, ok := decodeEndFirst(front, mid, end, word); ok {
		return rl, nil
	}
	tracer().Debugf("word=%q end-first decode failed, falling back to front-first", word)
	return decodeFrontFirst(front, mid, word)
}

func decodeEndFirst(front, mid, end *Key, word string) (ReplacementList, bool) {
	endRL, afterEnd, err := end.GetPart(word)
	if err != nil {
		tracer().Debugf("word=%q end-first: no end match (%v)", word, err)
		return ReplacementList{}, false
	}
	if afterEnd == "" {
		return endRL, true
	}
	frontRL, midWord, err := front.GetPart(afterEnd)
	if err != nil {
		tracer().Debugf("word=%q end-first: no front match after end (%v)", word, err)
		return ReplacementList{}, false
	}
	midRL, err := reduceMid(mid, midWord)
	if err != nil {
		tracer().Debugf("word=%q end-first: mid reduce failed (%v)", word, err)
		return ReplacementList{}, false
	}
	return frontRL.Add(midRL).Add(endRL), true
}

func decodeFrontFirst(front, mid *Key, word string) (ReplacementList, error) {
	frontRL, afterFront, err := front.GetPart(word)
	if err != nil {
		tracer().Debugf("word=%q front-first: no front match (%v)", word, err)
		return ReplacementList{}, &NoMatchError{Word: word}
	}
	midRL, err := reduceMid(mid, afterFront)
	if err != nil {
		tracer().Debugf("word=%q front-first: mid reduce failed (%v)", word, err)
		return ReplacementList{}, &NoMatchError{Word: word}
	}
	return frontRL.Add(midRL), nil
}

func reduceMid(mid *Key, word string) (ReplacementList, error) {
	if word == "" {
		return emptyReplacementList, nil
	}
	parts, err := mid.GetAllParts(word)
	if err != nil {
		return ReplacementList{}, err
	}
	return AddReplacementLists(parts)
}
