package deromanize

// Engine is a compiled profile: a set of named Keys ready to tokenize
// romanized words into weighted original-script candidates.
type Engine struct {
	Keys map[string]*Key
}

// Key looks up a compiled Key by the name it was declared under in the
// profile's "keys" section.
func (e *Engine) Key(name string) (*Key, error) {
	k, ok := e.Keys[name]
	if !ok {
		return nil, &UnknownKeyError{Name: name}
	}
	return k, nil
}
