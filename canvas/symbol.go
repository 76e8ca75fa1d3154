package canvas

// SymbolDefinition is one reusable piece of geometry expressed in the
// symbol's own local coordinate space.
type SymbolDefinition struct {
	Local *CommandBuffer
}

// SymbolSnapshot is an immutable mapping from symbol id to definition. It is
// published once by EndFrame and may then be read concurrently without
// copying; it is never mutated after publication.
type SymbolSnapshot struct {
	defs map[int]SymbolDefinition
}

// Lookup returns the local command buffer for id, if defined.
func (s *SymbolSnapshot) Lookup(id int) (*CommandBuffer, bool) {
	if s == nil {
		return nil, false
	}
	def, ok := s.defs[id]
	if !ok {
		return nil, false
	}
	return def.Local, true
}

// Len returns the number of defined symbols.
func (s *SymbolSnapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.defs)
}

// IDs returns the defined symbol ids in unspecified order.
func (s *SymbolSnapshot) IDs() []int {
	if s == nil {
		return nil
	}
	ids := make([]int, 0, len(s.defs))
	for id := range s.defs {
		ids = append(ids, id)
	}
	return ids
}
