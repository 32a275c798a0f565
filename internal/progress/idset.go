package progress

// idSet is an insertion-ordered set of question IDs. Order is kept so the
// persisted arrays stay stable across toggles of unrelated IDs.
type idSet struct {
	ids   []string
	index map[string]struct{}
}

func newIDSet(ids []string) *idSet {
	s := &idSet{
		ids:   make([]string, 0, len(ids)),
		index: make(map[string]struct{}, len(ids)),
	}
	for _, id := range ids {
		if _, dup := s.index[id]; dup {
			continue
		}
		s.index[id] = struct{}{}
		s.ids = append(s.ids, id)
	}
	return s
}

func (s *idSet) has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// toggle flips membership of id and reports whether it is now a member.
func (s *idSet) toggle(id string) bool {
	if !s.has(id) {
		s.index[id] = struct{}{}
		s.ids = append(s.ids, id)
		return true
	}
	delete(s.index, id)
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	return false
}

func (s *idSet) len() int {
	return len(s.ids)
}

// slice returns a copy of the members in insertion order, never nil.
func (s *idSet) slice() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// countOf returns how many of ids are members. Repeated IDs count each time.
func (s *idSet) countOf(ids []string) int {
	n := 0
	for _, id := range ids {
		if s.has(id) {
			n++
		}
	}
	return n
}
