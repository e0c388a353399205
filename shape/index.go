package shape

// Index maps IDs to shapes for owner lookups. It is a snapshot: rebuild it
// after structural edits.
type Index map[ID]Shape

// NewIndex walks shapes, including group members and every defining
// point, and records each by ID.
func NewIndex(shapes []Shape) Index {
	idx := make(Index)
	idx.add(shapes)
	return idx
}

func (idx Index) add(shapes []Shape) {
	for _, s := range shapes {
		idx[s.AsBase().ID()] = s
		if g, ok := s.(*Group); ok {
			idx.add(g.Shapes)
		}
		for _, p := range s.Points(nil) {
			idx[p.ID()] = p
		}
	}
}

// Owner resolves the weak owner reference of s. It reports false for
// shapes that live directly on a layer or whose owner is not indexed.
func (idx Index) Owner(s Shape) (Shape, bool) {
	owner := s.AsBase().Owner
	if owner == "" {
		return nil, false
	}
	o, ok := idx[owner]
	return o, ok
}

// Root follows owner references up to the top-level shape containing s.
func (idx Index) Root(s Shape) Shape {
	for range len(idx) + 1 {
		o, ok := idx.Owner(s)
		if !ok {
			return s
		}
		s = o
	}
	return s
}
