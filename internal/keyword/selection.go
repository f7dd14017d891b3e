package keyword

// Selection is an ordered set of selected ids.
type Selection struct {
	ids []string
}

// NewSelection restores a selection, dropping empty and duplicate ids.
func NewSelection(ids []string) *Selection {
	s := &Selection{}
	for _, id := range ids {
		s.Select(id)
	}
	return s
}

func (s *Selection) index(id string) int {
	for i, existing := range s.ids {
		if existing == id {
			return i
		}
	}
	return -1
}

// Select adds id. Selecting an already selected id is a no-op.
func (s *Selection) Select(id string) {
	if id == "" || s.index(id) >= 0 {
		return
	}
	s.ids = append(s.ids, id)
}

// Deselect removes id. Deselecting an unselected id is a no-op.
func (s *Selection) Deselect(id string) {
	i := s.index(id)
	if i < 0 {
		return
	}
	s.ids = append(s.ids[:i], s.ids[i+1:]...)
}

// Toggle flips the selection state of id and reports the new state.
func (s *Selection) Toggle(id string) bool {
	if s.IsSelected(id) {
		s.Deselect(id)
		return false
	}
	s.Select(id)
	return s.IsSelected(id)
}

func (s *Selection) IsSelected(id string) bool {
	return s.index(id) >= 0
}

// IDs returns the selected ids in selection order.
func (s *Selection) IDs() []string {
	return append([]string{}, s.ids...)
}

func (s *Selection) Len() int {
	return len(s.ids)
}
