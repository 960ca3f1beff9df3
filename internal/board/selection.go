package board

import (
	"slices"
)

// Selection is an immutable set of selected record IDs. The zero value is
// an empty selection.
type Selection struct {
	ids map[string]struct{}
}

// NewSelection returns a selection holding ids.
func NewSelection(ids ...string) Selection {
	return Selection{}.SelectAll(ids)
}

func (s Selection) clone() map[string]struct{} {
	m := make(map[string]struct{}, len(s.ids)+1)
	for id := range s.ids {
		m[id] = struct{}{}
	}
	return m
}

// Toggle flips the selection of one row.
func (s Selection) Toggle(id string) Selection {
	m := s.clone()
	if _, ok := m[id]; ok {
		delete(m, id)
	} else {
		m[id] = struct{}{}
	}
	return Selection{ids: m}
}

// SelectAll adds ids to the selection.
func (s Selection) SelectAll(ids []string) Selection {
	m := s.clone()
	for _, id := range ids {
		if id != "" {
			m[id] = struct{}{}
		}
	}
	return Selection{ids: m}
}

// Clear returns an empty selection.
func (s Selection) Clear() Selection {
	return Selection{}
}

// Has reports whether id is selected.
func (s Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected IDs.
func (s Selection) Len() int {
	return len(s.ids)
}

// AllOf reports whether the selection is non-empty and holds exactly the
// rows in ids; it drives the header checkbox.
func (s Selection) AllOf(ids []string) bool {
	if len(ids) == 0 || len(s.ids) != len(ids) {
		return false
	}
	for _, id := range ids {
		if !s.Has(id) {
			return false
		}
	}
	return true
}

// IDs returns the selected IDs, sorted.
func (s Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
