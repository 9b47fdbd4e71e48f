package snaps

import "sort"

// SelectionStore maps snap names to the user's choices. A snap is selected
// for installation iff it has an entry. It is owned by the UI goroutine.
type SelectionStore struct {
	entries map[string]Selection
}

// NewSelectionStore returns an empty store.
func NewSelectionStore() *SelectionStore {
	return &SelectionStore{entries: make(map[string]Selection)}
}

// Set creates or overwrites the selection for name.
func (s *SelectionStore) Set(name string, sel Selection) {
	s.entries[name] = sel
}

// Remove drops the selection for name. Removing an absent name is a no-op.
func (s *SelectionStore) Remove(name string) {
	delete(s.entries, name)
}

// Get returns the selection for name, if any.
func (s *SelectionStore) Get(name string) (Selection, bool) {
	sel, ok := s.entries[name]
	return sel, ok
}

// Has reports whether name is selected.
func (s *SelectionStore) Has(name string) bool {
	_, ok := s.entries[name]
	return ok
}

// Len returns the number of selected snaps.
func (s *SelectionStore) Len() int {
	return len(s.entries)
}

// All returns a copy of every selection.
func (s *SelectionStore) All() map[string]Selection {
	out := make(map[string]Selection, len(s.entries))
	for name, sel := range s.entries {
		out[name] = sel
	}
	return out
}

// Names returns the selected snap names in sorted order.
func (s *SelectionStore) Names() []string {
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
