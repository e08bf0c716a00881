package history

// #region memory-store

// MemoryStore is an in-process Store for tests and the replay harness.
type MemoryStore struct {
	items []Item
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a deep copy of the stored snapshot.
func (m *MemoryStore) Load() ([]Item, error) {
	return cloneItems(m.items), nil
}

// Save replaces the snapshot with a deep copy of items.
func (m *MemoryStore) Save(items []Item) error {
	m.items = cloneItems(items)
	return nil
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

// Clear empties the snapshot.
func (m *MemoryStore) Clear() error {
	m.items = nil
	return nil
}

// #endregion memory-store
