package domain

import "sort"

// ParameterStore maps a keyword token (e.g. "[NAME]") to the ordered history
// of values it has been given. The last element of a history is the current
// value. The store is not safe for concurrent use; callers must serialize
// access per prompt.
type ParameterStore struct {
	values map[string][]string
}

// NewParameterStore returns an empty store.
func NewParameterStore() *ParameterStore {
	return &ParameterStore{values: make(map[string][]string)}
}

// ParameterStoreFromMap builds a store from a serialized snapshot, copying
// each history so the caller's map stays independent.
func ParameterStoreFromMap(m map[string][]string) *ParameterStore {
	s := NewParameterStore()
	for key, history := range m {
		s.values[key] = append([]string(nil), history...)
	}
	return s
}

// Get returns the full history for key, empty if absent.
func (s *ParameterStore) Get(key string) []string {
	return s.values[key]
}

// CurrentValue returns the most recent value for key. ok is false when the
// key is absent or its history is empty.
func (s *ParameterStore) CurrentValue(key string) (string, bool) {
	history := s.values[key]
	if len(history) == 0 {
		return "", false
	}
	return history[len(history)-1], true
}

// AppendValue records one more usage of key: value becomes the new current
// value without discarding prior history. Assigning the value that is already
// current is a no-op, so repeated renders with the same parameters do not
// grow the history.
func (s *ParameterStore) AppendValue(key, value string) {
	history := s.values[key]
	if len(history) > 0 && history[len(history)-1] == value {
		return
	}
	s.values[key] = append(history, value)
}

// ReplaceHistory replaces the full history for key. Used by bulk load from
// serialized storage, where the stored shape is the complete history.
func (s *ParameterStore) ReplaceHistory(key string, history []string) {
	s.values[key] = append([]string(nil), history...)
}

// EnsureKey initializes key with an empty history if it is absent. Existing
// histories are left untouched.
func (s *ParameterStore) EnsureKey(key string) {
	if _, ok := s.values[key]; !ok {
		s.values[key] = []string{}
	}
}

// Delete removes key and its history.
func (s *ParameterStore) Delete(key string) {
	delete(s.values, key)
}

// Keys returns all known keywords, sorted.
func (s *ParameterStore) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for key := range s.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of known keywords.
func (s *ParameterStore) Len() int {
	return len(s.values)
}

// Snapshot returns a deep copy of the store in the shape persisted by the
// storage adapters.
func (s *ParameterStore) Snapshot() map[string][]string {
	m := make(map[string][]string, len(s.values))
	for key, history := range s.values {
		m[key] = append([]string(nil), history...)
	}
	return m
}
