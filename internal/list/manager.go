package list

import (
	"iter"

	"github.com/nikbrunner/cbm/internal/filter"
)

// Manager owns a catalog of entities, the currently filtered view and a
// selection cursor into that view. The catalog is never modified; a reload
// builds a new Manager.
type Manager[T any] struct {
	all      []T
	filtered []int // indexes into all, in catalog order
	cursor   int
}

// New creates a Manager whose filtered view is the whole catalog.
func New[T any](items []T) *Manager[T] {
	m := &Manager[T]{all: append([]T(nil), items...)}
	m.filtered = make([]int, len(m.all))
	for i := range m.all {
		m.filtered[i] = i
	}
	return m
}

// ApplyFilter recomputes the filtered view and resets the cursor.
func (m *Manager[T]) ApplyFilter(f filter.Filter[T]) {
	m.filtered = m.filtered[:0]
	for i, item := range m.all {
		if f.Keep(item) {
			m.filtered = append(m.filtered, i)
		}
	}
	m.cursor = 0
}

// SelectDown moves the cursor one entry down, stopping at the last entry.
func (m *Manager[T]) SelectDown() bool {
	if m.cursor >= len(m.filtered)-1 {
		return false
	}
	m.cursor++
	return true
}

// SelectUp moves the cursor one entry up, stopping at the first entry.
func (m *Manager[T]) SelectUp() bool {
	if m.cursor == 0 || len(m.filtered) == 0 {
		return false
	}
	m.cursor--
	return true
}

// ResetSelection moves the cursor to the first entry.
func (m *Manager[T]) ResetSelection() {
	m.cursor = 0
}

// Selected returns the entity under the cursor.
func (m *Manager[T]) Selected() (T, bool) {
	if len(m.filtered) == 0 {
		var zero T
		return zero, false
	}
	return m.all[m.filtered[m.cursor]], true
}

// All yields (position, entity) pairs of the filtered view in order.
func (m *Manager[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for pos, idx := range m.filtered {
			if !yield(pos, m.all[idx]) {
				return
			}
		}
	}
}

// Len returns the size of the filtered view.
func (m *Manager[T]) Len() int {
	return len(m.filtered)
}

// Total returns the size of the full catalog.
func (m *Manager[T]) Total() int {
	return len(m.all)
}

// Position returns the cursor.
func (m *Manager[T]) Position() int {
	return m.cursor
}
