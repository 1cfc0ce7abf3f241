package state

import "github.com/google/uuid"

// newOpID mints an identifier for one in-flight operation.
func newOpID() string {
	return uuid.NewString()
}

// keyed is satisfied by the wire entity types (Task, Note).
type keyed interface {
	Key() int64
}

// indexOf returns the position of the entity with the given id, or -1.
func indexOf[E keyed](items []E, id int64) int {
	for i, item := range items {
		if item.Key() == id {
			return i
		}
	}
	return -1
}

// removeAt deletes the element at i, preserving order.
func removeAt[E keyed](items []E, i int) []E {
	return append(items[:i:i], items[i+1:]...)
}

// insertAt re-inserts item at i, clamping i to the slice bounds. Used to
// undo an optimistic removal at its original position.
func insertAt[E keyed](items []E, i int, item E) []E {
	if i < 0 {
		i = 0
	}
	if i > len(items) {
		i = len(items)
	}
	out := make([]E, 0, len(items)+1)
	out = append(out, items[:i]...)
	out = append(out, item)
	out = append(out, items[i:]...)
	return out
}
