// Package chain provides a doubly linked list mutated through cursors. A
// cursor holds a position inside the list and can insert, remove, and step in
// both directions in O(1) without invalidating the rest of the structure.
package chain

import (
	"fmt"

	"github.com/bradenaw/juniper/iterator"

	"github.com/awenger/chain/internal/xnode"
)

// List is a doubly linked list of T. The zero value is not ready to use; call
// New.
//
// A List may be handed off between goroutines as a whole, but it carries no
// internal synchronization: mutating one List from multiple goroutines, or
// mutating it through a cursor while another cursor or iterator on it is in
// use, requires external locking by the caller.
type List[T any] struct {
	front *xnode.Node[T]
	back  *xnode.Node[T]
	size  int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// FromSlice returns a list holding the elements of s in order.
func FromSlice[T any](s []T) *List[T] {
	l := New[T]()
	for _, elem := range s {
		l.PushBack(elem)
	}
	return l
}

// Len returns the number of elements in the list in O(1).
func (l *List[T]) Len() int { return l.size }

// CursorFront returns a cursor positioned on the first element, or at the
// ghost position if the list is empty. The cursor has exclusive use of the
// list until the caller is done with it.
func (l *List[T]) CursorFront() *Cursor[T] {
	return &Cursor[T]{list: l, node: l.front}
}

// CursorBack is CursorFront's mirror: a cursor on the last element.
func (l *List[T]) CursorBack() *Cursor[T] {
	return &Cursor[T]{list: l, node: l.back}
}

// Iter returns an iterator over the list's elements from front to back. The
// iterator only reads the list; it must not be advanced after a cursor has
// mutated the list. Call Iter again to restart from the front.
func (l *List[T]) Iter() iterator.Iterator[T] {
	return &forwardIter[T]{next: l.front}
}

// Clear removes every element. It drains through a front cursor so that each
// node is retired exactly once and the emptied list holds no node references.
func (l *List[T]) Clear() {
	cursor := l.CursorFront()
	for {
		if _, ok := cursor.Take(); !ok {
			return
		}
	}
}

// Front returns the first element without moving anything.
func (l *List[T]) Front() (T, bool) {
	if l.front == nil {
		var zero T
		return zero, false
	}
	return l.front.Elem(), true
}

// Back returns the last element without moving anything.
func (l *List[T]) Back() (T, bool) {
	if l.back == nil {
		var zero T
		return zero, false
	}
	return l.back.Elem(), true
}

// PushFront inserts elem as the new first element.
func (l *List[T]) PushFront(elem T) {
	l.CursorFront().InsertBefore(elem)
}

// PushBack inserts elem as the new last element.
func (l *List[T]) PushBack(elem T) {
	l.CursorBack().InsertAfter(elem)
}

// PopFront removes and returns the first element, or false if the list is
// empty.
func (l *List[T]) PopFront() (T, bool) {
	return l.CursorFront().Take()
}

// PopBack removes and returns the last element, or false if the list is
// empty.
func (l *List[T]) PopBack() (T, bool) {
	return l.CursorBack().Take()
}

// Clone returns a new list holding the same elements in the same order.
// Elements are copied by assignment; the two lists share no nodes.
func (l *List[T]) Clone() *List[T] {
	out := New[T]()
	for node := l.front; node != nil; node = node.Next() {
		out.PushBack(node.Elem())
	}
	return out
}

// ToSlice returns the list's elements from front to back.
func (l *List[T]) ToSlice() []T {
	return iterator.Collect(l.Iter())
}

// String returns the list formatted like a slice.
func (l *List[T]) String() string {
	return fmt.Sprint(l.ToSlice())
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	return iterator.Equal(a.Iter(), b.Iter())
}
