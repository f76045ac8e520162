// Package xnode holds the raw node representation and link primitives for a
// doubly linked chain. Nothing here knows about list boundaries or length;
// keeping front/back consistent across these calls is the caller's job.
package xnode

// Node is a single cell of a chain: one element and two neighbor links. A nil
// link means the chain ends there.
type Node[T any] struct {
	elem T
	prev *Node[T]
	next *Node[T]
}

// New allocates a linkless node holding elem.
func New[T any](elem T) *Node[T] {
	return &Node[T]{elem: elem}
}

func (n *Node[T]) Next() *Node[T] { return n.next }
func (n *Node[T]) Prev() *Node[T] { return n.prev }
func (n *Node[T]) Elem() T        { return n.elem }

// ElemRef returns the node's element slot for in-place mutation.
func (n *Node[T]) ElemRef() *T { return &n.elem }

// Link makes a and b adjacent, unconditionally: a.next=b, b.prev=a. The caller
// guarantees it is not orphaning neighbors it meant to keep.
func Link[T any](a, b *Node[T]) {
	a.next = b
	b.prev = a
}

// InsertBetween splices n strictly between prev and next, which must already
// be adjacent. Returns n.
func InsertBetween[T any](n, prev, next *Node[T]) *Node[T] {
	Link(prev, n)
	Link(n, next)
	return n
}

// InsertNewAfter allocates a node holding elem and links it directly after n.
// If n is the end of its chain the new node becomes the new end; promoting it
// to the list's back pointer is up to the caller.
func InsertNewAfter[T any](n *Node[T], elem T) *Node[T] {
	if n.next != nil {
		return InsertBetween(New(elem), n, n.next)
	}
	fresh := New(elem)
	Link(n, fresh)
	return fresh
}

// InsertNewBefore is the mirror of InsertNewAfter.
func InsertNewBefore[T any](n *Node[T], elem T) *Node[T] {
	if n.prev != nil {
		return InsertBetween(New(elem), n.prev, n)
	}
	fresh := New(elem)
	Link(fresh, n)
	return fresh
}

// UnlinkNext detaches n's next neighbor: the neighbor's prev is cleared and
// the neighbor returned, or nil if n had none. n's own links are left alone;
// n still points at the detached node until the caller overwrites or retires
// it.
func UnlinkNext[T any](n *Node[T]) *Node[T] {
	next := n.next
	if next != nil {
		next.prev = nil
	}
	return next
}

// UnlinkPrev is the mirror of UnlinkNext.
func UnlinkPrev[T any](n *Node[T]) *Node[T] {
	prev := n.prev
	if prev != nil {
		prev.next = nil
	}
	return prev
}

// TakeElem retires n and returns its element. n must not be referenced by any
// other node's links; only a fully unlinked node may be retired. The element
// slot is zeroed and both links nilled so a retired node can never reach, or
// pin, live nodes.
func TakeElem[T any](n *Node[T]) T {
	elem := n.elem
	var zero T
	n.elem = zero
	n.prev = nil
	n.next = nil
	return elem
}
