package chain

import (
	"github.com/awenger/chain/internal/xnode"
)

// Cursor is a positioned, mutating handle into a List. It either sits on a
// node or at the ghost position (no node): cursors into an empty list start
// there, and removing the last element lands there. A ghost cursor implies an
// empty list.
//
// A cursor borrows its list exclusively. While one cursor is in use, no other
// cursor may mutate the same list and no iterator over it may be advanced.
type Cursor[T any] struct {
	list *List[T]
	node *xnode.Node[T]
}

// Peek returns a pointer to the current element, for reading or updating it
// in place, or false at the ghost position. The cursor does not move.
func (c *Cursor[T]) Peek() (*T, bool) {
	if c.node == nil {
		return nil, false
	}
	return c.node.ElemRef(), true
}

// Next moves one step toward the back and returns the element stepped onto.
// On the back node, or at the ghost position, it returns false and the cursor
// stays where it is; a cursor never wraps around.
func (c *Cursor[T]) Next() (*T, bool) {
	return c.step((*xnode.Node[T]).Next)
}

// Prev moves one step toward the front; otherwise exactly like Next.
func (c *Cursor[T]) Prev() (*T, bool) {
	return c.step((*xnode.Node[T]).Prev)
}

func (c *Cursor[T]) step(neighbor func(*xnode.Node[T]) *xnode.Node[T]) (*T, bool) {
	if c.node == nil {
		return nil, false
	}
	n := neighbor(c.node)
	if n == nil {
		return nil, false
	}
	c.node = n
	return n.ElemRef(), true
}

// Take unlinks the current node and returns its element, or false at the
// ghost position. The cursor moves to the next node if there is one, else to
// the previous, else to the ghost position of the now-empty list. The list's
// boundary pointers and length are consistent when Take returns.
func (c *Cursor[T]) Take() (T, bool) {
	if c.node == nil {
		var zero T
		return zero, false
	}
	node := c.node
	// Detach both neighbors independently; node keeps stale links but is
	// retired below before anyone can follow them.
	next := xnode.UnlinkNext(node)
	prev := xnode.UnlinkPrev(node)

	switch {
	case prev != nil && next != nil:
		xnode.Link(prev, next)
		c.node = next
	case prev != nil:
		c.list.back = prev
		c.node = prev
	case next != nil:
		c.list.front = next
		c.node = next
	default:
		c.list.front = nil
		c.list.back = nil
		c.node = nil
	}
	c.list.size--
	return xnode.TakeElem(node), true
}

// InsertAfter inserts elem immediately after the cursor's position. If the
// list is empty the new element becomes the list's sole element and the
// cursor moves onto it; InsertBefore behaves identically in that case, on
// purpose. Otherwise the cursor does not move.
func (c *Cursor[T]) InsertAfter(elem T) {
	if c.node == nil {
		c.seed(elem)
		return
	}
	fresh := xnode.InsertNewAfter(c.node, elem)
	if c.list.back == c.node {
		c.list.back = fresh
	}
	c.list.size++
}

// InsertBefore inserts elem immediately before the cursor's position; see
// InsertAfter for the empty-list case.
func (c *Cursor[T]) InsertBefore(elem T) {
	if c.node == nil {
		c.seed(elem)
		return
	}
	fresh := xnode.InsertNewBefore(c.node, elem)
	if c.list.front == c.node {
		c.list.front = fresh
	}
	c.list.size++
}

// seed bootstraps an empty list with its first node and puts the cursor on
// it.
func (c *Cursor[T]) seed(elem T) {
	fresh := xnode.New(elem)
	c.node = fresh
	c.list.front = fresh
	c.list.back = fresh
	c.list.size++
}
