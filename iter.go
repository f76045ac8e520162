package chain

import (
	"github.com/bradenaw/juniper/iterator"

	"github.com/awenger/chain/internal/xnode"
)

// forwardIter walks next links only and never touches the list itself.
type forwardIter[T any] struct {
	next *xnode.Node[T]
}

var _ iterator.Iterator[int] = &forwardIter[int]{}

func (it *forwardIter[T]) Next() (T, bool) {
	if it.next == nil {
		var zero T
		return zero, false
	}
	elem := it.next.Elem()
	it.next = it.next.Next()
	return elem, true
}
