package xnode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLink(t *testing.T) {
	a := New(1)
	b := New(2)
	Link(a, b)
	require.Same(t, b, a.Next())
	require.Same(t, a, b.Prev())
	require.Nil(t, a.Prev())
	require.Nil(t, b.Next())
}

func TestInsertBetween(t *testing.T) {
	a := New(1)
	c := New(3)
	Link(a, c)
	b := InsertBetween(New(2), a, c)
	require.Same(t, b, a.Next())
	require.Same(t, a, b.Prev())
	require.Same(t, c, b.Next())
	require.Same(t, b, c.Prev())
}

func TestInsertNewAfter(t *testing.T) {
	a := New(1)

	// a is the chain's end, so the new node becomes the end.
	b := InsertNewAfter(a, 3)
	require.Same(t, b, a.Next())
	require.Same(t, a, b.Prev())
	require.Nil(t, b.Next())

	// a now has a next, so the new node is spliced between.
	mid := InsertNewAfter(a, 2)
	require.Same(t, mid, a.Next())
	require.Same(t, b, mid.Next())
	require.Same(t, mid, b.Prev())
	require.Equal(t, 2, mid.Elem())
}

func TestInsertNewBefore(t *testing.T) {
	c := New(3)

	a := InsertNewBefore(c, 1)
	require.Same(t, a, c.Prev())
	require.Same(t, c, a.Next())
	require.Nil(t, a.Prev())

	mid := InsertNewBefore(c, 2)
	require.Same(t, mid, c.Prev())
	require.Same(t, a, mid.Prev())
	require.Same(t, mid, a.Next())
	require.Equal(t, 2, mid.Elem())
}

func TestUnlinkNext(t *testing.T) {
	a := New(1)
	b := New(2)
	Link(a, b)

	got := UnlinkNext(a)
	require.Same(t, b, got)
	require.Nil(t, b.Prev())
	// a's own link is deliberately left stale.
	require.Same(t, b, a.Next())

	require.Nil(t, UnlinkNext(b))
}

func TestUnlinkPrev(t *testing.T) {
	a := New(1)
	b := New(2)
	Link(a, b)

	got := UnlinkPrev(b)
	require.Same(t, a, got)
	require.Nil(t, a.Next())
	require.Same(t, a, b.Prev())

	require.Nil(t, UnlinkPrev(a))
}

func TestTakeElem(t *testing.T) {
	n := New("hello")
	require.Equal(t, "hello", TakeElem(n))
	require.Nil(t, n.Next())
	require.Nil(t, n.Prev())
	require.Equal(t, "", n.Elem())
}

func TestElemRef(t *testing.T) {
	n := New(1)
	*n.ElemRef() = 7
	require.Equal(t, 7, n.Elem())
}
