package rbtree

import (
	"cmp"

	"github.com/pkg/errors"
)

// Iterator is a bidirectional cursor over one version of the map.
//
// An iterator pins the version it was created against: Next and Prev
// always traverse that version, so later mutations never change what
// an outstanding iterator observes. The only operation that
// invalidates an iterator is removing its version.
type Iterator[K cmp.Ordered, V any] struct {
	node    *node[K, V]
	tree    *Tree[K, V]
	version *Version[K, V]
}

// Key returns the key under the cursor. Undefined at the end
// position.
func (it *Iterator[K, V]) Key() K {
	return it.node.key
}

// Value returns the value under the cursor. Undefined at the end
// position.
func (it *Iterator[K, V]) Value() V {
	return it.node.value
}

// Version returns the version this iterator traverses. It is nil for
// the shared end iterator from [Tree.CEnd].
func (it *Iterator[K, V]) Version() *Version[K, V] {
	return it.version
}

// Equal reports whether both iterators rest on the same node. The
// versions are not compared: iterators of different versions compare
// equal when both versions share the node, and unequal where one
// holds a clone of it. Any exhausted iterator compares equal to
// [Tree.CEnd].
func (it *Iterator[K, V]) Equal(other *Iterator[K, V]) bool {
	return it.node == other.node
}

// Next advances to the in-order successor, or to the end position
// after the maximum. Advancing an iterator already at the end is a
// no-op. Returns [ErrOrphanNode] if the node under the cursor is not
// reachable from the iterator's version.
func (it *Iterator[K, V]) Next() error {
	if it.node == it.tree.nilNode {
		return nil
	}
	n, err := it.tree.successor(it.version, it.node)
	if err != nil {
		return err
	}
	it.node = n
	return nil
}

// Prev steps back to the in-order predecessor. From the end position
// it moves to the maximum of the iterator's version, so a full
// descending traversal starts by exhausting Next and then walking
// Prev. Stepping back from the minimum lands on the end position
// again. Returns [ErrOrphanNode] for a node not reachable from the
// iterator's version, and for the version-less [Tree.CEnd] handle.
func (it *Iterator[K, V]) Prev() error {
	if it.node == it.tree.nilNode {
		if it.version == nil {
			return errors.Wrap(ErrOrphanNode, "decrement of the detached end iterator")
		}
		it.node = it.tree.maximum(it.version.root)
		return nil
	}
	n, err := it.tree.predecessor(it.version, it.node)
	if err != nil {
		return err
	}
	it.node = n
	return nil
}

// Find returns an iterator to key within version v, or one equal to
// [Tree.CEnd] when the key is absent.
func (t *Tree[K, V]) Find(key K, v *Version[K, V]) *Iterator[K, V] {
	return &Iterator[K, V]{node: t.search(v.root, key), tree: t, version: v}
}

// At returns the value mapped to key within version v, or
// [ErrKeyNotFound] when the key is absent.
func (t *Tree[K, V]) At(key K, v *Version[K, V]) (V, error) {
	n := t.search(v.root, key)
	if n == t.nilNode {
		var zero V
		return zero, errors.Wrapf(ErrKeyNotFound, "at key %v", key)
	}
	return n.value, nil
}

// CBegin returns an iterator on the minimum of version v, or one
// equal to [Tree.CEnd] when v is empty.
func (t *Tree[K, V]) CBegin(v *Version[K, V]) *Iterator[K, V] {
	return &Iterator[K, V]{node: t.minimum(v.root), tree: t, version: v}
}

// CEnd returns the past-the-end iterator. It carries no version and
// compares equal to every exhausted iterator of this tree.
func (t *Tree[K, V]) CEnd() *Iterator[K, V] {
	return &Iterator[K, V]{node: t.nilNode, tree: t}
}
