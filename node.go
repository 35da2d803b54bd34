package rbtree

import "cmp"

// color of a node. The zero value is black so that zeroed shells and
// the sentinel start out black.
type color uint8

const (
	black color = iota
	red
)

// node is a single cell of one or more version trees.
//
// Once a node is reachable from a published version its key, value,
// color and child pointers are frozen. The exceptions are shareCount,
// which mutators and the reclaimer keep adjusting, and nodes that a
// running mutation has allocated but not yet published, which are
// freely mutable until the new version is visible.
//
// shareCount tracks structural sharing: it is the number of incoming
// references to this node across all live versions, child edges and
// version root pointers alike, minus the one reference that owns it.
// A node with shareCount == 0 is therefore exclusive to a single
// version, and the reclaimer may free it when that version goes away.
type node[K cmp.Ordered, V any] struct {
	left  *node[K, V]
	right *node[K, V]
	key   K
	value V
	color color

	shareCount int
}

// newLeaf returns a fresh red leaf, both children terminated by the
// tree's sentinel, not yet reachable from any version.
func (t *Tree[K, V]) newLeaf(key K, value V) *node[K, V] {
	return &node[K, V]{
		left:  t.nilNode,
		right: t.nilNode,
		key:   key,
		value: value,
		color: red,
	}
}

// cloneOf returns an unpublished copy of src carrying its key, value
// and color. The children are left for the caller to wire up.
func cloneOf[K cmp.Ordered, V any](src *node[K, V]) *node[K, V] {
	return &node[K, V]{
		key:   src.key,
		value: src.value,
		color: src.color,
	}
}

// retain records one more incoming reference to n and returns n, so
// that child links of freshly cloned nodes can be assigned in one
// expression. The sentinel is never counted.
func (t *Tree[K, V]) retain(n *node[K, V]) *node[K, V] {
	if n != t.nilNode {
		n.shareCount++
	}
	return n
}
