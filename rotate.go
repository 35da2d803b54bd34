package rbtree

import "cmp"

// Rotations operate on a pointer slot, the location that currently
// holds the subtree root, and rewire exactly two child links. The
// caller owns every node a rotation touches, so rotations neither
// allocate nor clone nor adjust share counts.

// rotateLeft rewrites slot to the subtree root's right child.
func rotateLeft[K cmp.Ordered, V any](slot **node[K, V]) {
	newRoot := (*slot).right
	(*slot).right = newRoot.left
	newRoot.left = *slot
	*slot = newRoot
}

// rotateRight rewrites slot to the subtree root's left child.
func rotateRight[K cmp.Ordered, V any](slot **node[K, V]) {
	newRoot := (*slot).left
	(*slot).left = newRoot.right
	newRoot.right = *slot
	*slot = newRoot
}
