package rbtree

import "cmp"

// Tree is a fully persistent ordered map from K to V.
//
// Mutators never modify a published version. Each Insert,
// InsertOrAssign or Delete clones only the nodes on the path it
// touches and publishes the result as a new version; everything off
// that path stays shared with the dependent version. Versions live in
// a registry until they are explicitly removed with
// [Tree.RemoveVersion] or [Tree.Clear].
//
// The zero value is not usable, construct with [New].
type Tree[K cmp.Ordered, V any] struct {
	// nilNode is this tree's shared black terminator. Every absent
	// child points here and the empty tree is rooted here. It links
	// to itself so traversals need no nil checks, and it is excluded
	// from share counting and reclamation.
	nilNode *node[K, V]

	// versionNil anchors the circular doubly linked version registry.
	// versionNil.next is the most recently published version and
	// versionNil.prev the oldest. Its root is the empty tree, so it
	// doubles as the version handle of the empty map.
	versionNil *Version[K, V]
}

// New returns an empty map whose registry holds only the sentinel
// version.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	t := new(Tree[K, V])

	t.nilNode = &node[K, V]{color: black}
	t.nilNode.left = t.nilNode
	t.nilNode.right = t.nilNode

	t.versionNil = &Version[K, V]{root: t.nilNode}
	t.versionNil.next = t.versionNil
	t.versionNil.prev = t.versionNil

	return t
}
