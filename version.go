package rbtree

import (
	"cmp"
	"iter"
)

// Version identifies one published state of the map.
//
// A Version is an opaque handle: it pins its tree of nodes for as
// long as it stays in the registry, and no later mutation changes the
// set of pairs reachable through it. Handles stay valid until the
// version is removed with [Tree.RemoveVersion] or [Tree.Clear];
// using a removed version afterwards is a caller error.
type Version[K cmp.Ordered, V any] struct {
	prev, next *Version[K, V]
	root       *node[K, V]
	removed    bool
}

// publish splices v in behind the registry sentinel so it becomes the
// current version. Readers observe the new version only through this
// single pointer store, there is no partially published state.
func (t *Tree[K, V]) publish(v *Version[K, V]) {
	v.prev = t.versionNil
	v.next = t.versionNil.next
	v.next.prev = v
	t.versionNil.next = v
}

// Current returns the most recently published live version, or the
// sentinel version of the empty map if none has been published yet.
//
// Mutators called without an explicit dependent version resolve it
// through Current at call time, so a sequence of plain Insert calls
// chains naturally, each one building on its predecessor.
func (t *Tree[K, V]) Current() *Version[K, V] {
	return t.versionNil.next
}

// Versions returns an iterator over all live published versions,
// newest first. The sentinel version is not included.
func (t *Tree[K, V]) Versions() iter.Seq[*Version[K, V]] {
	return func(yield func(*Version[K, V]) bool) {
		for v := t.versionNil.next; v != t.versionNil; v = v.next {
			if !yield(v) {
				return
			}
		}
	}
}
