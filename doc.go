// Package rbtree provides a fully persistent ordered map backed by a
// red-black tree with path copying.
//
// Every mutating operation (Insert, InsertOrAssign, Delete) produces a
// new, immutable version of the map while leaving every previously
// published version observably unchanged. Unmodified subtrees are
// shared between versions rather than copied, so each operation costs
// O(log n) time and O(log n) freshly allocated nodes, not O(n).
//
// Sharing is tracked with a per-node share count rather than a garbage
// collector over the whole node graph: removing a version walks only
// the nodes that version uniquely owns, so removal costs the size of
// that version's exclusive spine, not the size of the map.
//
// The tree is single-threaded: no method here synchronizes access.
// Callers that share a Tree across goroutines must serialize mutators
// and RemoveVersion against each other and against readers that might
// touch an overlapping subtree.
package rbtree
