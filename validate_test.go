package rbtree

import (
	"cmp"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// kv is a key/value pair as the checkers expect them, in ascending
// key order.
type kv[K cmp.Ordered, V any] struct {
	key K
	val V
}

// blackHeight returns the number of black nodes on every path from n
// down to a leaf, or -1 if the subtree violates a red-black property:
// a red node with a red child, or two paths with different black
// counts.
func blackHeight[K cmp.Ordered, V any](tr *Tree[K, V], n *node[K, V]) int {
	if n == tr.nilNode {
		return 1
	}
	if n.color == red && (n.left.color != black || n.right.color != black) {
		return -1
	}
	l := blackHeight(tr, n.left)
	r := blackHeight(tr, n.right)
	if l == -1 || r == -1 || l != r {
		return -1
	}
	if n.color == black {
		l++
	}
	return l
}

// collectForward walks v with CBegin/Next and returns the visited
// pairs in visit order.
func collectForward[K cmp.Ordered, V any](t *testing.T, tr *Tree[K, V], v *Version[K, V]) []kv[K, V] {
	t.Helper()

	var pairs []kv[K, V]
	end := tr.CEnd()
	for it := tr.CBegin(v); !it.Equal(end); {
		pairs = append(pairs, kv[K, V]{it.Key(), it.Value()})
		require.NoError(t, it.Next())
	}
	return pairs
}

// collectBackward exhausts an iterator of v and walks it back with
// Prev, returning the visited pairs in visit order.
func collectBackward[K cmp.Ordered, V any](t *testing.T, tr *Tree[K, V], v *Version[K, V]) []kv[K, V] {
	t.Helper()

	it := tr.CBegin(v)
	end := tr.CEnd()
	for !it.Equal(end) {
		require.NoError(t, it.Next())
	}

	var pairs []kv[K, V]
	for {
		require.NoError(t, it.Prev())
		if it.Equal(end) {
			return pairs
		}
		pairs = append(pairs, kv[K, V]{it.Key(), it.Value()})
	}
}

// checkVersion asserts that v is red-black valid and holds exactly
// want, in ascending key order.
func checkVersion[K cmp.Ordered, V any](t *testing.T, tr *Tree[K, V], v *Version[K, V], want []kv[K, V]) {
	t.Helper()

	require.NotEqual(t, -1, blackHeight(tr, v.root), "red-black violation")

	got := collectForward(t, tr, v)
	require.Equal(t, len(want), len(got), "version size")
	for i := range want {
		require.Equal(t, want[i], got[i], "pair %d", i)
	}
	for i := 1; i < len(got); i++ {
		require.Less(t, got[i-1].key, got[i].key, "keys out of order")
	}
}

// checkAllVersions asserts red-black validity and strict key ordering
// for every live version.
func checkAllVersions[K cmp.Ordered, V any](t *testing.T, tr *Tree[K, V]) {
	t.Helper()

	for v := range tr.Versions() {
		require.NotEqual(t, -1, blackHeight(tr, v.root), "red-black violation")
		got := collectForward(t, tr, v)
		for i := 1; i < len(got); i++ {
			require.Less(t, got[i-1].key, got[i].key, "keys out of order")
		}
	}
}

// reachable returns the set of non-sentinel nodes reachable from any
// live version of tr.
func reachable[K cmp.Ordered, V any](tr *Tree[K, V]) map[*node[K, V]]bool {
	seen := map[*node[K, V]]bool{}
	var walk func(n *node[K, V])
	walk = func(n *node[K, V]) {
		if n == tr.nilNode || seen[n] {
			return
		}
		seen[n] = true
		walk(n.left)
		walk(n.right)
	}
	for v := range tr.Versions() {
		walk(v.root)
	}
	return seen
}

// checkShareCounts recomputes, for every reachable node, the number
// of incoming references across all live versions, child edges plus
// version root pointers, and asserts that the stored share count is
// that number minus the one owning reference.
func checkShareCounts[K cmp.Ordered, V any](t *testing.T, tr *Tree[K, V]) {
	t.Helper()

	seen := reachable(tr)
	refs := map[*node[K, V]]int{}
	for n := range seen {
		if n.left != tr.nilNode {
			refs[n.left]++
		}
		if n.right != tr.nilNode {
			refs[n.right]++
		}
	}
	for v := range tr.Versions() {
		if v.root != tr.nilNode {
			refs[v.root]++
		}
	}

	for n := range seen {
		require.Equal(t, refs[n]-1, n.shareCount, "share count for key %v", n.key)
	}
}

// sortedPairs converts a model map into the ascending pair slice the
// checkers expect.
func sortedPairs[K cmp.Ordered, V any](m map[K]V) []kv[K, V] {
	pairs := make([]kv[K, V], 0, len(m))
	for k, v := range m {
		pairs = append(pairs, kv[K, V]{k, v})
	}
	slices.SortFunc(pairs, func(a, b kv[K, V]) int {
		return cmp.Compare(a.key, b.key)
	})
	return pairs
}
