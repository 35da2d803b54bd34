package rbtree

// RemoveVersion retires v from the registry and frees every node that
// only v could reach.
//
// The walk descends a subtree only while its root is exclusive to v.
// At the first shared node on each branch it stops, drops v's
// incoming reference from that node's share count and treats it as a
// leaf, so the cost is the size of v's exclusive spine, not the size
// of the map. Iterators pinned to v must not be used afterwards.
//
// Removing the sentinel version returns [ErrSentinelVersion], and an
// already removed version returns [ErrVersionNotFound]; the registry
// is untouched in both cases.
func (t *Tree[K, V]) RemoveVersion(v *Version[K, V]) error {
	if v == t.versionNil {
		return ErrSentinelVersion
	}
	if v.removed {
		return ErrVersionNotFound
	}

	t.reclaim(v.root)

	v.prev.next = v.next
	v.next.prev = v.prev
	v.prev = nil
	v.next = nil
	v.root = nil
	v.removed = true

	return nil
}

// reclaim frees the subtree under n as far as the departing version
// owns it exclusively.
func (t *Tree[K, V]) reclaim(n *node[K, V]) {
	if n == t.nilNode {
		return
	}
	if n.shareCount > 0 {
		// Still reachable elsewhere. The departing version's edge is
		// gone, the subtree below stays intact.
		n.shareCount--
		return
	}

	t.reclaim(n.left)
	t.reclaim(n.right)

	// Sever the freed cell so a stale iterator trips instead of
	// silently reading reclaimed memory.
	n.left = nil
	n.right = nil
}

// Clear removes every published version, oldest first, until only the
// sentinel remains and the map is empty.
func (t *Tree[K, V]) Clear() {
	for t.versionNil.prev != t.versionNil {
		_ = t.RemoveVersion(t.versionNil.prev)
	}
}
