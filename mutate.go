package rbtree

import "cmp"

// Mutators all follow the same walk. A new version is published
// first, rooted at the sentinel, then the dependent tree is descended
// from its root. Every visited node is cloned into the new spine and
// the child the search does not follow is re-attached shared, with
// its share count bumped. The slots of the fresh spine are recorded
// on a path stack so the fixups can reach parent and grandparent
// without parent pointers.

// dependentOrCurrent resolves the optional trailing dependent version
// argument of the mutators. The default is the current version at
// call time, resolved before the new version is spliced in.
func (t *Tree[K, V]) dependentOrCurrent(dependent []*Version[K, V]) *Version[K, V] {
	if len(dependent) > 0 && dependent[0] != nil {
		return dependent[0]
	}
	return t.Current()
}

// Insert publishes a new version that contains key mapped to value
// and returns an iterator to the inserted node within it.
//
// The dependent version is not modified; omitting it inserts against
// [Tree.Current]. If the key already exists the new version carries
// the old value unchanged and the second result is false. Note that
// such a no-op insert still publishes a distinct, content-equal
// version; use the returned iterator's [Iterator.Version] to address
// it.
func (t *Tree[K, V]) Insert(key K, value V, dependent ...*Version[K, V]) (*Iterator[K, V], bool) {
	dep := t.dependentOrCurrent(dependent)
	return t.insert(key, value, dep)
}

// InsertOrAssign is like Insert, but on an existing key the new
// version maps key to value instead of keeping the old one. The
// second result still reports whether the key was newly inserted.
//
// The overwrite happens on the node just cloned for the new version,
// which no other version can reach, so every earlier version keeps
// its prior value.
func (t *Tree[K, V]) InsertOrAssign(key K, value V, dependent ...*Version[K, V]) (*Iterator[K, V], bool) {
	dep := t.dependentOrCurrent(dependent)

	it, inserted := t.insert(key, value, dep)
	if !inserted {
		it.node.value = value
	}
	return it, inserted
}

// insert implements Insert against an explicit dependent version.
func (t *Tree[K, V]) insert(key K, value V, dep *Version[K, V]) (*Iterator[K, V], bool) {
	newVersion := &Version[K, V]{root: t.nilNode}
	t.publish(newVersion)

	var path []**node[K, V]
	slot := &newVersion.root
	depNow := dep.root

	for depNow != t.nilNode {
		clone := cloneOf(depNow)
		*slot = clone
		path = append(path, slot)

		switch cmp.Compare(key, depNow.key) {
		case 0:
			// Key exists. Both subtrees stay shared, no fixup needed.
			clone.left = t.retain(depNow.left)
			clone.right = t.retain(depNow.right)
			return &Iterator[K, V]{node: clone, tree: t, version: newVersion}, false

		case -1:
			clone.right = t.retain(depNow.right)
			depNow = depNow.left
			slot = &clone.left

		default:
			clone.left = t.retain(depNow.left)
			depNow = depNow.right
			slot = &clone.right
		}
	}

	leaf := t.newLeaf(key, value)
	*slot = leaf
	path = append(path, slot)
	t.insertFixup(path)

	return &Iterator[K, V]{node: leaf, tree: t, version: newVersion}, true
}

// Delete publishes a new version without key and reports whether the
// key existed in the dependent version.
//
// The dependent version is not modified; omitting it deletes against
// [Tree.Current]. When the key is absent the new version is still
// published and is simply a distinct handle onto the same logical
// map.
func (t *Tree[K, V]) Delete(key K, dependent ...*Version[K, V]) (*Version[K, V], bool) {
	dep := t.dependentOrCurrent(dependent)

	newVersion := &Version[K, V]{root: t.nilNode}
	t.publish(newVersion)

	var path []**node[K, V]
	slot := &newVersion.root
	depNow := dep.root

	for depNow != t.nilNode {
		if key == depNow.key {
			isBlackRemoved := depNow.color == black

			switch {
			case depNow.left == t.nilNode:
				// At most one child, it replaces the removed node.
				*slot = t.retain(depNow.right)
				path = append(path, slot)

			case depNow.right == t.nilNode:
				*slot = t.retain(depNow.left)
				path = append(path, slot)

			default:
				// Two children. A placeholder shell takes the removed
				// node's place and color and will receive the in-order
				// successor's key and value once the descent reaches it.
				shell := &node[K, V]{color: depNow.color}
				shell.left = t.retain(depNow.left)
				*slot = shell
				path = append(path, slot)

				slot = &shell.right
				depNow = depNow.right
				for depNow.left != t.nilNode {
					clone := cloneOf(depNow)
					clone.right = t.retain(depNow.right)
					*slot = clone
					path = append(path, slot)

					depNow = depNow.left
					slot = &clone.left
				}

				// depNow is the successor. It is removed from its old
				// position, so the extra black to repair is its own.
				shell.key = depNow.key
				shell.value = depNow.value
				isBlackRemoved = depNow.color == black
				*slot = t.retain(depNow.right)
				path = append(path, slot)
			}

			// Removing a black node leaves the replacement slot one
			// black short on every path through it.
			if isBlackRemoved {
				t.deleteFixup(path)
			}
			return newVersion, true
		}

		clone := cloneOf(depNow)
		*slot = clone
		path = append(path, slot)

		if cmp.Less(key, depNow.key) {
			clone.right = t.retain(depNow.right)
			depNow = depNow.left
			slot = &clone.left
		} else {
			clone.left = t.retain(depNow.left)
			depNow = depNow.right
			slot = &clone.right
		}
	}

	*slot = t.nilNode
	return newVersion, false
}
