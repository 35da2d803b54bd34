package rbtree

// The fixups are the classical red-black rebalancing cases, rewritten
// to run against the path stack of pointer slots a mutator builds
// while cloning its descent. Popping the stack stands in for parent
// and grandparent pointers, which shared nodes cannot carry. Every
// node reached through the stack is a clone owned by the running
// mutation; the only nodes fixup touches beyond the stack are the
// uncle and sibling neighbors, which cloneAndPlant copies on demand
// before they are recolored or rotated.

// cloneAndPlant replaces the shared node in slot with a freshly
// allocated copy the running mutation owns exclusively. The original
// keeps one incoming reference fewer and its children gain one each.
// A node that is already exclusive is left in place; cloning it again
// would strand the first copy with its children over-counted.
func (t *Tree[K, V]) cloneAndPlant(slot **node[K, V]) {
	orig := *slot
	if orig == t.nilNode || orig.shareCount == 0 {
		return
	}
	orig.shareCount--

	clone := cloneOf(orig)
	clone.left = t.retain(orig.left)
	clone.right = t.retain(orig.right)
	*slot = clone
}

// insertFixup restores the red-black properties after a red leaf has
// been linked into the slot on top of path.
func (t *Tree[K, V]) insertFixup(path []**node[K, V]) {
	node := *path[len(path)-1]
	path = path[:len(path)-1]

	for {
		if len(path) == 0 {
			node.color = black
			return
		}
		parentPtr := path[len(path)-1]
		path = path[:len(path)-1]
		if (*parentPtr).color == black {
			return
		}

		// The parent is red, so it cannot be the root and a
		// grandparent slot is still on the stack.
		grandPtr := path[len(path)-1]
		path = path[:len(path)-1]

		if *parentPtr == (*grandPtr).left {
			unclePtr := &(*grandPtr).right
			if (*unclePtr).color == red {
				// Red uncle: recolor and continue two levels up. The
				// uncle is off the cloned spine and must be copied
				// before its color changes.
				t.cloneAndPlant(unclePtr)
				(*unclePtr).color = black
				(*parentPtr).color = black
				(*grandPtr).color = red
				node = *grandPtr
				continue
			}

			if node == (*parentPtr).right {
				// Inner grandchild: rotate it to the outer position.
				// The grandparent slot is unaffected.
				node = *parentPtr
				rotateLeft(parentPtr)
			}
			(*parentPtr).color = black
			(*grandPtr).color = red
			rotateRight(grandPtr)
			return
		}

		unclePtr := &(*grandPtr).left
		if (*unclePtr).color == red {
			t.cloneAndPlant(unclePtr)
			(*unclePtr).color = black
			(*parentPtr).color = black
			(*grandPtr).color = red
			node = *grandPtr
			continue
		}

		if node == (*parentPtr).left {
			node = *parentPtr
			rotateRight(parentPtr)
		}
		(*parentPtr).color = black
		(*grandPtr).color = red
		rotateLeft(grandPtr)
		return
	}
}

// deleteFixup repairs the missing black after a black node has been
// removed. The slot on top of path holds the replacement carrying the
// extra black, either doubly black or red-and-black.
func (t *Tree[K, V]) deleteFixup(path []**node[K, V]) {
	nodeSlot := path[len(path)-1]
	path = path[:len(path)-1]

	for len(path) > 0 && (*nodeSlot).color == black {
		parentPtr := path[len(path)-1]
		path = path[:len(path)-1]

		if *nodeSlot == (*parentPtr).left {
			siblingPtr := &(*parentPtr).right

			if (*siblingPtr).color == red {
				// Case 1: red sibling. Rotate it over the parent so
				// the node gains a black sibling, then continue with
				// the cases below inside the same level. The rotated
				// slot goes back on the stack as the new grandparent.
				t.cloneAndPlant(siblingPtr)
				(*siblingPtr).color = black
				(*parentPtr).color = red
				rotateLeft(parentPtr)
				path = append(path, parentPtr)
				parentPtr = &(*parentPtr).left
				siblingPtr = &(*parentPtr).right
			}

			if (*siblingPtr).left.color == black && (*siblingPtr).right.color == black {
				// Case 2: both of the sibling's children black. Pull
				// a black out of both subtrees and move up a level.
				t.cloneAndPlant(siblingPtr)
				(*siblingPtr).color = red
				nodeSlot = parentPtr
				continue
			}

			if (*siblingPtr).right.color == black {
				// Case 3: near child red, far child black. Rotate the
				// near child over the sibling, producing case 4.
				t.cloneAndPlant(siblingPtr)
				t.cloneAndPlant(&(*siblingPtr).left)
				(*siblingPtr).left.color = black
				(*siblingPtr).color = red
				rotateRight(siblingPtr)
			}

			// Case 4: far child red. The sibling takes over the
			// parent's color and the rotation ends the repair.
			t.cloneAndPlant(siblingPtr)
			t.cloneAndPlant(&(*siblingPtr).right)
			(*siblingPtr).color = (*parentPtr).color
			(*parentPtr).color = black
			(*siblingPtr).right.color = black
			rotateLeft(parentPtr)
			break
		}

		siblingPtr := &(*parentPtr).left

		if (*siblingPtr).color == red {
			t.cloneAndPlant(siblingPtr)
			(*siblingPtr).color = black
			(*parentPtr).color = red
			rotateRight(parentPtr)
			path = append(path, parentPtr)
			parentPtr = &(*parentPtr).right
			siblingPtr = &(*parentPtr).left
		}

		if (*siblingPtr).left.color == black && (*siblingPtr).right.color == black {
			t.cloneAndPlant(siblingPtr)
			(*siblingPtr).color = red
			nodeSlot = parentPtr
			continue
		}

		if (*siblingPtr).left.color == black {
			t.cloneAndPlant(siblingPtr)
			t.cloneAndPlant(&(*siblingPtr).right)
			(*siblingPtr).right.color = black
			(*siblingPtr).color = red
			rotateLeft(siblingPtr)
		}

		t.cloneAndPlant(siblingPtr)
		t.cloneAndPlant(&(*siblingPtr).left)
		(*siblingPtr).color = (*parentPtr).color
		(*parentPtr).color = black
		(*siblingPtr).left.color = black
		rotateRight(parentPtr)
		break
	}

	// A red-and-black replacement absorbs the extra black by turning
	// black. It may still be shared with the dependent version, so it
	// is copied before the recolor; painting an already black node is
	// a no-op and skipped, which also leaves the sentinel untouched.
	if (*nodeSlot).color == red {
		t.cloneAndPlant(nodeSlot)
		(*nodeSlot).color = black
	}
}
