package rbtree

import (
	"cmp"

	"github.com/pkg/errors"
)

// search descends from root comparing keys and returns the node
// holding key, or the sentinel when the key is absent.
func (t *Tree[K, V]) search(root *node[K, V], key K) *node[K, V] {
	n := root
	for n != t.nilNode {
		switch cmp.Compare(key, n.key) {
		case 0:
			return n
		case -1:
			n = n.left
		default:
			n = n.right
		}
	}
	return t.nilNode
}

// minimum returns the leftmost node of the subtree, or the sentinel
// for an empty subtree.
func (t *Tree[K, V]) minimum(subTreeRoot *node[K, V]) *node[K, V] {
	for subTreeRoot.left != t.nilNode {
		subTreeRoot = subTreeRoot.left
	}
	return subTreeRoot
}

// maximum returns the rightmost node of the subtree, or the sentinel
// for an empty subtree.
func (t *Tree[K, V]) maximum(subTreeRoot *node[K, V]) *node[K, V] {
	for subTreeRoot.right != t.nilNode {
		subTreeRoot = subTreeRoot.right
	}
	return subTreeRoot
}

// successor returns the in-order successor of n within version v, or
// the sentinel when n is the maximum.
//
// Nodes carry no parent pointers, a parent link in a shared subtree
// could not be updated without breaking older versions. Instead the
// tree is re-descended from v's root, remembering the last node where
// the descent turned left; when n has no right subtree that node is
// the successor. The descent doubles as the reachability check: if it
// runs out without passing through n itself, n does not belong to v
// and ErrOrphanNode is returned.
func (t *Tree[K, V]) successor(v *Version[K, V], n *node[K, V]) (*node[K, V], error) {
	succ := t.nilNode
	cur := v.root
	for cur != t.nilNode {
		if cur == n {
			if n.right != t.nilNode {
				return t.minimum(n.right), nil
			}
			return succ, nil
		}
		if cmp.Less(n.key, cur.key) {
			succ = cur
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return nil, errors.Wrapf(ErrOrphanNode, "successor of key %v", n.key)
}

// predecessor returns the in-order predecessor of n within version v,
// or the sentinel when n is the minimum. The mirror image of
// [Tree.successor], including the reachability contract.
func (t *Tree[K, V]) predecessor(v *Version[K, V], n *node[K, V]) (*node[K, V], error) {
	pred := t.nilNode
	cur := v.root
	for cur != t.nilNode {
		if cur == n {
			if n.left != t.nilNode {
				return t.maximum(n.left), nil
			}
			return pred, nil
		}
		if cmp.Less(cur.key, n.key) {
			pred = cur
			cur = cur.right
		} else {
			cur = cur.left
		}
	}
	return nil, errors.Wrapf(ErrOrphanNode, "predecessor of key %v", n.key)
}
