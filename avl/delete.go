// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes a specific item from the tree
//
// returns the removed value and true, or false if the key was absent
func (tree *Tree[K, V]) Delete(key K) (V, bool) {
	q := tree.find(key)
	if nil == q { // key not in tree
		var zero V
		return zero, false
	}

	// two children: swap places with the predecessor, which has no
	// right child, so that q can be unlinked directly
	if nil != q.left && nil != q.right {
		tree.nodeSwap(q, predecessor(q))
	}

	p := q.up
	diff := int8(0)
	if nil != p {
		if p.left == q {
			diff = +1 // left branch will shrink
		} else {
			diff = -1 // right branch will shrink
		}
	}

	tree.unlink(q)
	tree.stats.deletes.Increment()
	tree.removeFix(p, diff)

	return q.value, true
}

// internal: one branch of p has shrunk by a level, diff is the
// change in p's balance.  walk up until the height change is absorbed
func (tree *Tree[K, V]) removeFix(p *Node[K, V], diff int8) {
	for nil != p {

		// where to continue if this sub-tree also shrinks, the
		// rotations below keep the top at the same parent link
		up := p.up
		upDiff := int8(0)
		if nil != up {
			if up.left == p {
				upDiff = +1
			} else {
				upDiff = -1
			}
		}

		p.balance += diff
		switch p.balance {
		case 0:
			// was leaning to the shrunk side: now lower by one
		case +1, -1:
			// was even: height unchanged
			return
		case +2:
			if _, shorter := tree.rotateLeft(p.right); !shorter {
				return
			}
		case -2:
			if _, shorter := tree.rotateRight(p.left); !shorter {
				return
			}
		}

		p, diff = up, upDiff
	}
}

// internal: nodeSwap with the balance factor staying with the
// position rather than the node
func (tree *Tree[K, V]) nodeSwap(n1 *Node[K, V], n2 *Node[K, V]) {
	if n1 == n2 || nil == n1 || nil == n2 {
		return
	}
	tree.core.nodeSwap(n1, n2)
	n1.balance, n2.balance = n2.balance, n1.balance
}
