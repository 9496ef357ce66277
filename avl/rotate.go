// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// internal: rebalance the parent of pivot, which is left heavy by
// two levels; pivot is its left child.
//
//   pivot.balance <= 0: single LL rotation, pivot becomes the top
//   pivot.balance == +1: double LR rotation, pivot's right child
//                        becomes the top
//
// returns the new top of the sub-tree and true if the sub-tree is
// one level lower than before the rotation
func (tree *Tree[K, V]) rotateRight(pivot *Node[K, V]) (*Node[K, V], bool) {
	p := pivot.up
	if nil == p || p.left != pivot {
		fault.Panicf("avl: rotate right: %v is not a left child", pivot.key)
	}

	if pivot.balance <= 0 {
		// single LL rotation
		tree.rotateRightAt(p)
		if 0 == pivot.balance {
			// only possible after a delete
			p.balance = -1
			pivot.balance = +1
			return pivot, false
		}
		p.balance = 0
		pivot.balance = 0
		return pivot, true
	}

	// double LR rotation
	p2 := pivot.right
	tree.rotateLeftAt(pivot)
	tree.rotateRightAt(p)
	switch p2.balance {
	case -1:
		pivot.balance = 0
		p.balance = +1
	case +1:
		pivot.balance = -1
		p.balance = 0
	default:
		pivot.balance = 0
		p.balance = 0
	}
	p2.balance = 0
	return p2, true
}

// internal: mirror of rotateRight, the parent of pivot is right heavy
// by two levels and pivot is its right child
func (tree *Tree[K, V]) rotateLeft(pivot *Node[K, V]) (*Node[K, V], bool) {
	p := pivot.up
	if nil == p || p.right != pivot {
		fault.Panicf("avl: rotate left: %v is not a right child", pivot.key)
	}

	if pivot.balance >= 0 {
		// single RR rotation
		tree.rotateLeftAt(p)
		if 0 == pivot.balance {
			// only possible after a delete
			p.balance = +1
			pivot.balance = -1
			return pivot, false
		}
		p.balance = 0
		pivot.balance = 0
		return pivot, true
	}

	// double RL rotation
	p2 := pivot.left
	tree.rotateRightAt(pivot)
	tree.rotateLeftAt(p)
	switch p2.balance {
	case +1:
		pivot.balance = 0
		p.balance = -1
	case -1:
		pivot.balance = +1
		p.balance = 0
	default:
		pivot.balance = 0
		p.balance = 0
	}
	p2.balance = 0
	return p2, true
}

// internal: single rotation moving p down to the right, its left
// child takes its place.  balance factors are left to the caller
func (tree *Tree[K, V]) rotateRightAt(p *Node[K, V]) {
	p1 := p.left
	p.left = p1.right
	if nil != p.left {
		p.left.up = p
	}
	tree.replaceChild(p.up, p, p1) // root or the parent's link
	p1.right = p
	p.up = p1
	tree.stats.rightRotations.Increment()
}

// internal: single rotation moving p down to the left, its right
// child takes its place.  balance factors are left to the caller
func (tree *Tree[K, V]) rotateLeftAt(p *Node[K, V]) {
	p1 := p.right
	p.right = p1.left
	if nil != p.right {
		p.right.up = p
	}
	tree.replaceChild(p.up, p, p1) // root or the parent's link
	p1.left = p
	p.up = p1
	tree.stats.leftRotations.Increment()
}
