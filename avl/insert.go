// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Insert - insert a new node into the tree
//
// an existing key only has its value overwritten, no balance changes.
// returns true if a node was added
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	n, added := tree.attach(key, value)
	if !added {
		tree.stats.updates.Increment()
		return false
	}
	tree.stats.inserts.Increment()

	p := n.up
	if nil == p {
		return true
	}

	// the parent already had a child on the other side, so
	// its height did not change
	if nil != p.left && nil != p.right {
		p.balance = 0
		return true
	}

	if p.left == n {
		p.balance = -1
	} else {
		p.balance = +1
	}
	tree.insertFix(p, n)
	return true
}

// internal: the sub-tree at p has grown by one level because of its
// child n, walk up adjusting balance until the growth is absorbed
func (tree *Tree[K, V]) insertFix(p *Node[K, V], n *Node[K, V]) {
	for {
		g := p.up
		if nil == g {
			return
		}
		if p.left != n && p.right != n {
			fault.Panicf("avl: insert fix: %v is not a child of %v", n.key, p.key)
		}

		if g.left == p {
			// left branch has grown
			g.balance -= 1
			switch g.balance {
			case 0:
				return
			case -1:
				p, n = g, p
				continue
			default: // -2
				tree.rotateRight(p)
				return
			}
		}

		// right branch has grown
		g.balance += 1
		switch g.balance {
		case 0:
			return
		case +1:
			p, n = g, p
		default: // +2
			tree.rotateLeft(p)
			return
		}
	}
}
