// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// CheckUp - check the up pointers for consistency
func (tree *core[K, V]) CheckUp() bool {
	if nil != tree.root && nil != tree.root.up {
		return false
	}
	ok := true
	postOrder(tree.root, func(p *Node[K, V], _ int, _ int) bool {
		if (nil != p.left && p.left.up != p) || (nil != p.right && p.right.up != p) {
			ok = false
		}
		return ok
	})
	return ok
}

// IsOrdered - every key is strictly greater than its in-order
// predecessor, and the number of nodes agrees with Count
func (tree *core[K, V]) IsOrdered() bool {
	n := 0
	var previous *Node[K, V]
	for p := tree.root.first(); nil != p; p = successor(p) {
		if nil != previous && tree.compare(previous.key, p.key) >= 0 {
			return false
		}
		previous = p
		n += 1
	}
	return n == tree.count
}

// IsBalanced - true if for every node the heights of its two
// sub-trees differ by at most one
func (tree *core[K, V]) IsBalanced() bool {
	_, ok := postOrder(tree.root, func(_ *Node[K, V], lh int, rh int) bool {
		return lh-rh <= 1 && rh-lh <= 1
	})
	return ok
}

// Height - number of levels, zero for an empty tree
func (tree *core[K, V]) Height() int {
	h, _ := postOrder(tree.root, nil)
	return h
}

// CheckBalance - true if every stored balance factor equals the
// difference of the actual sub-tree heights and is within ±1
func (tree *Tree[K, V]) CheckBalance() bool {
	_, ok := postOrder(tree.root, func(p *Node[K, V], lh int, rh int) bool {
		return int(p.balance) == rh-lh && p.balance >= -1 && p.balance <= +1
	})
	return ok
}

// internal: iterative post-order walk computing sub-tree heights
//
// visit is called for each node with the heights of its left and
// right sub-trees, a false result stops the walk.  returns the height
// of the tree and false if the walk was stopped
func postOrder[K, V any](root *Node[K, V], visit func(p *Node[K, V], lh int, rh int) bool) (int, bool) {
	type frame struct {
		p        *Node[K, V]
		expanded bool
	}

	stack := []frame{{p: root}}
	heights := make([]int, 0, 64)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if nil == f.p {
			heights = append(heights, 0)
			continue
		}
		if !f.expanded {
			// left is popped first, so its height is pushed first
			stack = append(stack, frame{p: f.p, expanded: true}, frame{p: f.p.right}, frame{p: f.p.left})
			continue
		}

		n := len(heights)
		lh, rh := heights[n-2], heights[n-1]
		heights = heights[:n-2]
		if nil != visit && !visit(f.p, lh, rh) {
			return 0, false
		}
		if lh > rh {
			heights = append(heights, 1+lh)
		} else {
			heights = append(heights, 1+rh)
		}
	}
	return heights[0], true
}
