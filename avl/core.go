// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/avltree/fault"
)

// CompareFunc - ordering of keys: negative if a < b, zero if equal,
// positive if a > b
type CompareFunc[K any] func(a K, b K) int

// structural base shared by BST and Tree
type core[K, V any] struct {
	root    *Node[K, V]
	count   int
	compare CompareFunc[K]
}

// natural ordering for the builtin ordered types
func orderedCompare[K constraints.Ordered](a K, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// IsEmpty - true if tree contains no data
func (tree *core[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *core[K, V]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *core[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Find - iterator positioned at key, or End if the key is absent
func (tree *core[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{node: tree.find(key)}
}

// Search - the node holding key, nil if absent
func (tree *core[K, V]) Search(key K) *Node[K, V] {
	return tree.find(key)
}

// Clear - remove every node
//
// nodes are unlinked in post-order so that any iterator still
// holding a node cannot reach the rest of the old tree
func (tree *core[K, V]) Clear() {
	stack := make([]*Node[K, V], 0, 64)
	var last *Node[K, V]
	p := tree.root
	for p != nil || len(stack) > 0 {
		if p != nil {
			stack = append(stack, p)
			p = p.left
			continue
		}
		top := stack[len(stack)-1]
		if top.right != nil && top.right != last {
			p = top.right
			continue
		}
		stack = stack[:len(stack)-1]
		top.left = nil
		top.right = nil
		top.up = nil
		top.balance = 0
		last = top
	}
	tree.root = nil
	tree.count = 0
}

// internal: binary search for a key
func (tree *core[K, V]) find(key K) *Node[K, V] {
	p := tree.root
	for p != nil {
		switch c := tree.compare(p.key, key); {
		case c > 0: // p.key > key
			p = p.left
		case c < 0: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// internal: structural insert
//
// overwrite the value if key exists, otherwise descend to an empty
// slot and attach a new node there.  returns the node holding key and
// whether it was newly created
func (tree *core[K, V]) attach(key K, value V) (*Node[K, V], bool) {
	if nil == tree.root {
		tree.root = &Node[K, V]{key: key, value: value}
		tree.count += 1
		return tree.root, true
	}

	p := tree.root
	for {
		c := tree.compare(p.key, key)
		switch {
		case c > 0: // p.key > key
			if nil == p.left {
				n := &Node[K, V]{key: key, value: value, up: p}
				p.left = n
				tree.count += 1
				return n, true
			}
			p = p.left
		case c < 0: // p.key < key
			if nil == p.right {
				n := &Node[K, V]{key: key, value: value, up: p}
				p.right = n
				tree.count += 1
				return n, true
			}
			p = p.right
		default:
			p.value = value
			return p, false
		}
	}
}

// internal: remove a node having at most one child, the child (if
// any) takes its place
func (tree *core[K, V]) unlink(p *Node[K, V]) {
	if nil != p.left && nil != p.right {
		fault.Panicf("avl: unlink of node with two children: %v", p.key)
	}
	child := p.left
	if nil == child {
		child = p.right
	}
	tree.replaceChild(p.up, p, child)
	p.left = nil
	p.right = nil
	p.up = nil
	tree.count -= 1
}

// internal: point parent's link (or the root) that held old at replacement
func (tree *core[K, V]) replaceChild(parent *Node[K, V], old *Node[K, V], replacement *Node[K, V]) {
	if nil != replacement {
		replacement.up = parent
	}
	switch {
	case nil == parent:
		tree.root = replacement
	case old == parent.left:
		parent.left = replacement
	default:
		parent.right = replacement
	}
}

// internal: exchange the positions of two nodes
//
// every link that pointed at n1 points at n2 afterwards and vice
// versa, including the case where one is the parent of the other
func (tree *core[K, V]) nodeSwap(n1 *Node[K, V], n2 *Node[K, V]) {
	if n1 == n2 || nil == n1 || nil == n2 {
		return
	}

	p1, l1, r1 := n1.up, n1.left, n1.right
	p2, l2, r2 := n2.up, n2.left, n2.right
	n1IsLeft := n1.isLeft()
	n2IsLeft := n2.isLeft()

	n1.up, n1.left, n1.right = p2, l2, r2
	n2.up, n2.left, n2.right = p1, l1, r1

	// adjacent nodes would now point at themselves
	switch n2 {
	case l1:
		n2.left = n1
		n1.up = n2
	case r1:
		n2.right = n1
		n1.up = n2
	}
	switch n1 {
	case l2:
		n1.left = n2
		n2.up = n1
	case r2:
		n1.right = n2
		n2.up = n1
	}

	// neighbours of n1 now belong to n2
	if nil != p1 && p1 != n2 {
		if n1IsLeft {
			p1.left = n2
		} else {
			p1.right = n2
		}
	}
	if nil != l1 && l1 != n2 {
		l1.up = n2
	}
	if nil != r1 && r1 != n2 {
		r1.up = n2
	}

	// neighbours of n2 now belong to n1
	if nil != p2 && p2 != n1 {
		if n2IsLeft {
			p2.left = n1
		} else {
			p2.right = n1
		}
	}
	if nil != l2 && l2 != n1 {
		l2.up = n1
	}
	if nil != r2 && r2 != n1 {
		r2.up = n1
	}

	if tree.root == n1 {
		tree.root = n2
	} else if tree.root == n2 {
		tree.root = n1
	}
}

// internal: node with the largest key smaller than p's key, nil if p
// is the minimum
func predecessor[K, V any](p *Node[K, V]) *Node[K, V] {
	if nil != p.left {
		return p.left.last()
	}
	for nil != p.up {
		if p.up.right == p {
			return p.up
		}
		p = p.up
	}
	return nil
}

// internal: node with the smallest key larger than p's key, nil if p
// is the maximum
func successor[K, V any](p *Node[K, V]) *Node[K, V] {
	if nil != p.right {
		return p.right.first()
	}
	for nil != p.up {
		if p.up.left == p {
			return p.up
		}
		p = p.up
	}
	return nil
}
