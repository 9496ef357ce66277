// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
//
// the balance field is only maintained by the AVL Tree, the plain
// BST leaves it at zero
type Node[K, V any] struct {
	left    *Node[K, V] // left sub-tree
	right   *Node[K, V] // right sub-tree
	up      *Node[K, V] // points to parent node
	key     K           // key part for ordering
	value   V           // value part for data storage
	balance int8        // -1, 0, +1 (±2 only during rebalancing)
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// Parent - return parent node of a node
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.up
}

// Left - return the left child of a node
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.left
}

// Right - return the right child of a node
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.right
}

// Balance - height of right sub-tree minus height of left sub-tree
func (p *Node[K, V]) Balance() int {
	return int(p.balance)
}

// Depth - get the depth of a node, the root is at depth zero
func (p *Node[K, V]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// ChildrenByDepth - returns all descendants at a specific depth
// below this node, in key order
func (p *Node[K, V]) ChildrenByDepth(depth uint) []*Node[K, V] {
	nodes := []*Node[K, V]{}

	if depth == 0 {
		nodes = append(nodes, p)
	} else {
		if p.left != nil {
			nodes = append(nodes, p.left.ChildrenByDepth(depth-1)...)
		}
		if p.right != nil {
			nodes = append(nodes, p.right.ChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// true if p is the left child of its parent
func (p *Node[K, V]) isLeft() bool {
	return p.up != nil && p.up.left == p
}
