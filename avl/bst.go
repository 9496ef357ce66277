// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"
)

// BST - an unbalanced binary search tree
//
// shares all lookup, iteration and diagnostic operations with Tree,
// but never rotates so its height depends on insertion order
type BST[K, V any] struct {
	core[K, V]
}

// NewBST - create an initially empty unbalanced tree using the
// natural ordering of K
func NewBST[K constraints.Ordered, V any]() *BST[K, V] {
	return NewBSTWithCompare[K, V](orderedCompare[K])
}

// NewBSTWithCompare - create an initially empty unbalanced tree
// ordered by compare
func NewBSTWithCompare[K, V any](compare CompareFunc[K]) *BST[K, V] {
	return &BST[K, V]{
		core: core[K, V]{compare: compare},
	}
}

// Insert - insert a new node into the tree, or overwrite the value if
// the key already exists; returns true if a node was added
func (tree *BST[K, V]) Insert(key K, value V) bool {
	_, added := tree.attach(key, value)
	return added
}

// Delete - removes a specific item from the tree
//
// a node with two children first swaps places with its in-order
// predecessor so that the node to remove has at most one child
func (tree *BST[K, V]) Delete(key K) (V, bool) {
	p := tree.find(key)
	if nil == p {
		var zero V
		return zero, false
	}
	if nil != p.left && nil != p.right {
		tree.nodeSwap(p, predecessor(p))
	}
	tree.unlink(p)
	return p.value, true
}
