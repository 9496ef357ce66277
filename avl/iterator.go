// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Iterator - cursor over the nodes of a tree in key order
//
// the zero value is the End position.  an iterator becomes invalid
// if the node it refers to is deleted or the tree is cleared
type Iterator[K, V any] struct {
	node *Node[K, V]
}

// First - return the node with the lowest key value
func (tree *core[K, V]) First() *Node[K, V] {
	return tree.root.first()
}

// Last - return the node with the highest key value
func (tree *core[K, V]) Last() *Node[K, V] {
	return tree.root.last()
}

// Begin - iterator at the lowest key, End for an empty tree
func (tree *core[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{node: tree.root.first()}
}

// End - the past-the-end iterator
func (tree *core[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{}
}

// Walk - call fn for each item in key order until it returns false
func (tree *core[K, V]) Walk(fn func(key K, value V) bool) {
	for p := tree.root.first(); nil != p; p = successor(p) {
		if !fn(p.key, p.value) {
			return
		}
	}
}

// Keys - all keys in order
func (tree *core[K, V]) Keys() []K {
	keys := make([]K, 0, tree.count)
	tree.Walk(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// internal: lowest node in a sub-tree
func (tree *Node[K, V]) first() *Node[K, V] {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// internal: highest node in a sub-tree
func (tree *Node[K, V]) last() *Node[K, V] {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (tree *Node[K, V]) Next() *Node[K, V] {
	return successor(tree)
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (tree *Node[K, V]) Prev() *Node[K, V] {
	return predecessor(tree)
}

// Valid - false at the End position
func (it Iterator[K, V]) Valid() bool {
	return nil != it.node
}

// Node - the current node, nil at End
func (it Iterator[K, V]) Node() *Node[K, V] {
	return it.node
}

// Key - key at the current position, must not be called at End
func (it Iterator[K, V]) Key() K {
	return it.node.key
}

// Value - value at the current position, must not be called at End
func (it Iterator[K, V]) Value() V {
	return it.node.value
}

// SetValue - replace the value at the current position, the tree
// structure is not affected
func (it Iterator[K, V]) SetValue(value V) {
	it.node.value = value
}

// Equal - true if both iterators refer to the same node, or both are
// at End
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.node == other.node
}

// Next - advance to the in-order successor; a no-op at End
func (it *Iterator[K, V]) Next() {
	if nil != it.node {
		it.node = successor(it.node)
	}
}
