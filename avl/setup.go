// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/avltree/counter"
)

// Tree - type to hold the root node of an AVL balanced tree
type Tree[K, V any] struct {
	core[K, V]
	stats statistics
}

// running totals for a tree
type statistics struct {
	inserts        counter.Counter
	updates        counter.Counter
	deletes        counter.Counter
	leftRotations  counter.Counter
	rightRotations counter.Counter
}

// Stats - snapshot of a tree's operation counters
//
// a double rotation counts as one left and one right rotation
type Stats struct {
	Inserts        uint64 `json:"inserts"`
	Updates        uint64 `json:"updates"`
	Deletes        uint64 `json:"deletes"`
	LeftRotations  uint64 `json:"leftRotations"`
	RightRotations uint64 `json:"rightRotations"`
}

// New - create an initially empty tree using the natural ordering of K
func New[K constraints.Ordered, V any]() *Tree[K, V] {
	return NewWithCompare[K, V](orderedCompare[K])
}

// NewWithCompare - create an initially empty tree ordered by compare
func NewWithCompare[K, V any](compare CompareFunc[K]) *Tree[K, V] {
	return &Tree[K, V]{
		core: core[K, V]{compare: compare},
	}
}

// Stats - read the counters
func (tree *Tree[K, V]) Stats() Stats {
	return Stats{
		Inserts:        tree.stats.inserts.Uint64(),
		Updates:        tree.stats.updates.Uint64(),
		Deletes:        tree.stats.deletes.Uint64(),
		LeftRotations:  tree.stats.leftRotations.Uint64(),
		RightRotations: tree.stats.rightRotations.Uint64(),
	}
}

// ResetStats - zero all counters
func (tree *Tree[K, V]) ResetStats() {
	tree.stats.inserts.Reset()
	tree.stats.updates.Reset()
	tree.stats.deletes.Reset()
	tree.stats.leftRotations.Reset()
	tree.stats.rightRotations.Reset()
}

// Clear - remove every node, each counted as a delete
func (tree *Tree[K, V]) Clear() {
	tree.stats.deletes.Add(uint64(tree.count))
	tree.core.Clear()
}
