// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

// shape - render a sub-tree as key(left,right) with "-" for nil
func shape(p *Node[int, string]) string {
	if nil == p {
		return "-"
	}
	if nil == p.left && nil == p.right {
		return strconv.Itoa(p.key)
	}
	return strconv.Itoa(p.key) + "(" + shape(p.left) + "," + shape(p.right) + ")"
}

func insertAll(keys ...int) *Tree[int, string] {
	tree := New[int, string]()
	for _, k := range keys {
		tree.Insert(k, "v"+strconv.Itoa(k))
	}
	return tree
}

func assertValid(t *testing.T, tree *Tree[int, string]) {
	t.Helper()
	assert.True(t, tree.CheckUp(), "parent links")
	assert.True(t, tree.IsOrdered(), "ordering")
	assert.True(t, tree.IsBalanced(), "height balance")
	assert.True(t, tree.CheckBalance(), "stored balance factors")
}

func TestRotateRightRight(t *testing.T) {
	tree := insertAll(10, 20, 30)
	assertValid(t, tree)

	assert.Equal(t, "20(10,30)", shape(tree.root), "wrong shape")
	assert.Equal(t, 0, tree.root.Balance(), "root balance")
	assert.Equal(t, 0, tree.root.left.Balance(), "left balance")
	assert.Equal(t, 0, tree.root.right.Balance(), "right balance")

	stats := tree.Stats()
	assert.Equal(t, uint64(1), stats.LeftRotations, "left rotations")
	assert.Equal(t, uint64(0), stats.RightRotations, "right rotations")
	assert.Equal(t, uint64(3), stats.Inserts, "inserts")
}

func TestRotateLeftLeft(t *testing.T) {
	tree := insertAll(30, 20, 10)
	assertValid(t, tree)

	assert.Equal(t, "20(10,30)", shape(tree.root), "wrong shape")
	stats := tree.Stats()
	assert.Equal(t, uint64(0), stats.LeftRotations, "left rotations")
	assert.Equal(t, uint64(1), stats.RightRotations, "right rotations")
}

func TestRotateLeftRight(t *testing.T) {
	tree := insertAll(30, 10, 20)
	assertValid(t, tree)

	assert.Equal(t, "20(10,30)", shape(tree.root), "wrong shape")
	stats := tree.Stats()
	assert.Equal(t, uint64(1), stats.LeftRotations, "left rotations")
	assert.Equal(t, uint64(1), stats.RightRotations, "right rotations")
}

func TestRotateRightLeft(t *testing.T) {
	tree := insertAll(10, 30, 20)
	assertValid(t, tree)

	assert.Equal(t, "20(10,30)", shape(tree.root), "wrong shape")
	stats := tree.Stats()
	assert.Equal(t, uint64(1), stats.LeftRotations, "left rotations")
	assert.Equal(t, uint64(1), stats.RightRotations, "right rotations")
}

// the double rotation must distribute the middle node's children
func TestRotateDoubleWithSubtrees(t *testing.T) {
	tree := insertAll(50, 20, 80, 10, 40, 30)
	assertValid(t, tree)

	assert.Equal(t, "40(20(10,30),50(-,80))", shape(tree.root), "wrong shape")
	assert.Equal(t, 0, tree.root.Balance(), "root balance")
	assert.Equal(t, 0, tree.root.left.Balance(), "left balance")
	assert.Equal(t, +1, tree.root.right.Balance(), "right balance")
}

func TestSequentialInsertStaysBalanced(t *testing.T) {
	tree := New[int, string]()
	for i := 1; i <= 1023; i += 1 {
		tree.Insert(i, "")
	}
	assertValid(t, tree)
	assert.Equal(t, 10, tree.Height(), "perfect tree height")
	assert.Equal(t, 1023, tree.Count(), "count")
}

func TestOverwriteCountsUpdate(t *testing.T) {
	tree := insertAll(1, 2, 3)
	added := tree.Insert(2, "two")
	assert.False(t, added, "overwrite reported as new")
	assert.Equal(t, 3, tree.Count(), "count")
	assert.Equal(t, "two", tree.find(2).value, "value not replaced")

	stats := tree.Stats()
	assert.Equal(t, uint64(1), stats.Updates, "updates")

	tree.ResetStats()
	assert.Equal(t, Stats{}, tree.Stats(), "stats after reset")
}
