// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

func TestEmptyTree(t *testing.T) {
	tree := avl.New[int, string]()

	assert.True(t, tree.IsEmpty(), "not empty")
	assert.Equal(t, 0, tree.Count(), "count")
	assert.True(t, tree.Begin().Equal(tree.End()), "begin is not end")
	assert.False(t, tree.Find(1).Valid(), "find on empty tree")
	assert.Nil(t, tree.First(), "first")
	assert.Nil(t, tree.Last(), "last")
	assert.True(t, tree.IsBalanced(), "empty tree is balanced")
	assert.Equal(t, 0, tree.Height(), "height")

	_, err := tree.Get(1)
	assert.Equal(t, fault.ErrKeyNotFound, err, "get on empty tree")
	assert.True(t, fault.IsErrNotFound(err), "error class")
}

func TestFindAndGet(t *testing.T) {
	tree := avl.New[string, int]()
	tree.Insert("b", 2)
	tree.Insert("a", 1)
	tree.Insert("c", 3)

	it := tree.Find("b")
	assert.True(t, it.Valid(), "find b")
	assert.Equal(t, "b", it.Key(), "key")
	assert.Equal(t, 2, it.Value(), "value")

	it = tree.Find("x")
	assert.True(t, it.Equal(tree.End()), "absent key not at end")

	value, err := tree.Get("c")
	assert.Nil(t, err, "get c")
	assert.Equal(t, 3, value, "value")

	value, err = tree.Get("x")
	assert.Equal(t, fault.ErrKeyNotFound, err, "get x")
	assert.Equal(t, 0, value, "zero value")

	assert.True(t, tree.Has("a"), "has a")
	assert.False(t, tree.Has("x"), "has x")
}

func TestIteratorSetValue(t *testing.T) {
	tree := avl.New[int, string]()
	for i := 1; i <= 5; i += 1 {
		tree.Insert(i, "old")
	}

	for it := tree.Begin(); it.Valid(); it.Next() {
		it.SetValue("new")
	}
	tree.Walk(func(key int, value string) bool {
		assert.Equal(t, "new", value, "key: %d", key)
		return true
	})
	assert.True(t, tree.CheckBalance(), "structure changed")
}

func TestIteratorNextAtEnd(t *testing.T) {
	tree := avl.New[int, int]()
	tree.Insert(1, 1)

	it := tree.Begin()
	it.Next()
	assert.False(t, it.Valid(), "past last item")
	it.Next()
	assert.True(t, it.Equal(tree.End()), "next at end moved")
}

func TestWalkStops(t *testing.T) {
	tree := avl.New[int, int]()
	for i := 10; i > 0; i -= 1 {
		tree.Insert(i, i*i)
	}

	seen := []int{}
	tree.Walk(func(key int, value int) bool {
		seen = append(seen, key)
		return key < 4
	})
	assert.Equal(t, []int{1, 2, 3, 4}, seen, "walk")
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, tree.Keys(), "keys")
}

func TestClear(t *testing.T) {
	tree := avl.New[int, int]()
	for i := 0; i < 100; i += 1 {
		tree.Insert(i, i)
	}
	tree.Clear()

	assert.True(t, tree.IsEmpty(), "not empty")
	assert.Equal(t, 0, tree.Count(), "count")
	assert.Equal(t, uint64(100), tree.Stats().Deletes, "cleared nodes not counted as deletes")
	assert.True(t, tree.Begin().Equal(tree.End()), "begin is not end")

	tree.Insert(7, 49)
	assert.Equal(t, 1, tree.Count(), "count after insert")
	assert.True(t, tree.CheckBalance(), "balance after clear")
}

func TestPrint(t *testing.T) {
	tree := avl.New[int, string]()
	assert.Equal(t, "|------+ empty\n", tree.String(), "empty")

	tree.Insert(2, "v2")
	tree.Insert(1, "v1")
	tree.Insert(3, "v3")

	var b bytes.Buffer
	depth := tree.Fprint(&b, 0, false)
	assert.Equal(t, 2, depth, "depth")
	expected := "       /------+ 3 ^2\n" +
		"|------+ 2 ^<nil>\n" +
		"       \\------+ 1 ^2\n"
	assert.Equal(t, expected, b.String(), "print")

	b.Reset()
	depth = tree.Fprint(&b, 1, true)
	assert.Equal(t, 2, depth, "depth beyond limit")
	assert.Equal(t, "|------+ 2 → v2 ^<nil> +0\n", b.String(), "limited print")
}
