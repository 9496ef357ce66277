// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/workload"
)

func TestNewContainerKinds(t *testing.T) {
	for _, tree := range []string{workload.TreeAVL, workload.TreeBST} {
		for _, keys := range []string{workload.KeysString, workload.KeysInteger} {
			c, err := workload.NewContainer(tree, keys)
			assert.Nil(t, err, "%s/%s", tree, keys)
			assert.NotNil(t, c, "%s/%s", tree, keys)
		}
	}

	_, err := workload.NewContainer("heap", workload.KeysString)
	assert.Equal(t, fault.ErrInvalidTreeKind, err, "tree kind")

	_, err = workload.NewContainer(workload.TreeAVL, "float")
	assert.Equal(t, fault.ErrInvalidKeyKind, err, "key kind")
}

func TestContainerKeyOrdering(t *testing.T) {
	keys := []string{"10", "9", "100", "-3"}

	integer, err := workload.NewContainer(workload.TreeAVL, workload.KeysInteger)
	require.Nil(t, err, "integer container")
	text, err := workload.NewContainer(workload.TreeAVL, workload.KeysString)
	require.Nil(t, err, "string container")

	for _, k := range keys {
		_, err := integer.Insert(k, "v"+k)
		require.Nil(t, err, "insert: %s", k)
		_, err = text.Insert(k, "v"+k)
		require.Nil(t, err, "insert: %s", k)
	}

	assert.Equal(t, []string{"-3", "9", "10", "100"}, integer.Keys(), "numeric order")
	assert.Equal(t, []string{"-3", "10", "100", "9"}, text.Keys(), "lexical order")
}

func TestContainerInvalidIntegerKey(t *testing.T) {
	c, err := workload.NewContainer(workload.TreeBST, workload.KeysInteger)
	require.Nil(t, err, "container")

	_, err = c.Insert("ten", "10")
	assert.Equal(t, fault.ErrInvalidKey, err, "insert")
	_, _, err = c.Remove("ten")
	assert.Equal(t, fault.ErrInvalidKey, err, "remove")
	_, err = c.Get("ten")
	assert.Equal(t, fault.ErrInvalidKey, err, "get")
	_, err = c.Find("ten")
	assert.Equal(t, fault.ErrInvalidKey, err, "find")
	assert.Equal(t, 0, c.Count(), "count")
}

func TestContainerOperations(t *testing.T) {
	c, err := workload.NewContainer(workload.TreeAVL, workload.KeysInteger)
	require.Nil(t, err, "container")

	for _, k := range []string{"1", "2", "3"} {
		added, err := c.Insert(k, "v"+k)
		assert.Nil(t, err, "insert: %s", k)
		assert.True(t, added, "insert: %s", k)
	}
	added, err := c.Insert("2", "two")
	assert.Nil(t, err, "overwrite")
	assert.False(t, added, "overwrite reported as new")

	value, err := c.Get("2")
	assert.Nil(t, err, "get")
	assert.Equal(t, "two", value, "get value")

	_, err = c.Get("4")
	assert.Equal(t, fault.ErrKeyNotFound, err, "get absent")

	found, err := c.Find("4")
	assert.Nil(t, err, "find absent")
	assert.False(t, found, "find absent")

	assert.Equal(t, uint64(1), c.Rotations(), "rotations")
	assert.Equal(t, 2, c.Height(), "height")
	assert.True(t, c.IsBalanced(), "balanced")

	var b bytes.Buffer
	depth := c.Fprint(&b, 0)
	assert.Equal(t, 2, depth, "print depth")
	assert.True(t, strings.Contains(b.String(), "2 → two"), "print data: %s", b.String())

	value, ok, err := c.Remove("1")
	assert.Nil(t, err, "remove")
	assert.True(t, ok, "remove")
	assert.Equal(t, "v1", value, "remove value")

	c.Clear()
	assert.Equal(t, 0, c.Count(), "count after clear")
	assert.Equal(t, []string{}, c.Keys(), "keys after clear")
}

func TestBSTContainerHasNoRotations(t *testing.T) {
	c, err := workload.NewContainer(workload.TreeBST, workload.KeysInteger)
	require.Nil(t, err, "container")

	for _, k := range []string{"1", "2", "3", "4"} {
		_, err := c.Insert(k, "")
		require.Nil(t, err, "insert: %s", k)
	}
	assert.Equal(t, uint64(0), c.Rotations(), "rotations")
	assert.Equal(t, 4, c.Height(), "height")
	assert.False(t, c.IsBalanced(), "balanced")
}
