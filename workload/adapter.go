// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"io"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// the operations shared by both tree types
type tree[K any] interface {
	Insert(key K, value string) bool
	Delete(key K) (string, bool)
	Get(key K) (string, error)
	Find(key K) avl.Iterator[K, string]
	Clear()
	Count() int
	Height() int
	IsBalanced() bool
	Keys() []K
	Fprint(w io.Writer, maxDepth int, printData bool) int
}

type container[K any] struct {
	tree      tree[K]
	parse     func(string) (K, error)
	format    func(K) string
	rotations func() uint64
}

func newContainer[K constraints.Ordered](treeKind string, parse func(string) (K, error), format func(K) string) (Container, error) {
	switch treeKind {
	case TreeAVL:
		t := avl.New[K, string]()
		return &container[K]{
			tree:   t,
			parse:  parse,
			format: format,
			rotations: func() uint64 {
				s := t.Stats()
				return s.LeftRotations + s.RightRotations
			},
		}, nil
	case TreeBST:
		return &container[K]{
			tree:      avl.NewBST[K, string](),
			parse:     parse,
			format:    format,
			rotations: func() uint64 { return 0 },
		}, nil
	default:
		return nil, fault.ErrInvalidTreeKind
	}
}

func parseString(s string) (string, error) {
	return s, nil
}

func formatString(s string) string {
	return s
}

func parseInteger(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if nil != err {
		return 0, fault.ErrInvalidKey
	}
	return n, nil
}

func formatInteger(n int64) string {
	return strconv.FormatInt(n, 10)
}

func (c *container[K]) Insert(key string, value string) (bool, error) {
	k, err := c.parse(key)
	if nil != err {
		return false, err
	}
	return c.tree.Insert(k, value), nil
}

func (c *container[K]) Remove(key string) (string, bool, error) {
	k, err := c.parse(key)
	if nil != err {
		return "", false, err
	}
	value, ok := c.tree.Delete(k)
	return value, ok, nil
}

func (c *container[K]) Get(key string) (string, error) {
	k, err := c.parse(key)
	if nil != err {
		return "", err
	}
	return c.tree.Get(k)
}

func (c *container[K]) Find(key string) (bool, error) {
	k, err := c.parse(key)
	if nil != err {
		return false, err
	}
	return c.tree.Find(k).Valid(), nil
}

func (c *container[K]) Clear() {
	c.tree.Clear()
}

func (c *container[K]) Count() int {
	return c.tree.Count()
}

func (c *container[K]) Height() int {
	return c.tree.Height()
}

func (c *container[K]) IsBalanced() bool {
	return c.tree.IsBalanced()
}

func (c *container[K]) Keys() []string {
	keys := c.tree.Keys()
	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = c.format(k)
	}
	return s
}

func (c *container[K]) Rotations() uint64 {
	return c.rotations()
}

func (c *container[K]) Fprint(w io.Writer, maxDepth int) int {
	return c.tree.Fprint(w, maxDepth, true)
}
