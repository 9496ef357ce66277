// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"io"

	"github.com/bitmark-inc/avltree/fault"
)

// tree kinds
const (
	TreeAVL = "avl"
	TreeBST = "bst"
)

// key kinds
const (
	KeysString  = "string"
	KeysInteger = "integer"
)

//go:generate mockgen -source=container.go -destination=mocks/container.go -package=mocks

// Container - string keyed view of a tree
type Container interface {
	Insert(key string, value string) (bool, error)
	Remove(key string) (string, bool, error)
	Get(key string) (string, error)
	Find(key string) (bool, error)
	Clear()
	Count() int
	Height() int
	IsBalanced() bool
	Keys() []string
	Rotations() uint64
	Fprint(w io.Writer, maxDepth int) int
}

// NewContainer - create an empty container for a tree kind and a key kind
func NewContainer(treeKind string, keyKind string) (Container, error) {
	switch keyKind {
	case KeysString:
		return newContainer(treeKind, parseString, formatString)
	case KeysInteger:
		return newContainer(treeKind, parseInteger, formatInteger)
	default:
		return nil, fault.ErrInvalidKeyKind
	}
}
