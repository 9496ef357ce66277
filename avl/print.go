// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultPrintDepth - number of levels rendered by String
const DefaultPrintDepth = 5

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
func (tree *core[K, V]) Print(printData bool) int {
	return tree.Fprint(os.Stdout, 0, printData)
}

// Fprint - write an ASCII graphic representation of the tree to w,
// at most maxDepth levels (zero for all levels); the right sub-tree
// is drawn above a node and the left below it.
//
// returns the depth of the tree, which can be more than was drawn
func (tree *core[K, V]) Fprint(w io.Writer, maxDepth int, printData bool) int {
	return printTree(w, tree.root, "", root, 1, maxDepth, printData)
}

// String - rendering of the first DefaultPrintDepth levels
func (tree *core[K, V]) String() string {
	if nil == tree.root {
		return "|------+ empty\n"
	}
	var b strings.Builder
	tree.Fprint(&b, DefaultPrintDepth, true)
	return b.String()
}

// internal print - returns the maximum depth of the tree
func printTree[K, V any](w io.Writer, tree *Node[K, V], prefix string, br branch, level int, maxDepth int, printData bool) int {
	if nil == tree {
		return 0
	}
	if maxDepth > 0 && level > maxDepth {
		// only measure the rest
		h, _ := postOrder(tree, nil)
		return h
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right, level+1, maxDepth, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if nil != tree.up {
		up = tree.up.key
	}
	if printData {
		fmt.Fprintf(w, "%v → %v ^%v %+d\n", tree.key, tree.value, up, tree.balance)
	} else {
		fmt.Fprintf(w, "%v ^%v\n", tree.key, up)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left, level+1, maxDepth, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
