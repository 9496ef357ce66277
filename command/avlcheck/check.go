// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// shape of one tree
type shape struct {
	Height    int    `json:"height"`
	Balanced  bool   `json:"balanced"`
	Rotations uint64 `json:"rotations"`
	Widths    []int  `json:"widths"`
}

type report struct {
	Lines int   `json:"lines"`
	Count int   `json:"count"`
	AVL   shape `json:"avl"`
	BST   shape `json:"bst"`

	draw func(w io.Writer, maxDepth int) int
}

func readKeysFrom(name string) ([]string, error) {
	if "-" == name {
		return readKeys(os.Stdin)
	}
	f, err := os.Open(name)
	if nil != err {
		return nil, err
	}
	defer f.Close()
	return readKeys(f)
}

// one key per line, trimmed, skipping blanks and comments
func readKeys(r io.Reader) ([]string, error) {
	keys := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if "" == s || strings.HasPrefix(s, "#") {
			continue
		}
		keys = append(keys, s)
	}
	return keys, scanner.Err()
}

func parseIntegers(keys []string) ([]int64, error) {
	integers := make([]int64, len(keys))
	for i, k := range keys {
		n, err := strconv.ParseInt(k, 10, 64)
		if nil != err {
			return nil, fmt.Errorf("key: %q: %w", k, fault.ErrInvalidKey)
		}
		integers[i] = n
	}
	return integers, nil
}

// build both trees from the same insert sequence
func measure[K constraints.Ordered](keys []K, lines int) *report {
	balanced := avl.New[K, struct{}]()
	plain := avl.NewBST[K, struct{}]()
	for _, k := range keys {
		balanced.Insert(k, struct{}{})
		plain.Insert(k, struct{}{})
	}

	stats := balanced.Stats()
	return &report{
		Lines: lines,
		Count: balanced.Count(),
		AVL: shape{
			Height:    balanced.Height(),
			Balanced:  balanced.IsBalanced(),
			Rotations: stats.LeftRotations + stats.RightRotations,
			Widths:    widths(balanced.Root()),
		},
		BST: shape{
			Height:   plain.Height(),
			Balanced: plain.IsBalanced(),
			Widths:   widths(plain.Root()),
		},
		draw: func(w io.Writer, maxDepth int) int {
			return balanced.Fprint(w, maxDepth, false)
		},
	}
}

// number of nodes on each level, one breadth-first pass
func widths[K, V any](root *avl.Node[K, V]) []int {
	w := []int{}
	level := []*avl.Node[K, V]{}
	if nil != root {
		level = append(level, root)
	}
	for len(level) > 0 {
		w = append(w, len(level))
		next := make([]*avl.Node[K, V], 0, 2*len(level))
		for _, p := range level {
			if l := p.Left(); nil != l {
				next = append(next, l)
			}
			if r := p.Right(); nil != r {
				next = append(next, r)
			}
		}
		level = next
	}
	return w
}

func (r *report) write(w io.Writer) {
	fmt.Fprintf(w, "lines: %d  unique keys: %d\n", r.Lines, r.Count)
	fmt.Fprintf(w, "avl: height: %d  balanced: %t  rotations: %d  widths: %v\n", r.AVL.Height, r.AVL.Balanced, r.AVL.Rotations, r.AVL.Widths)
	fmt.Fprintf(w, "bst: height: %d  balanced: %t  widths: %v\n", r.BST.Height, r.BST.Balanced, r.BST.Widths)
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
