// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

// Script - a complete workload as read from a Lua file
type Script struct {
	Tree       string      `gluamapper:"tree" json:"tree"`
	Keys       string      `gluamapper:"keys" json:"keys"`
	Check      bool        `gluamapper:"check" json:"check"`
	PrintDepth int         `gluamapper:"print_depth" json:"print_depth"`
	Operations []Operation `gluamapper:"operations" json:"operations"`
}

// LoadScript - read a Lua workload file, applying defaults for the
// tree kind, key kind and print depth
func LoadScript(fileName string) (*Script, error) {
	script := &Script{
		Tree:       TreeAVL,
		Keys:       KeysString,
		PrintDepth: avl.DefaultPrintDepth,
	}
	if err := configuration.ParseConfigurationFile(fileName, script); nil != err {
		return nil, err
	}
	if err := script.Validate(); nil != err {
		return nil, err
	}
	return script, nil
}

// Validate - check kinds and operation names
func (s *Script) Validate() error {
	switch s.Tree {
	case TreeAVL, TreeBST:
	default:
		return fmt.Errorf("tree: %q: %w", s.Tree, fault.ErrInvalidTreeKind)
	}
	switch s.Keys {
	case KeysString, KeysInteger:
	default:
		return fmt.Errorf("keys: %q: %w", s.Keys, fault.ErrInvalidKeyKind)
	}
	if s.PrintDepth < 0 {
		return fault.ErrInvalidPrintDepth
	}
	for i, op := range s.Operations {
		if err := op.Validate(); nil != err {
			return fmt.Errorf("operation %d: %q: %w", i+1, op.Op, err)
		}
	}
	return nil
}

// Execute - run the script against a new container
func (s *Script) Execute(output io.Writer, log *logger.L) (Result, error) {
	c, err := NewContainer(s.Tree, s.Keys)
	if nil != err {
		return Result{}, err
	}
	r, err := NewRunner(c, s.Check, s.PrintDepth, output, log)
	if nil != err {
		return Result{}, err
	}
	log.Infof("tree: %s  keys: %s  check: %t  operations: %d", s.Tree, s.Keys, s.Check, len(s.Operations))
	return r.Run(s.Operations)
}
