// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// operation names
const (
	OpInsert = "insert"
	OpRemove = "remove"
	OpGet    = "get"
	OpFind   = "find"
	OpClear  = "clear"
	OpCheck  = "check"
	OpPrint  = "print"
)

// Operation - one step of a workload
type Operation struct {
	Op    string `gluamapper:"op" json:"op"`
	Key   string `gluamapper:"key" json:"key,omitempty"`
	Value string `gluamapper:"value" json:"value,omitempty"`
}

// String - compact form for logging
func (o Operation) String() string {
	switch o.Op {
	case OpInsert:
		return fmt.Sprintf("%s %q → %q", o.Op, o.Key, o.Value)
	case OpRemove, OpGet, OpFind:
		return fmt.Sprintf("%s %q", o.Op, o.Key)
	default:
		return o.Op
	}
}

// Validate - check the operation name is known
func (o Operation) Validate() error {
	switch o.Op {
	case OpInsert, OpRemove, OpGet, OpFind, OpClear, OpCheck, OpPrint:
		return nil
	default:
		return fault.ErrInvalidOperation
	}
}

// mutates - true for operations that can change the tree shape
func (o Operation) mutates() bool {
	return OpInsert == o.Op || OpRemove == o.Op || OpClear == o.Op
}
