// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"math/rand"
	"strconv"
)

// percentage split of generated operations
const (
	insertPercent = 60
	removePercent = 25
)

// Generate - a reproducible random mix of inserts, removes and gets
// on integer keys in the range [0, keySpace)
func Generate(n int, keySpace int, seed int64) []Operation {
	if n <= 0 || keySpace <= 0 {
		return []Operation{}
	}

	r := rand.New(rand.NewSource(seed))
	operations := make([]Operation, n)
	for i := range operations {
		key := strconv.Itoa(r.Intn(keySpace))
		switch p := r.Intn(100); {
		case p < insertPercent:
			operations[i] = Operation{Op: OpInsert, Key: key, Value: "v" + key}
		case p < insertPercent+removePercent:
			operations[i] = Operation{Op: OpRemove, Key: key}
		default:
			operations[i] = Operation{Op: OpGet, Key: key}
		}
	}
	return operations
}
