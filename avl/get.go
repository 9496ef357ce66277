// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Get - direct access to the value stored under key
//
// fails with fault.ErrKeyNotFound if the key is not in the tree
func (tree *core[K, V]) Get(key K) (V, error) {
	p := tree.find(key)
	if nil == p {
		var zero V
		return zero, fault.ErrKeyNotFound
	}
	return p.value, nil
}

// Has - true if key is in the tree
func (tree *core[K, V]) Has(key K) bool {
	return nil != tree.find(key)
}
