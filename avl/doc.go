// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - ordered key/value containers: an AVL balanced tree
// and the plain (unbalanced) binary search tree it is built on.  Both
// keep parent pointers to allow iteration through the nodes.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Keys are unique: an insert with an existing key overwrites the
// value.  Delete does not copy data around, a node keeps its key and
// value for its whole life, only its position in the tree changes.
//
// Direct access with Get fails with fault.ErrKeyNotFound for a
// missing key, while Find returns the End iterator instead.
package avl
