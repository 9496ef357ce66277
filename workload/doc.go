// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package workload - drive the trees from scripted operation lists
//
// a script selects the tree kind (avl or bst) and the key kind
// (string or integer) and supplies a list of operations.  the Runner
// applies them through a string keyed Container, logging each step
// and optionally verifying the balance after every change.
package workload
