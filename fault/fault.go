// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrInvalidKey            = InvalidError("key is invalid")
	ErrInvalidKeyKind        = InvalidError("key kind is invalid")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidOperation      = InvalidError("operation is invalid")
	ErrInvalidPrintDepth     = InvalidError("print depth is invalid")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrInvalidTreeKind       = InvalidError("tree kind is invalid")
	ErrKeyNotFound           = NotFoundError("key not found")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrRequiredConfigFile    = InvalidError("config file is required")
	ErrTreeInconsistent      = ProcessError("tree node count is inconsistent")
	ErrTreeUnbalanced        = ProcessError("tree is not balanced")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
