// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"fmt"
	"io"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// Result - outcome counts of a run
type Result struct {
	Operations int           `json:"operations"`
	Inserted   int           `json:"inserted"`
	Updated    int           `json:"updated"`
	Removed    int           `json:"removed"`
	Found      int           `json:"found"`
	Missing    int           `json:"missing"`
	Cleared    int           `json:"cleared"`
	Checks     int           `json:"checks"`
	Count      int           `json:"count"`
	Height     int           `json:"height"`
	Balanced   bool          `json:"balanced"`
	Rotations  uint64        `json:"rotations"`
	Elapsed    time.Duration `json:"elapsed"`
}

// Runner - applies operations to a container
type Runner struct {
	log        *logger.L
	container  Container
	check      bool
	printDepth int
	output     io.Writer
	result     Result
	live       counter.Counter // nodes the container should hold
}

// NewRunner - create a runner
//
// check enables a balance verification after each change, output
// receives the print operation's drawings
func NewRunner(container Container, check bool, printDepth int, output io.Writer, log *logger.L) (*Runner, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if printDepth < 0 {
		return nil, fault.ErrInvalidPrintDepth
	}
	return &Runner{
		log:        log,
		container:  container,
		check:      check,
		printDepth: printDepth,
		output:     output,
	}, nil
}

// Run - apply all operations stopping at the first error
func (r *Runner) Run(operations []Operation) (Result, error) {
	start := time.Now()
	for i, op := range operations {
		if err := r.Step(i+1, op); nil != err {
			r.result.Elapsed += time.Since(start)
			r.log.Errorf("%s: error: %s", op, err)
			return r.Result(), err
		}
	}
	r.result.Elapsed += time.Since(start)
	r.log.Infof("completed: %d operations  count: %d  height: %d", len(operations), r.container.Count(), r.container.Height())
	return r.Result(), nil
}

// Step - apply a single operation, n is used to identify the step in
// logs and errors
func (r *Runner) Step(n int, op Operation) error {
	if err := op.Validate(); nil != err {
		return fmt.Errorf("step %d: %q: %w", n, op.Op, err)
	}

	r.log.Debugf("step %d: %s", n, op)
	r.result.Operations += 1

	switch op.Op {
	case OpInsert:
		added, err := r.container.Insert(op.Key, op.Value)
		if nil != err {
			return fmt.Errorf("step %d: key %q: %w", n, op.Key, err)
		}
		if added {
			r.live.Increment()
			r.result.Inserted += 1
		} else {
			r.result.Updated += 1
		}

	case OpRemove:
		_, ok, err := r.container.Remove(op.Key)
		if nil != err {
			return fmt.Errorf("step %d: key %q: %w", n, op.Key, err)
		}
		if ok {
			r.live.Decrement()
			r.result.Removed += 1
		} else if r.live.IsZero() {
			r.result.Missing += 1
			r.log.Debugf("step %d: remove: key %q from empty tree", n, op.Key)
		} else {
			r.result.Missing += 1
			r.log.Debugf("step %d: remove: key %q not present", n, op.Key)
		}

	case OpGet:
		value, err := r.container.Get(op.Key)
		if fault.IsErrNotFound(err) {
			r.result.Missing += 1
			r.log.Debugf("step %d: get: key %q not present", n, op.Key)
			break
		}
		if nil != err {
			return fmt.Errorf("step %d: key %q: %w", n, op.Key, err)
		}
		r.result.Found += 1
		r.log.Debugf("step %d: get: %q → %q", n, op.Key, value)

	case OpFind:
		found, err := r.container.Find(op.Key)
		if nil != err {
			return fmt.Errorf("step %d: key %q: %w", n, op.Key, err)
		}
		if found {
			r.result.Found += 1
		} else {
			r.result.Missing += 1
		}

	case OpClear:
		r.container.Clear()
		r.live.Reset()
		r.result.Cleared += 1

	case OpCheck:
		return r.verify(n)

	case OpPrint:
		if nil != r.output {
			r.container.Fprint(r.output, r.printDepth)
		}
	}

	if r.check && op.mutates() {
		return r.verify(n)
	}
	return nil
}

// Result - the counts so far together with the current tree shape
func (r *Runner) Result() Result {
	result := r.result
	result.Count = r.container.Count()
	result.Height = r.container.Height()
	result.Balanced = r.container.IsBalanced()
	result.Rotations = r.container.Rotations()
	return result
}

func (r *Runner) verify(n int) error {
	r.result.Checks += 1
	if count := r.container.Count(); uint64(count) != r.live.Uint64() {
		r.log.Warnf("step %d: count: %d  expected: %d", n, count, r.live.Uint64())
		return fmt.Errorf("step %d: %w", n, fault.ErrTreeInconsistent)
	}
	if !r.container.IsBalanced() {
		r.log.Warnf("step %d: tree is not balanced  height: %d  count: %d", n, r.container.Height(), r.container.Count())
		return fmt.Errorf("step %d: %w", n, fault.ErrTreeUnbalanced)
	}
	return nil
}
