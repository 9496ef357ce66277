// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/workload"
)

// result of one tree kind in a benchmark
type benchResult struct {
	Tree   string          `json:"tree"`
	Result workload.Result `json:"result"`
}

func runRun(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	file, err := checkConfigFile(c.String("config"))
	if nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "reading config file: %s\n", file)
	}

	theConfiguration, err := getConfiguration(file)
	if nil != err {
		return err
	}

	log, err := startLogging(theConfiguration.Logging)
	if nil != err {
		return err
	}
	defer stopLogging()

	result, err := theConfiguration.script().Execute(m.w, log)
	if e := printJson(m.w, result); nil != e {
		return e
	}
	return err
}

func runWatch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	file, err := checkConfigFile(c.String("config"))
	if nil != err {
		return err
	}

	theConfiguration, err := getConfiguration(file)
	if nil != err {
		return err
	}

	// log settings are only taken from the first read
	log, err := startLogging(theConfiguration.Logging)
	if nil != err {
		return err
	}
	defer stopLogging()

	w, err := workload.NewWatcher(file, logger.New("watcher"))
	if nil != err {
		return err
	}

	// list of background processes to start
	processes := background.Processes{
		w,
	}
	p := background.Start(processes, nil)
	defer p.Stop()

	execute := func(s *workload.Script) {
		result, err := s.Execute(m.w, log)
		fault.PanicIfError("print result", printJson(m.w, result))
		if nil != err {
			fmt.Fprintf(m.e, "workload error: %s\n", err)
		}
	}
	execute(theConfiguration.script())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

loop:
	for {
		select {
		case <-w.Change():
			theConfiguration, err := getConfiguration(file)
			if nil != err {
				log.Errorf("failed to read configuration from: %q  error: %s", file, err)
				fmt.Fprintf(m.e, "config error: %s\n", err)
				continue loop
			}
			log.Info("workload changed")
			execute(theConfiguration.script())

		case <-w.Remove():
			log.Warn("workload file removed")
			if m.verbose {
				fmt.Fprintf(m.e, "waiting for: %s\n", file)
			}

		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			break loop
		}
	}
	return nil
}

func runBench(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	n := c.Int("count")
	keySpace := c.Int("keys")
	seed := c.Int64("seed")
	if n <= 0 || keySpace <= 0 {
		return fmt.Errorf("count: %d and keys: %d must both be positive", n, keySpace)
	}

	log, err := startLogging(defaultLogging(logDirectory(m)))
	if nil != err {
		return err
	}
	defer stopLogging()

	operations := workload.Generate(n, keySpace, seed)
	if m.verbose {
		fmt.Fprintf(m.e, "operations: %d  keys: %d  seed: %d\n", n, keySpace, seed)
	}

	results := make([]benchResult, 0, 2)
	for _, tree := range []string{workload.TreeAVL, workload.TreeBST} {
		container, err := workload.NewContainer(tree, workload.KeysInteger)
		if nil != err {
			return err
		}
		r, err := workload.NewRunner(container, false, 0, nil, log)
		if nil != err {
			return err
		}
		result, err := r.Run(operations)
		if nil != err {
			return err
		}
		results = append(results, benchResult{
			Tree:   tree,
			Result: result,
		})
	}

	return printJson(m.w, results)
}

func runPrint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	depth := c.Int("depth")
	if depth < 0 {
		return fault.ErrInvalidPrintDepth
	}
	keys := workload.KeysString
	if c.Bool("integer") {
		keys = workload.KeysInteger
	}

	container, err := workload.NewContainer(workload.TreeAVL, keys)
	if nil != err {
		return err
	}
	for _, key := range c.Args() {
		if _, err := container.Insert(key, key); nil != err {
			return fmt.Errorf("key: %q: %w", key, err)
		}
	}

	if 0 == container.Count() {
		fmt.Fprintf(m.w, "|------+ empty\n")
		return nil
	}
	height := container.Fprint(m.w, depth)
	if m.verbose {
		fmt.Fprintf(m.e, "count: %d  height: %d  rotations: %d\n", container.Count(), height, container.Rotations())
	}
	return nil
}

func checkConfigFile(file string) (string, error) {
	if "" == file {
		return "", fault.ErrRequiredConfigFile
	}
	return filepath.Abs(filepath.Clean(file))
}

func logDirectory(m *metadata) string {
	if "" != m.logDir {
		return m.logDir
	}
	return filepath.Join(os.TempDir(), "avltool")
}

// start logging and the last-gasp channel used by panics
func startLogging(logging logger.Configuration) (*logger.L, error) {
	if err := os.MkdirAll(logging.Directory, 0700); nil != err {
		return nil, err
	}
	if err := logger.Initialise(logging); nil != err {
		return nil, err
	}
	if err := fault.Initialise(); nil != err {
		logger.Finalise()
		return nil, err
	}
	log := logger.New("main")
	log.Infof("version: %s", version)
	return log, nil
}

func stopLogging() {
	fault.Finalise()
	logger.Finalise()
}
