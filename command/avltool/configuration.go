// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/util"
	"github.com/bitmark-inc/avltree/workload"
)

// basic defaults (directories and files are relative to the
// directory containing the configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "avltool.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "info",
	}
)

// Configuration - a workload file together with its log settings
type Configuration struct {
	Tree       string               `gluamapper:"tree" json:"tree"`
	Keys       string               `gluamapper:"keys" json:"keys"`
	Check      bool                 `gluamapper:"check" json:"check"`
	PrintDepth int                  `gluamapper:"print_depth" json:"print_depth"`
	Operations []workload.Operation `gluamapper:"operations" json:"operations"`
	Logging    logger.Configuration `gluamapper:"logging" json:"logging"`
}

func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		Tree:       workload.TreeAVL,
		Keys:       workload.KeysString,
		PrintDepth: avl.DefaultPrintDepth,

		Logging: defaultLogging(defaultLogDirectory),
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if err := options.script().Validate(); nil != err {
		return nil, err
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = util.EnsureAbsolute(dataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}

// logging setup for commands that have no configuration file
func defaultLogging(directory string) logger.Configuration {
	levels := make(LoglevelMap, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}
	return logger.Configuration{
		Directory: directory,
		File:      defaultLogFile,
		Size:      defaultLogSize,
		Count:     defaultLogCount,
		Levels:    levels,
	}
}

func (c *Configuration) script() *workload.Script {
	return &workload.Script{
		Tree:       c.Tree,
		Keys:       c.Keys,
		Check:      c.Check,
		PrintDepth: c.PrintDepth,
		Operations: c.Operations,
	}
}
