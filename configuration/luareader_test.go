// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

type step struct {
	Op  string `gluamapper:"op"`
	Key string `gluamapper:"key"`
}

type testConfiguration struct {
	Tree       string            `gluamapper:"tree"`
	Check      bool              `gluamapper:"check"`
	PrintDepth int               `gluamapper:"print_depth"`
	Steps      []step            `gluamapper:"steps"`
	Levels     map[string]string `gluamapper:"levels"`
}

const testScript = `
local depth = 2 + 3
return {
    tree = "avl",
    check = true,
    print_depth = depth,
    steps = {
        { op = "insert", key = "10" },
        { op = "remove", key = "10" },
    },
    levels = { DEFAULT = "info", runner = "debug" },
}
`

func TestParseString(t *testing.T) {
	c := testConfiguration{}
	err := configuration.ParseConfigurationString(testScript, &c)
	require.Nil(t, err, "parse error")

	assert.Equal(t, "avl", c.Tree, "tree")
	assert.True(t, c.Check, "check")
	assert.Equal(t, 5, c.PrintDepth, "print depth")
	assert.Equal(t, []step{{"insert", "10"}, {"remove", "10"}}, c.Steps, "steps")
	assert.Equal(t, "debug", c.Levels["runner"], "levels")
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "test.conf")
	err := os.WriteFile(fileName, []byte(`return { tree = arg[0] }`), 0600)
	require.Nil(t, err, "write file")

	c := testConfiguration{}
	err = configuration.ParseConfigurationFile(fileName, &c)
	require.Nil(t, err, "parse error")
	assert.Equal(t, fileName, c.Tree, "arg[0] is the file name")
}

func TestParseErrors(t *testing.T) {
	c := testConfiguration{}

	err := configuration.ParseConfigurationFile("", &c)
	assert.Equal(t, fault.ErrRequiredConfigFile, err, "empty file name")

	err = configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "absent"), &c)
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "absent file")

	err = configuration.ParseConfigurationString(testScript, c)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a pointer")

	n := 0
	err = configuration.ParseConfigurationString(testScript, &n)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a struct")

	err = configuration.ParseConfigurationString(`return 42`, &c)
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "not a table")

	err = configuration.ParseConfigurationString(`return {`, &c)
	assert.NotNil(t, err, "syntax error")
}
