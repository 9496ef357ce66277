// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/util"
)

func TestEnsureAbsolute(t *testing.T) {
	tests := []struct {
		directory string
		path      string
		expected  string
	}{
		{"/etc/avltool", "log", "/etc/avltool/log"},
		{"/etc/avltool", "./log/../logs", "/etc/avltool/logs"},
		{"/etc/avltool", "/var/log/avltool", "/var/log/avltool"},
		{"/etc/avltool", "/var/log//avltool/", "/var/log/avltool"},
	}

	for i, item := range tests {
		actual := util.EnsureAbsolute(item.directory, item.path)
		assert.Equal(t, item.expected, actual, "%d: path: %q", i, item.path)
	}
}
