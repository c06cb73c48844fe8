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

	"github.com/bitmark-inc/avlmap/configuration"
	"github.com/bitmark-inc/avlmap/fault"
)

type entry struct {
	Key   string `gluamapper:"key"`
	Value string `gluamapper:"value"`
}

type testConfiguration struct {
	KeyType   string            `gluamapper:"key_type"`
	PrintData bool              `gluamapper:"print_data"`
	Preload   []entry           `gluamapper:"preload"`
	Levels    map[string]string `gluamapper:"levels"`
	FileName  string            `gluamapper:"file_name"`
	Untouched string            `gluamapper:"untouched"`
}

func writeFile(t *testing.T, text string) string {
	t.Helper()
	fileName := filepath.Join(t.TempDir(), "test.conf")
	require.NoError(t, os.WriteFile(fileName, []byte(text), 0600))
	return fileName
}

func TestParseConfigurationFile(t *testing.T) {
	fileName := writeFile(t, `
local size = 3
local preload = {}
for i = 1, size do
  preload[i] = { key = tostring(i), value = "item-" .. i }
end
return {
  key_type = key_type_override or "string",
  print_data = true,
  preload = preload,
  levels = { DEFAULT = "info", main = "debug" },
  file_name = arg[0],
}
`)

	config := testConfiguration{
		Untouched: "default",
	}
	err := configuration.ParseConfigurationFile(fileName, &config, map[string]string{
		"key_type_override": "integer",
	})
	require.NoError(t, err)

	assert.Equal(t, "integer", config.KeyType, "variable not visible")
	assert.True(t, config.PrintData)
	assert.Equal(t, []entry{
		{Key: "1", Value: "item-1"},
		{Key: "2", Value: "item-2"},
		{Key: "3", Value: "item-3"},
	}, config.Preload)
	assert.Equal(t, "debug", config.Levels["main"])
	assert.Equal(t, fileName, config.FileName, "arg[0]")
	assert.Equal(t, "default", config.Untouched, "default overwritten")
}

func TestParseConfigurationErrors(t *testing.T) {
	config := testConfiguration{}

	err := configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "missing.conf"), &config, nil)
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "missing file")

	fileName := writeFile(t, `return { key_type = "string" }`)
	err = configuration.ParseConfigurationFile(fileName, config, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a pointer")

	var s string
	err = configuration.ParseConfigurationFile(fileName, &s, nil)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "not a struct")

	fileName = writeFile(t, `return 42`)
	err = configuration.ParseConfigurationFile(fileName, &config, nil)
	assert.Equal(t, fault.ErrInvalidConfiguration, err, "not a table")

	fileName = writeFile(t, `return {`)
	err = configuration.ParseConfigurationFile(fileName, &config, nil)
	assert.Error(t, err, "syntax error")
}
