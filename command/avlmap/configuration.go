// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/configuration"
	"github.com/bitmark-inc/avlmap/fault"
)

// basic defaults (directories and files are relative to the
// directory holding the configuration file)
const (
	defaultKeyType = keyTypeString

	defaultLogDirectory = "log"
	defaultLogFile      = "avlmap.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// supported key types
const (
	keyTypeInteger = "integer"
	keyTypeString  = "string"
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Entry - a key/value pair loaded before the script runs
type Entry struct {
	Key   string `gluamapper:"key" json:"key"`
	Value string `gluamapper:"value" json:"value"`
}

// Configuration - contents of the Lua configuration file
type Configuration struct {
	KeyType   string               `gluamapper:"key_type" json:"key_type"`
	PrintData bool                 `gluamapper:"print_data" json:"print_data"`
	Preload   []Entry              `gluamapper:"preload" json:"preload"`
	Logging   logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
//
// an empty file name gives the defaults with the log directory in
// the system temporary directory
func getConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	baseDirectory := filepath.Join(os.TempDir(), "avlmap")

	options := &Configuration{
		KeyType:   defaultKeyType,
		PrintData: false,
		Preload:   []Entry{},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if "" != configurationFileName {
		configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		// absolute path to the main directory
		baseDirectory, _ = filepath.Split(configurationFileName)

		if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
			return nil, err
		}
	}

	options.KeyType = strings.ToLower(options.KeyType)
	switch options.KeyType {
	case keyTypeInteger, keyTypeString:
	default:
		return nil, fmt.Errorf("%w: %q", fault.ErrInvalidKeyType, options.KeyType)
	}

	// force the log directory to be an absolute path
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(baseDirectory, options.Logging.Directory)
	}
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}
	if fileInfo, err := os.Stat(options.Logging.Directory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("%w: %q", fault.ErrConfigDirPath, options.Logging.Directory)
	}

	return options, nil
}
