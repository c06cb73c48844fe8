// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "define", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'D'},
		{Long: "script", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// nothing to do
	if 0 == len(arguments) && 0 == len(options["script"]) {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: at most one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}
	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	variables, err := parseDefines(options["define"])
	if nil != err {
		exitwithstatus.Message("%s: define error: %s", program, err)
	}

	// read options and parse the configuration file
	theConfiguration, err := getConfiguration(configurationFile, variables)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	var out io.Writer = os.Stdout
	if len(options["quiet"]) > 0 {
		out = io.Discard
	}

	ex, err := newExecutor(theConfiguration, out, logger.New("script"))
	if nil != err {
		log.Criticalf("preload error: %s", err)
		exitwithstatus.Message("%s: preload error: %s", program, err)
	}
	log.Infof("key type: %s  preloaded: %d", theConfiguration.KeyType, len(theConfiguration.Preload))

	for _, scriptFile := range options["script"] {
		f, err := os.Open(scriptFile)
		if nil != err {
			exitwithstatus.Message("%s: cannot open script: %s", program, err)
		}
		err = runScript(ex, f, scriptFile)
		f.Close()
		if nil != err {
			log.Errorf("script error: %s", err)
			exitwithstatus.Message("%s: %s", program, err)
		}
	}

	for i, operation := range arguments {
		if err := ex.execute(operation); nil != err {
			log.Errorf("argument: %d  error: %s", i+1, err)
			exitwithstatus.Message("%s: argument %d: %s", program, i+1, err)
		}
	}

	if len(options["verbose"]) > 0 {
		printJson(os.Stderr, "statistics", ex.statistics())
	}
}

// convert NAME=VALUE definitions into configuration variables
func parseDefines(defines []string) (map[string]string, error) {
	variables := make(map[string]string)
	for _, d := range defines {
		name, value, ok := strings.Cut(d, "=")
		if !ok || "" == name {
			return nil, fmt.Errorf("%w: %q", fault.ErrMissingArgument, d)
		}
		variables[name] = value
	}
	return variables, nil
}
