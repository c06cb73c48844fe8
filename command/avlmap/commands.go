// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
)

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		usage(program)

	default:
		return false
	}

	return true
}

func usage(program string) {
	fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [--define=NAME=VALUE] [--script=FILE] [operation...]\n", program)

	fmt.Printf("supported commands:\n\n")
	fmt.Printf("  help                       (h)      - display this message\n\n")
	fmt.Printf("  version                    (v)      - display version sting\n\n")

	fmt.Printf("operations (one per argument or per script line, # starts a comment):\n\n")
	fmt.Printf("  insert KEY VALUE                    - add a key or overwrite its value\n")
	fmt.Printf("  set KEY VALUE                       - assign through the index operation\n")
	fmt.Printf("  get KEY                             - display a value, an absent key is created empty\n")
	fmt.Printf("  find KEY                            - display a value or \"not found\"\n")
	fmt.Printf("  erase KEY                           - remove a key\n")
	fmt.Printf("  first | last                        - display the lowest/highest entry\n")
	fmt.Printf("  next KEY | prev KEY                 - display the neighbour of an existing key\n")
	fmt.Printf("  clear                               - remove all keys\n")
	fmt.Printf("  size                                - display the number of keys\n")
	fmt.Printf("  dump | reverse                      - display all entries ascending/descending\n")
	fmt.Printf("  tree                                - draw the tree\n")
	fmt.Printf("  check                               - verify the tree invariants\n")
	fmt.Printf("\n")
}
