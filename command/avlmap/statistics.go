// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/exitwithstatus"
)

// Statistics - tally of the operations performed by a run
type Statistics struct {
	Operations  uint64 `json:"operations"`
	Inserted    uint64 `json:"inserted"`
	Overwritten uint64 `json:"overwritten"`
	Erased      uint64 `json:"erased"`
	Lookups     uint64 `json:"lookups"`
	Misses      uint64 `json:"misses"`
	Size        int    `json:"size"`
}

func printJson(w io.Writer, title string, message interface{}) {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		exitwithstatus.Message("Error: printjson marshall error: %s", err)
	}

	if "" == title {
		fmt.Fprintf(w, "%s\n", b)
	} else {
		fmt.Fprintf(w, "%s:\n%s\n", title, b)
	}
}
