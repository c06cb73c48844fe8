// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
)

// executor - runs single operations against a map
type executor interface {
	execute(line string) error
	load(key string, value string) error
	statistics() *Statistics
}

// a map with a specific key type and its output
type runner[K avl.Key] struct {
	tree      *avl.Map[K, string]
	parseKey  func(string) (K, error)
	out       io.Writer
	log       *logger.L
	printData bool
	stats     Statistics
}

// create the executor for the configured key type and load any
// preloaded entries
func newExecutor(config *Configuration, out io.Writer, log *logger.L) (executor, error) {
	var ex executor
	switch config.KeyType {
	case keyTypeInteger:
		ex = newRunner(parseInteger, config, out, log)
	case keyTypeString:
		ex = newRunner(parseString, config, out, log)
	default:
		return nil, fmt.Errorf("%w: %q", fault.ErrInvalidKeyType, config.KeyType)
	}

	for i, entry := range config.Preload {
		if err := ex.load(entry.Key, entry.Value); nil != err {
			return nil, fmt.Errorf("preload[%d]: %w", i+1, err)
		}
	}
	return ex, nil
}

func newRunner[K avl.Key](parseKey func(string) (K, error), config *Configuration, out io.Writer, log *logger.L) *runner[K] {
	return &runner[K]{
		tree:      avl.New[K, string](),
		parseKey:  parseKey,
		out:       out,
		log:       log,
		printData: config.PrintData,
	}
}

func parseInteger(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 0, 64)
	if nil != err {
		return 0, fmt.Errorf("%w: %q", fault.ErrInvalidKey, s)
	}
	return n, nil
}

func parseString(s string) (string, error) {
	return s, nil
}

// run every line from a reader, stopping at the first error
//
// blank lines and anything after a '#' are ignored
func runScript(ex executor, r io.Reader, name string) error {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n += 1
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if "" == strings.TrimSpace(line) {
			continue
		}
		if err := ex.execute(line); nil != err {
			return fmt.Errorf("%s:%d: %w", name, n, err)
		}
	}
	return scanner.Err()
}

// load - insert a configured entry exactly as given
func (r *runner[K]) load(key string, value string) error {
	k, err := r.parseKey(key)
	if nil != err {
		return err
	}
	if r.tree.Insert(k, value) {
		r.stats.Inserted += 1
	} else {
		r.stats.Overwritten += 1
	}
	r.stats.Size = r.tree.Size()
	return nil
}

func (r *runner[K]) statistics() *Statistics {
	return &r.stats
}

// execute - perform one operation
func (r *runner[K]) execute(line string) error {
	fields := strings.Fields(line)
	if 0 == len(fields) {
		return nil
	}
	operation := strings.ToLower(fields[0])
	arguments := fields[1:]

	r.log.Debugf("operation: %q  arguments: %q", operation, arguments)
	r.stats.Operations += 1

	switch operation {
	case "insert", "set":
		if len(arguments) < 2 {
			return fmt.Errorf("%s: %w", operation, fault.ErrMissingArgument)
		}
		key, err := r.parseKey(arguments[0])
		if nil != err {
			return err
		}
		value := strings.Join(arguments[1:], " ")
		if "set" == operation {
			*r.index(key) = value
		} else if r.tree.Insert(key, value) {
			r.stats.Inserted += 1
		} else {
			r.stats.Overwritten += 1
		}

	case "get":
		key, err := r.oneKey(operation, arguments)
		if nil != err {
			return err
		}
		r.stats.Lookups += 1
		fmt.Fprintf(r.out, "%s\n", *r.index(key))

	case "find":
		key, err := r.oneKey(operation, arguments)
		if nil != err {
			return err
		}
		r.stats.Lookups += 1
		it := r.tree.CFind(key)
		if it.IsEnd() {
			r.stats.Misses += 1
			fmt.Fprintf(r.out, "not found\n")
		} else {
			fmt.Fprintf(r.out, "%s\n", it.Value())
		}

	case "erase", "delete":
		key, err := r.oneKey(operation, arguments)
		if nil != err {
			return err
		}
		it := r.tree.Find(key)
		if it.IsEnd() {
			r.stats.Misses += 1
			r.log.Infof("erase: absent key: %v", key)
		} else {
			r.stats.Erased += 1
		}
		r.tree.Erase(it)

	case "first", "last":
		if 0 != len(arguments) {
			return fmt.Errorf("%s: %w", operation, fault.ErrTooManyArguments)
		}
		it := r.tree.CBegin()
		if "last" == operation {
			it = r.tree.CEnd()
			it.Decrement()
		}
		return r.printPosition(it)

	case "next", "prev":
		key, err := r.oneKey(operation, arguments)
		if nil != err {
			return err
		}
		it := r.tree.CFind(key)
		if it.IsEnd() {
			return fmt.Errorf("%s: %w: %v", operation, fault.ErrKeyNotFound, key)
		}
		if "next" == operation {
			it.Increment()
		} else {
			it.Decrement()
		}
		return r.printPosition(it)

	case "clear":
		r.tree.Clear()

	case "size":
		fmt.Fprintf(r.out, "%d\n", r.tree.Size())

	case "dump":
		return r.tree.Dump(r.out)

	case "reverse":
		for k, v := range r.tree.Backward() {
			fmt.Fprintf(r.out, "%v -> %v\n", k, v)
		}

	case "tree":
		depth := r.tree.Print(r.out, r.printData)
		r.log.Infof("tree depth: %d", depth)

	case "check":
		if err := r.tree.Check(); nil != err {
			r.log.Errorf("check failed: %s", err)
			return err
		}
		fmt.Fprintf(r.out, "ok: %d keys  height: %d\n", r.tree.Size(), r.tree.Height())

	default:
		return fmt.Errorf("%w: %q", fault.ErrUnknownOperation, operation)
	}

	r.stats.Size = r.tree.Size()
	return nil
}

// parse the single key argument of an operation
func (r *runner[K]) oneKey(operation string, arguments []string) (K, error) {
	var zero K
	switch len(arguments) {
	case 0:
		return zero, fmt.Errorf("%s: %w", operation, fault.ErrMissingArgument)
	case 1:
		return r.parseKey(arguments[0])
	default:
		return zero, fmt.Errorf("%s: %w", operation, fault.ErrTooManyArguments)
	}
}

// access through the index operation, counting a created key
func (r *runner[K]) index(key K) *string {
	n := r.tree.Size()
	p := r.tree.Index(key)
	if r.tree.Size() != n {
		r.stats.Inserted += 1
	}
	return p
}

func (r *runner[K]) printPosition(it avl.ConstIterator[K, string]) error {
	if it.IsEnd() {
		_, err := fmt.Fprintf(r.out, "end\n")
		return err
	}
	return it.Node().Print(r.out)
}
