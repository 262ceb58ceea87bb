// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ordered/avl"
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
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if err != nil {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--file=keys.txt] [key…]", program)
	}

	// internal logger
	logging := logger.Configuration{
		Directory: ".",
		File:      "treedump.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "info",
		},
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	// start logging
	if err = logger.Initialise(logging); err != nil {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)

	// ------------------
	// start of real main
	// ------------------

	keys := arguments

	if len(options["file"]) > 0 {
		name := options["file"][0]
		f, err := os.Open(name)
		if err != nil {
			exitwithstatus.Message("%s: open: %q  error: %s", program, name, err)
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			key := strings.TrimSpace(scanner.Text())
			if "" != key {
				keys = append(keys, key)
			}
		}
		if err := scanner.Err(); err != nil {
			exitwithstatus.Message("%s: read: %q  error: %s", program, name, err)
		}
	}

	if 0 == len(keys) {
		exitwithstatus.Message("%s: no keys supplied", program)
	}

	tree := avl.NewReusable(func(a interface{}, b interface{}) int {
		return strings.Compare(a.(string), b.(string))
	}, nil)

	for i, key := range keys {
		if nil == tree.Insert(key) {
			exitwithstatus.Message("%s: insert failed for key: %q", program, key)
		}
		if verbose {
			log.Infof("insert[%d]: %q", i, key)
		}
		if !tree.CheckBalance() {
			exitwithstatus.Message("%s: balance invariant broken after key: %q", program, key)
		}
	}

	log.Infof("keys: %d  nodes: %d", len(keys), tree.Count())

	fmt.Printf("nodes: %d\n", tree.Count())
	fmt.Printf("height: %d\n", tree.Height())

	if !quiet {
		depth := tree.Fprint(os.Stdout, verbose)
		log.Infof("printed depth: %d", depth)
	}

	inOrder := make([]string, 0, tree.Count())
	_ = tree.Visit(func(tree *avl.Tree, node *avl.Node, ctx *avl.Context, userdata interface{}) avl.Code {
		inOrder = append(inOrder, node.Payload().(string))
		return avl.Continue
	}, nil, avl.Infix)
	fmt.Printf("in-order: %s\n", strings.Join(inOrder, " "))

	byLevel := []string{}
	lastDepth := -1
	_ = tree.Visit(func(tree *avl.Tree, node *avl.Node, ctx *avl.Context, userdata interface{}) avl.Code {
		if ctx.Depth != lastDepth {
			lastDepth = ctx.Depth
			byLevel = append(byLevel, fmt.Sprintf("| %d:", ctx.Depth))
		}
		byLevel = append(byLevel, node.Payload().(string))
		return avl.Continue
	}, nil, avl.Breadth)
	fmt.Printf("breadth: %s\n", strings.Join(byLevel, " "))

	tree.Free()
}
