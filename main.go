// fuc: command line tools for processing VCF cohort files.
// Copyright (c) 2021-2026 the fuc authors.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version, and Additional Terms
// (see below).

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License and Additional Terms along with this program. If not, see
// <https://github.com/amazingshi/fuc/blob/master/LICENSE.txt>.

// fuc is a collection of command line tools for processing VCF cohort
// files: merging call sets, stripping genotype subfields, depth and
// allele frequency filtering, and cohort summaries.
//
// Please see https://github.com/amazingshi/fuc for a documentation of
// the tool.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/amazingshi/fuc/cmd"
)

func printHelp() {
	fmt.Fprintln(os.Stderr, "Available commands: merge, strip, filter, update, describe")
	fmt.Fprint(os.Stderr, "\n", cmd.MergeHelp)
	fmt.Fprint(os.Stderr, "\n", cmd.StripHelp)
	fmt.Fprint(os.Stderr, "\n", cmd.FilterHelp)
	fmt.Fprint(os.Stderr, "\n", cmd.UpdateHelp)
	fmt.Fprint(os.Stderr, "\n", cmd.DescribeHelp)
}

func main() {
	fmt.Fprintln(os.Stderr, cmd.ProgramMessage)
	if len(os.Args) < 2 {
		log.Println("Incorrect number of parameters.")
		fmt.Fprint(os.Stderr, cmd.HelpMessage, "\n")
		printHelp()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "merge":
		err = cmd.Merge()
	case "strip":
		err = cmd.Strip()
	case "filter":
		err = cmd.Filter()
	case "update":
		err = cmd.Update()
	case "describe":
		err = cmd.Describe()
	case "help", "-help", "--help", "-h", "--h":
		printHelp()
	default:
		log.Println("Unknown command:", os.Args[1])
		printHelp()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}
