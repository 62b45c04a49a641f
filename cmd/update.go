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

package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/amazingshi/fuc/vcf"
)

// UpdateHelp is the help string for this command.
const UpdateHelp = "\nupdate parameters:\n" +
	"fuc update vcf-file other-vcf-file vcf-output-file\n" +
	"[--columns ID,QUAL,FILTER,INFO,FORMAT]\n" +
	"[--log-path path]\n"

// Update implements the fuc update command.
func Update() error {
	var columns, logPath string

	var flags flag.FlagSet

	flags.StringVar(&columns, "columns", "", "fixed columns to copy from the other file")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")

	parseFlags(flags, 5, UpdateHelp)

	input := getFilename(os.Args[2], UpdateHelp)
	other := getFilename(os.Args[3], UpdateHelp)
	output := getFilename(os.Args[4], UpdateHelp)

	setLogOutput(logPath)

	var sanityChecksFailed bool

	if !checkExist("", input) {
		sanityChecksFailed = true
	}
	if !checkExist("", other) {
		sanityChecksFailed = true
	}
	if !checkCreate("", output) {
		sanityChecksFailed = true
	}

	if sanityChecksFailed {
		fmt.Fprint(os.Stderr, UpdateHelp)
		os.Exit(1)
	}

	table, err := vcf.ReadFile(input)
	if err != nil {
		return err
	}
	otherTable, err := vcf.ReadFile(other)
	if err != nil {
		return err
	}
	var names []string
	if columns != "" {
		names = strings.Split(columns, ",")
	}
	return table.Update(otherTable, names).WriteFile(output)
}
