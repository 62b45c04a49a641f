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

	"github.com/amazingshi/fuc/vcf"
)

// StripHelp is the help string for this command.
const StripHelp = "\nstrip parameters:\n" +
	"fuc strip vcf-file vcf-output-file\n" +
	"[--subfields name,name,...]\n" +
	"[--log-path path]\n"

// Strip implements the fuc strip command.
func Strip() error {
	var subfields, logPath string

	var flags flag.FlagSet

	flags.StringVar(&subfields, "subfields", "", "genotype subfields to retain next to GT")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")

	parseFlags(flags, 4, StripHelp)

	input := getFilename(os.Args[2], StripHelp)
	output := getFilename(os.Args[3], StripHelp)

	setLogOutput(logPath)

	var sanityChecksFailed bool

	if !checkExist("", input) {
		sanityChecksFailed = true
	}
	if !checkCreate("", output) {
		sanityChecksFailed = true
	}

	if sanityChecksFailed {
		fmt.Fprint(os.Stderr, StripHelp)
		os.Exit(1)
	}

	table, err := vcf.ReadFile(input)
	if err != nil {
		return err
	}
	stripped, err := table.Strip(splitSubfields(subfields)...)
	if err != nil {
		return err
	}
	return stripped.WriteFile(output)
}
