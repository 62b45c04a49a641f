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

// MergeHelp is the help string for this command.
const MergeHelp = "\nmerge parameters:\n" +
	"fuc merge vcf-file vcf-file vcf-output-file\n" +
	"[--subfields name,name,...]\n" +
	"[--remove-empty]\n" +
	"[--timed]\n" +
	"[--profile file]\n" +
	"[--log-path path]\n"

// Merge implements the fuc merge command.
func Merge() error {
	var (
		subfields, profile, logPath string
		removeEmpty, timed          bool
	)

	var flags flag.FlagSet

	flags.StringVar(&subfields, "subfields", "", "genotype subfields to retain next to GT")
	flags.BoolVar(&removeEmpty, "remove-empty", false, "drop records without any genotype call after merging")
	flags.BoolVar(&timed, "timed", false, "measure the runtime")
	flags.StringVar(&profile, "profile", "", "write a runtime profile to the specified file")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")

	parseFlags(flags, 5, MergeHelp)

	input1 := getFilename(os.Args[2], MergeHelp)
	input2 := getFilename(os.Args[3], MergeHelp)
	output := getFilename(os.Args[4], MergeHelp)

	setLogOutput(logPath)

	// sanity checks

	var sanityChecksFailed bool

	if !checkExist("", input1) {
		sanityChecksFailed = true
	}
	if !checkExist("", input2) {
		sanityChecksFailed = true
	}
	if !checkCreate("", output) {
		sanityChecksFailed = true
	}
	if profile != "" && !checkCreate("--profile", profile) {
		sanityChecksFailed = true
	}

	if sanityChecksFailed {
		fmt.Fprint(os.Stderr, MergeHelp)
		os.Exit(1)
	}

	return timedRun(timed, profile, fmt.Sprint("Merging ", input1, " and ", input2, " into ", output, "."), func() error {
		table1, err := vcf.ReadFile(input1)
		if err != nil {
			return err
		}
		table2, err := vcf.ReadFile(input2)
		if err != nil {
			return err
		}
		merged, err := table1.Merge(table2, splitSubfields(subfields)...)
		if err != nil {
			return err
		}
		if removeEmpty {
			merged = merged.RemoveEmpty()
		}
		return merged.WriteFile(output)
	})
}
