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

// FilterHelp is the help string for this command.
const FilterHelp = "\nfilter parameters:\n" +
	"fuc filter vcf-file vcf-output-file\n" +
	"[--add-dp]\n" +
	"[--min-dp n]\n" +
	"[--min-af f]\n" +
	"[--remove-empty]\n" +
	"[--timed]\n" +
	"[--profile file]\n" +
	"[--log-path path]\n"

// Filter implements the fuc filter command. The transforms are
// applied in a fixed order: add-dp, min-dp, min-af, remove-empty.
func Filter() error {
	var (
		profile, logPath   string
		minDP              int
		minAF              float64
		addDP, removeEmpty bool
		timed              bool
	)

	var flags flag.FlagSet

	flags.BoolVar(&addDP, "add-dp", false, "append a total depth subfield computed from the allele depths")
	flags.IntVar(&minDP, "min-dp", -1, "null out sample genotypes with a total depth below this threshold")
	flags.Float64Var(&minAF, "min-af", -1, "null out sample genotypes with an allele frequency below this threshold")
	flags.BoolVar(&removeEmpty, "remove-empty", false, "drop records without any genotype call left")
	flags.BoolVar(&timed, "timed", false, "measure the runtime")
	flags.StringVar(&profile, "profile", "", "write a runtime profile to the specified file")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")

	parseFlags(flags, 4, FilterHelp)

	input := getFilename(os.Args[2], FilterHelp)
	output := getFilename(os.Args[3], FilterHelp)

	setLogOutput(logPath)

	var sanityChecksFailed bool

	if !checkExist("", input) {
		sanityChecksFailed = true
	}
	if !checkCreate("", output) {
		sanityChecksFailed = true
	}
	if profile != "" && !checkCreate("--profile", profile) {
		sanityChecksFailed = true
	}

	if sanityChecksFailed {
		fmt.Fprint(os.Stderr, FilterHelp)
		os.Exit(1)
	}

	return timedRun(timed, profile, fmt.Sprint("Filtering ", input, " into ", output, "."), func() error {
		table, err := vcf.ReadFile(input)
		if err != nil {
			return err
		}
		if addDP {
			if table, err = table.AddDepth(); err != nil {
				return err
			}
		}
		if minDP >= 0 {
			if table, err = table.FilterDepth(minDP); err != nil {
				return err
			}
		}
		if minAF >= 0 {
			if table, err = table.FilterFrequency(minAF); err != nil {
				return err
			}
		}
		if removeEmpty {
			table = table.RemoveEmpty()
		}
		return table.WriteFile(output)
	})
}
