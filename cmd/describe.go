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

// DescribeHelp is the help string for this command.
const DescribeHelp = "\ndescribe parameters:\n" +
	"fuc describe vcf-file\n"

// Describe implements the fuc describe command.
func Describe() error {
	var flags flag.FlagSet

	parseFlags(flags, 3, DescribeHelp)

	input := getFilename(os.Args[2], DescribeHelp)

	if !checkExist("", input) {
		fmt.Fprint(os.Stderr, DescribeHelp)
		os.Exit(1)
	}

	table, err := vcf.ReadFile(input)
	if err != nil {
		return err
	}
	table.Describe(os.Stdout)
	return nil
}
