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

package vcf

import (
	"strings"
	"testing"
)

func TestDescribe(t *testing.T) {
	table := parseString(t, testHeader+"\tS1\tS2\n"+
		"chr1\t100\t.\tG\tC\t.\t.\t.\tGT:DP\t0/1:10\t0/0:20\n"+
		"chr1\t200\t.\tT\tA\t.\t.\t.\tGT:DP\t1/1:15\t0/1:20\n")
	var out strings.Builder
	table.Describe(&out)
	expected := "Records: 2\n" +
		"Samples: 2\n" +
		"Name VariantCount MeanDP StdDevDP\n" +
		"S1 2 12.50 3.54\n" +
		"S2 1 20.00 0.00\n"
	if out.String() != expected {
		t.Errorf("Describe output wrong:\n%v", out.String())
	}
}

func TestDescribeSingleDepth(t *testing.T) {
	table := parseString(t, testHeader+"\tS1\n"+
		"chr1\t100\t.\tG\tC\t.\t.\t.\tGT:DP\t0/1:10\n")
	var out strings.Builder
	table.Describe(&out)
	expected := "Records: 1\n" +
		"Samples: 1\n" +
		"Name VariantCount MeanDP StdDevDP\n" +
		"S1 1 10.00 .\n"
	if out.String() != expected {
		t.Errorf("Describe output wrong:\n%v", out.String())
	}
}

func TestDescribeWithoutDepths(t *testing.T) {
	table := parseString(t, testHeader+"\tS1\n"+
		"chr1\t100\t.\tG\tC\t.\t.\t.\tGT\t0/1\n")
	var out strings.Builder
	table.Describe(&out)
	expected := "Records: 1\n" +
		"Samples: 1\n" +
		"Name VariantCount MeanDP StdDevDP\n" +
		"S1 1 . .\n"
	if out.String() != expected {
		t.Errorf("Describe output wrong:\n%v", out.String())
	}
}

func TestDescribeNoSamples(t *testing.T) {
	table := parseString(t, testHeader+"\n"+
		"chr1\t100\t.\tG\tC\t.\t.\t.\tGT\n")
	var out strings.Builder
	table.Describe(&out)
	expected := "Records: 1\nSamples: 0\n"
	if out.String() != expected {
		t.Errorf("Describe output wrong:\n%v", out.String())
	}
}
