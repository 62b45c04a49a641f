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

// calledGenotypes counts the sample cells whose genotype subfield
// carries no missing token.
func calledGenotypes(table *Table) (count int) {
	for _, key := range table.Keys() {
		fields, _ := table.Record(key)
		for _, cell := range fields[FixedColumns:] {
			if !strings.Contains(firstSubfield(cell), MissingValue) {
				count++
			}
		}
	}
	return count
}

func TestAddDepth(t *testing.T) {
	table := parseString(t, testHeader+"\tS1\tS2\n"+
		"chr1\t100\t.\tG\tC\t.\t.\t.\tGT:AD\t0/1:10,5\t0/0:.\n")
	updated, err := table.AddDepth()
	if err != nil {
		t.Fatal(err)
	}
	fields := recordFields(t, updated, "chr1:100:G:C")
	if fields[FormatCol] != "GT:AD:DP" {
		t.Error("AddDepth did not extend FORMAT: ", fields[FormatCol])
	}
	if fields[FixedColumns] != "0/1:10,5:15" {
		t.Error("AddDepth sum wrong: ", fields[FixedColumns])
	}
	// a missing allele depth yields a missing total, FORMAT is still extended
	if fields[FixedColumns+1] != "0/0:.:." {
		t.Error("AddDepth missing propagation wrong: ", fields[FixedColumns+1])
	}
}

func TestAddDepthWithoutAD(t *testing.T) {
	table := parseString(t, testHeader+"\tS1\n"+
		"chr1\t100\t.\tG\tC\t.\t.\t.\tGT\t0/1\n")
	_, err := table.AddDepth()
	if _, ok := err.(*SubfieldNotFoundError); !ok {
		t.Errorf("expected SubfieldNotFoundError, got %v", err)
	}
}

const testDepths = testHeader + "\tS1\tS2\tS3\n" +
	"chr1\t100\t.\tG\tC\t.\t.\t.\tGT:AD:DP\t0/1:10,5:15\t0/0:8,0:8\t1/1:.:.\n"

func TestFilterDepth(t *testing.T) {
	table := parseString(t, testDepths)
	filtered, err := table.FilterDepth(12)
	if err != nil {
		t.Fatal(err)
	}
	fields := recordFields(t, filtered, "chr1:100:G:C")
	if fields[FixedColumns] != "0/1:10,5:15" {
		t.Error("conforming cell was rewritten: ", fields[FixedColumns])
	}
	if fields[FixedColumns+1] != "./.:.:." {
		t.Error("below-threshold cell not nulled: ", fields[FixedColumns+1])
	}
	if fields[FixedColumns+2] != "./.:.:." {
		t.Error("missing-depth cell not nulled: ", fields[FixedColumns+2])
	}
}

func TestFilterDepthMonotonic(t *testing.T) {
	table := parseString(t, testDepths)
	before := calledGenotypes(table)
	for _, threshold := range []int{0, 10, 12, 100} {
		filtered, err := table.FilterDepth(threshold)
		if err != nil {
			t.Fatal(err)
		}
		if after := calledGenotypes(filtered); after > before {
			t.Error("filter increased the call count at threshold ", threshold)
		}
	}
}

func TestFilterFrequency(t *testing.T) {
	table := parseString(t, testHeader+"\tS1\tS2\n"+
		"chr1\t100\t.\tG\tC\t.\t.\t.\tGT:AF\t0/1:0.25\t0/1:0.05\n")
	filtered, err := table.FilterFrequency(0.1)
	if err != nil {
		t.Fatal(err)
	}
	fields := recordFields(t, filtered, "chr1:100:G:C")
	if fields[FixedColumns] != "0/1:0.25" {
		t.Error("conforming cell was rewritten: ", fields[FixedColumns])
	}
	if fields[FixedColumns+1] != "./.:." {
		t.Error("below-threshold cell not nulled: ", fields[FixedColumns+1])
	}
}

func TestFilterDoesNotAliasSource(t *testing.T) {
	table := parseString(t, testDepths)
	filtered, err := table.FilterDepth(12)
	if err != nil {
		t.Fatal(err)
	}
	fields := recordFields(t, filtered, "chr1:100:G:C")
	fields[FixedColumns] = "mutated"
	original := recordFields(t, table, "chr1:100:G:C")
	if original[FixedColumns] != "0/1:10,5:15" {
		t.Error("filter result aliases its source")
	}
}

func TestRemoveEmpty(t *testing.T) {
	table := parseString(t, testHeader+"\tS1\tS2\n"+
		"chr1\t100\t.\tG\tC\t.\t.\t.\tGT\t./.\t0/1\n"+
		"chr1\t200\t.\tT\tA\t.\t.\t.\tGT\t./.\t./.\n"+
		"chr1\t300\t.\tC\tG\t.\t.\t.\tGT\t./1\t./.\n")
	cleaned := table.RemoveEmpty()
	if cleaned.NRecords() != 1 {
		t.Error("RemoveEmpty kept the wrong records: ", cleaned.Keys())
	}
	if _, ok := cleaned.Record("chr1:100:G:C"); !ok {
		t.Error("RemoveEmpty dropped a called record")
	}
}

func TestUpdate(t *testing.T) {
	table := parseString(t, testHeader+"\tS1\n"+
		"chr1\t100\t.\tG\tC\t.\t.\t.\tGT\t0/1\n"+
		"chr1\t200\t.\tT\tA\t.\t.\t.\tGT\t0/0\n")
	other := parseString(t, testHeader+"\tSX\n"+
		"chr1\t100\trs1\tG\tC\t50\tPASS\tDP=30\tGT:AD\t1/1:0,9\n"+
		"chr9\t900\trs9\tA\tT\t60\tPASS\t.\tGT\t0/1\n")
	// CHROM is outside the whitelist and must be silently dropped
	updated := table.Update(other, []string{"ID", "FILTER", "CHROM"})
	fields := recordFields(t, updated, "chr1:100:G:C")
	if !fieldsEqual(fields, "chr1\t100\trs1\tG\tC\t.\tPASS\t.\tGT\t0/1") {
		t.Error("Update failed: ", fields)
	}
	// records only in the receiver stay unchanged, others' unique records are ignored
	if fields := recordFields(t, updated, "chr1:200:T:A"); !fieldsEqual(fields, "chr1\t200\t.\tT\tA\t.\t.\t.\tGT\t0/0") {
		t.Error("Update touched a non-overlapping record: ", fields)
	}
	if updated.NRecords() != 2 {
		t.Error("Update changed the record count")
	}
}

func TestApply(t *testing.T) {
	table := parseString(t, testCohort1)
	applied, err := table.Apply("FILTER", func(string) string { return "PASS" })
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range applied.Keys() {
		fields, _ := applied.Record(key)
		if fields[FilterCol] != "PASS" {
			t.Error("Apply failed: ", fields)
		}
	}
	if _, err := table.Apply("NOPE", func(s string) string { return s }); err == nil {
		t.Error("Apply accepted an unknown column")
	}
}
