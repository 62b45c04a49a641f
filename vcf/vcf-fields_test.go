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
	"testing"
)

func TestSubfieldIndex(t *testing.T) {
	if i, err := SubfieldIndex("GT:AD:DP", "GT"); err != nil || i != 0 {
		t.Error("SubfieldIndex GT failed")
	}
	if i, err := SubfieldIndex("GT:AD:DP", "AD"); err != nil || i != 1 {
		t.Error("SubfieldIndex AD failed")
	}
	if i, err := SubfieldIndex("GT:AD:DP", "DP"); err != nil || i != 2 {
		t.Error("SubfieldIndex DP failed")
	}
	if i, err := SubfieldIndex("GT", "GT"); err != nil || i != 0 {
		t.Error("SubfieldIndex single failed")
	}
	_, err := SubfieldIndex("GT:AD", "AF")
	if _, ok := err.(*SubfieldNotFoundError); !ok {
		t.Errorf("expected SubfieldNotFoundError, got %v", err)
	}
	// a name matching only a prefix of a subfield must not resolve
	if _, err := SubfieldIndex("GTX:AD", "GT"); err == nil {
		t.Error("SubfieldIndex prefix match failed")
	}
}

func TestSubfieldCount(t *testing.T) {
	if SubfieldCount("GT") != 1 {
		t.Error("SubfieldCount 1 failed")
	}
	if SubfieldCount("GT:AD:DP") != 3 {
		t.Error("SubfieldCount 3 failed")
	}
}

func TestMissingTemplate(t *testing.T) {
	if MissingTemplate(1) != "./." {
		t.Error("MissingTemplate 1 failed")
	}
	if MissingTemplate(3) != "./.:.:." {
		t.Error("MissingTemplate 3 failed")
	}
}

func TestCellCodec(t *testing.T) {
	values := SplitCell("0/1:10,5:15")
	if len(values) != 3 || values[0] != "0/1" || values[1] != "10,5" || values[2] != "15" {
		t.Error("SplitCell failed: ", values)
	}
	if JoinCell(values) != "0/1:10,5:15" {
		t.Error("JoinCell failed")
	}
}

func TestSubfieldAt(t *testing.T) {
	if value, ok := subfieldAt("0/1:10,5:15", 2); !ok || value != "15" {
		t.Error("subfieldAt present failed")
	}
	if value, ok := subfieldAt("0/1:.:15", 1); ok || value != MissingValue {
		t.Error("subfieldAt missing failed")
	}
	if _, ok := subfieldAt("0/1", 2); ok {
		t.Error("subfieldAt out of range failed")
	}
}
