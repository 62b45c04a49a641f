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
)

// The codec for the colon-delimited per-sample genotype encoding. A
// record's FORMAT cell declares the ordered subfield names that every
// sample cell of that record must follow; the layout is per record,
// not per table.

// SubfieldIndex resolves the positional index of a named subfield in
// a FORMAT cell. It returns a SubfieldNotFoundError if the name is
// not declared.
func SubfieldIndex(format, name string) (int, error) {
	if i, ok := subfieldIndex(format, name); ok {
		return i, nil
	}
	return -1, &SubfieldNotFoundError{Subfield: name}
}

func subfieldIndex(format, name string) (int, bool) {
	for i, start := 0, 0; ; i++ {
		end := strings.IndexByte(format[start:], ':')
		if end < 0 {
			return i, format[start:] == name
		}
		if format[start:start+end] == name {
			return i, true
		}
		start += end + 1
	}
}

// SubfieldCount returns the number of subfields declared by a FORMAT
// cell, or encoded in a sample cell.
func SubfieldCount(format string) int {
	return strings.Count(format, ":") + 1
}

// SplitCell splits a colon-delimited cell into its subfield values.
func SplitCell(cell string) []string {
	return strings.Split(cell, ":")
}

// JoinCell is the inverse of SplitCell, preserving subfield order.
func JoinCell(values []string) string {
	return strings.Join(values, ":")
}

// MissingTemplate returns a sample cell representing "no call, all
// other subfields unknown" for a FORMAT layout of n subfields.
func MissingTemplate(n int) string {
	var cell strings.Builder
	cell.WriteString("./.")
	for i := 1; i < n; i++ {
		cell.WriteString(":.")
	}
	return cell.String()
}

// subfieldAt returns the i-th subfield value of a sample cell, and
// whether the value is present rather than the missing token.
func subfieldAt(cell string, i int) (string, bool) {
	start := 0
	for ; i > 0; i-- {
		end := strings.IndexByte(cell[start:], ':')
		if end < 0 {
			return MissingValue, false
		}
		start += end + 1
	}
	value := cell[start:]
	if end := strings.IndexByte(value, ':'); end >= 0 {
		value = value[:end]
	}
	return value, value != MissingValue
}

// firstSubfield returns the leading subfield value of a sample cell,
// which is the genotype call under the usual GT-first layouts.
func firstSubfield(cell string) string {
	if end := strings.IndexByte(cell, ':'); end >= 0 {
		return cell[:end]
	}
	return cell
}
