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
	"fmt"
)

// DefaultHeaderColumns for VCF files. Columns from index 9 onward are
// sample identifiers; their order defines the column-to-sample mapping
// for every record.
var DefaultHeaderColumns = []string{"CHROM", "POS", "ID", "REF", "ALT", "QUAL", "FILTER", "INFO", "FORMAT"}

// Indices of the fixed VCF columns.
const (
	ChromCol = iota
	PosCol
	IDCol
	RefCol
	AltCol
	QualCol
	FilterCol
	InfoCol
	FormatCol
	FixedColumns
)

// Commonly used genotype subfield names.
const (
	GT = "GT"
	AD = "AD"
	DP = "DP"
	AF = "AF"
)

// MissingValue is the VCF token for a missing subfield value.
const MissingValue = "."

// A Table holds the contents of a VCF file: meta-information lines
// kept verbatim, the header columns, and the records keyed by
// CHROM:POS:REF:ALT in insertion order.
//
// The first header column is stored without its leading '#'; Format
// re-emits it.
type Table struct {
	Meta    []string
	Columns []string
	keys    []string
	records map[string][]string
}

// NewTable creates an empty Table with the default header columns.
func NewTable() *Table {
	return &Table{
		Columns: DefaultHeaderColumns,
		records: make(map[string][]string),
	}
}

// emptyLike creates an empty Table with a copy of t's header columns.
// Transforms build their results this way; meta-information is not
// carried over.
func (t *Table) emptyLike() *Table {
	result := NewTable()
	result.Columns = append([]string(nil), t.Columns...)
	return result
}

// Key returns the composite record key for a field list.
func Key(fields []string) string {
	return fields[ChromCol] + ":" + fields[PosCol] + ":" + fields[RefCol] + ":" + fields[AltCol]
}

// Samples returns the sample identifiers declared by the header.
func (t *Table) Samples() []string {
	if len(t.Columns) <= FixedColumns {
		return nil
	}
	return t.Columns[FixedColumns:]
}

// NSamples returns the number of sample columns.
func (t *Table) NSamples() int {
	if len(t.Columns) <= FixedColumns {
		return 0
	}
	return len(t.Columns) - FixedColumns
}

// NRecords returns the number of records.
func (t *Table) NRecords() int {
	return len(t.keys)
}

// Shape returns the dimensionality of the Table as a
// (sample count, record count) pair.
func (t *Table) Shape() (samples, records int) {
	return t.NSamples(), t.NRecords()
}

// Keys returns the record keys in insertion order. The slice is owned
// by the Table and must not be modified.
func (t *Table) Keys() []string {
	return t.keys
}

// Record returns the field list stored for a key.
func (t *Table) Record(key string) ([]string, bool) {
	fields, ok := t.records[key]
	return fields, ok
}

// Insert stores fields under their composite key. Inserting a record
// whose key already exists overwrites the prior entry; the key
// retains its original position in the insertion order.
func (t *Table) Insert(fields []string) {
	t.insert(Key(fields), fields)
}

func (t *Table) insert(key string, fields []string) {
	if _, ok := t.records[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.records[key] = fields
}

func cloneFields(fields []string) []string {
	return append([]string(nil), fields...)
}

func fixedColumnIndex(name string) int {
	for i, column := range DefaultHeaderColumns {
		if name == column {
			return i
		}
	}
	return -1
}

// A MalformedLineError reports a data line or sample cell that does
// not fit the declared header or FORMAT layout.
type MalformedLineError struct {
	Line   int // 1-based, 0 when unknown
	Text   string
	Reason string
}

func (e *MalformedLineError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed VCF line %v (%v): %v", e.Line, e.Reason, e.Text)
	}
	return fmt.Sprintf("malformed VCF line (%v): %v", e.Reason, e.Text)
}

// A SubfieldNotFoundError reports a genotype subfield name that is
// absent from a record's FORMAT declaration.
type SubfieldNotFoundError struct {
	Subfield string
	Record   string // record key, "" when the lookup is not tied to a record
}

func (e *SubfieldNotFoundError) Error() string {
	if e.Record != "" {
		return fmt.Sprintf("subfield %v not declared in the FORMAT of record %v", e.Subfield, e.Record)
	}
	return fmt.Sprintf("subfield %v not declared in the FORMAT", e.Subfield)
}

// An IncompatibleMergeError reports an attempt to merge two tables
// whose FORMAT layouts disagree in cardinality after stripping.
type IncompatibleMergeError struct {
	Left, Right int
}

func (e *IncompatibleMergeError) Error() string {
	return fmt.Sprintf("incompatible merge: FORMAT cardinality %v vs %v", e.Left, e.Right)
}
