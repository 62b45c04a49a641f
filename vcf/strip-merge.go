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

// Strip returns a new Table in which the ID, QUAL, FILTER and INFO
// columns are blanked, FORMAT is rewritten to the requested subfield
// names, and every sample cell is reduced to the values of those
// subfields, in the requested order. The genotype subfield GT is
// always retained as the first subfield.
//
// Stripping removes variability in subfield sets across input files
// before tables are combined or compared. It fails with a
// SubfieldNotFoundError if a requested name is absent from a record's
// FORMAT declaration; the lookup is per record.
func (t *Table) Strip(subfields ...string) (*Table, error) {
	requested := append([]string{GT}, subfields...)
	format := JoinCell(requested)
	indices := make([]int, len(requested))
	result := t.emptyLike()
	for _, key := range t.keys {
		fields := t.records[key]
		for j, name := range requested {
			i, ok := subfieldIndex(fields[FormatCol], name)
			if !ok {
				return nil, &SubfieldNotFoundError{Subfield: name, Record: key}
			}
			indices[j] = i
		}
		stripped := cloneFields(fields)
		stripped[IDCol] = MissingValue
		stripped[QualCol] = MissingValue
		stripped[FilterCol] = MissingValue
		stripped[InfoCol] = MissingValue
		stripped[FormatCol] = format
		for s := FixedColumns; s < len(stripped); s++ {
			values := SplitCell(fields[s])
			kept := make([]string, len(indices))
			for j, i := range indices {
				if i >= len(values) {
					return nil, &MalformedLineError{
						Text:   fields[s],
						Reason: "fewer subfields than the FORMAT declares",
					}
				}
				kept[j] = values[i]
			}
			stripped[s] = JoinCell(kept)
		}
		result.insert(key, stripped)
	}
	return result, nil
}

// formatCardinality returns the FORMAT cardinality of the first
// record, or 0 for a table without records.
func (t *Table) formatCardinality() int {
	if len(t.keys) == 0 {
		return 0
	}
	return SubfieldCount(t.records[t.keys[0]][FormatCol])
}

// Merge strips both tables to the same genotype subfields and returns
// their outer join on record key: the result's header is t's header
// with other's sample columns appended, rows for keys absent from one
// side are padded with missing-genotype templates sized to the
// aligned FORMAT cardinality. All of t's keys come first, in t's
// order, then the keys exclusive to other, in other's order.
//
// The aligned FORMAT cardinalities are compared once up front; a
// mismatch fails with an IncompatibleMergeError.
func (t *Table) Merge(other *Table, subfields ...string) (*Table, error) {
	left, err := t.Strip(subfields...)
	if err != nil {
		return nil, err
	}
	right, err := other.Strip(subfields...)
	if err != nil {
		return nil, err
	}
	return mergeStripped(left, right)
}

// mergeStripped joins two tables whose FORMAT layouts have already
// been aligned by Strip. The cardinality check is defensive: callers
// that strip both sides with the same subfield set cannot trip it.
func mergeStripped(left, right *Table) (*Table, error) {
	leftCard, rightCard := left.formatCardinality(), right.formatCardinality()
	if leftCard > 0 && rightCard > 0 && leftCard != rightCard {
		return nil, &IncompatibleMergeError{Left: leftCard, Right: rightCard}
	}
	n := rightCard
	if n == 0 {
		n = leftCard
	}
	missing := MissingTemplate(n)
	nLeft, nRight := left.NSamples(), right.NSamples()
	result := NewTable()
	result.Columns = append(append([]string(nil), left.Columns...), right.Samples()...)
	for _, key := range left.keys {
		fields := left.records[key]
		merged := make([]string, 0, len(fields)+nRight)
		merged = append(merged, fields...)
		if rfields, ok := right.records[key]; ok {
			merged = append(merged, rfields[FixedColumns:]...)
		} else {
			for i := 0; i < nRight; i++ {
				merged = append(merged, missing)
			}
		}
		result.insert(key, merged)
	}
	for _, key := range right.keys {
		if _, ok := result.records[key]; ok {
			// Shared keys already carry the right-hand samples.
			continue
		}
		rfields := right.records[key]
		merged := make([]string, 0, nLeft+len(rfields))
		merged = append(merged, rfields[:FixedColumns]...)
		for i := 0; i < nLeft; i++ {
			merged = append(merged, missing)
		}
		merged = append(merged, rfields[FixedColumns:]...)
		result.insert(key, merged)
	}
	return result, nil
}
