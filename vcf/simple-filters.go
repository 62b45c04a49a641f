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
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// sumDepths sums a comma-separated allele depth list. ok is false
// when any component is the missing token.
func sumDepths(ad string) (dp int, ok bool, err error) {
	for {
		end := strings.IndexByte(ad, ',')
		depth := ad
		if end >= 0 {
			depth = ad[:end]
		}
		if depth == MissingValue {
			return 0, false, nil
		}
		value, err := strconv.Atoi(depth)
		if err != nil {
			return 0, false, err
		}
		dp += value
		if end < 0 {
			return dp, true, nil
		}
		ad = ad[end+1:]
	}
}

// AddDepth returns a new Table in which every record's FORMAT is
// extended with a trailing total-depth subfield DP, computed per
// sample as the sum of the comma-separated allele depths in AD. When
// any allele depth component is missing, the sample's DP value is
// missing, but FORMAT is still extended for every record.
func (t *Table) AddDepth() (*Table, error) {
	result := t.emptyLike()
	for _, key := range t.keys {
		fields := t.records[key]
		i, ok := subfieldIndex(fields[FormatCol], AD)
		if !ok {
			return nil, &SubfieldNotFoundError{Subfield: AD, Record: key}
		}
		updated := cloneFields(fields)
		updated[FormatCol] = fields[FormatCol] + ":" + DP
		for s := FixedColumns; s < len(updated); s++ {
			ad, _ := subfieldAt(fields[s], i)
			dp, ok, err := sumDepths(ad)
			if err != nil {
				return nil, &MalformedLineError{
					Text:   fields[s],
					Reason: fmt.Sprintf("invalid allele depth list %v", ad),
				}
			}
			if !ok {
				updated[s] = fields[s] + ":" + MissingValue
			} else {
				updated[s] = fields[s] + ":" + strconv.Itoa(dp)
			}
		}
		result.insert(key, updated)
	}
	return result, nil
}

// filterSubfield nulls out every sample cell whose named subfield is
// missing or for which below returns true, replacing the cell with an
// all-missing template matching its local subfield cardinality.
func (t *Table) filterSubfield(name string, below func(value string) (bool, error)) (*Table, error) {
	result := t.emptyLike()
	for _, key := range t.keys {
		fields := t.records[key]
		i, ok := subfieldIndex(fields[FormatCol], name)
		if !ok {
			return nil, &SubfieldNotFoundError{Subfield: name, Record: key}
		}
		updated := cloneFields(fields)
		for s := FixedColumns; s < len(updated); s++ {
			value, present := subfieldAt(fields[s], i)
			fails := !present
			if present {
				var err error
				if fails, err = below(value); err != nil {
					return nil, &MalformedLineError{
						Text:   fields[s],
						Reason: fmt.Sprintf("invalid %v value %v", name, value),
					}
				}
			}
			if fails {
				updated[s] = MissingTemplate(SubfieldCount(fields[s]))
			}
		}
		result.insert(key, updated)
	}
	return result, nil
}

// FilterDepth returns a new Table in which every sample genotype
// whose total depth DP is missing or below the threshold is replaced
// with an all-missing template.
func (t *Table) FilterDepth(threshold int) (*Table, error) {
	return t.filterSubfield(DP, func(value string) (bool, error) {
		dp, err := strconv.Atoi(value)
		if err != nil {
			return false, err
		}
		return dp < threshold, nil
	})
}

// FilterFrequency returns a new Table in which every sample genotype
// whose allele frequency AF is missing or below the threshold is
// replaced with an all-missing template.
func (t *Table) FilterFrequency(threshold float64) (*Table, error) {
	return t.filterSubfield(AF, func(value string) (bool, error) {
		af, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return false, err
		}
		return af < threshold, nil
	})
}

// callMask returns the set of sample indices whose genotype subfield
// carries no missing token, i.e. the samples with a full call.
func (t *Table) callMask(fields []string) *bitset.BitSet {
	mask := bitset.New(uint(t.NSamples()))
	for s := FixedColumns; s < len(fields); s++ {
		if !strings.Contains(firstSubfield(fields[s]), MissingValue) {
			mask.Set(uint(s - FixedColumns))
		}
	}
	return mask
}

// RemoveEmpty returns a new Table without the records in which no
// sample has a genotype call left, which discards variants that
// became uninformative after filtering or merging.
func (t *Table) RemoveEmpty() *Table {
	result := t.emptyLike()
	for _, key := range t.keys {
		fields := t.records[key]
		if t.callMask(fields).None() {
			continue
		}
		result.insert(key, cloneFields(fields))
	}
	return result
}

// Update returns a new Table in which, for every record key present
// in both tables, the requested fixed columns are overwritten with
// the other table's values. Only ID, QUAL, FILTER, INFO and FORMAT
// can be requested; any other name is silently dropped. Records
// present only in t are left unchanged, and records unique to other
// are ignored.
func (t *Table) Update(other *Table, names []string) *Table {
	var indices []int
	for _, name := range names {
		switch name {
		case "ID", "QUAL", "FILTER", "INFO", "FORMAT":
			indices = append(indices, fixedColumnIndex(name))
		}
	}
	result := t.emptyLike()
	for _, key := range t.keys {
		fields := cloneFields(t.records[key])
		if ofields, ok := other.records[key]; ok {
			for _, i := range indices {
				fields[i] = ofields[i]
			}
		}
		result.insert(key, fields)
	}
	return result
}

// Apply returns a new Table in which the named fixed column is
// replaced with the output of the given function in every record,
// independent of any other column. Record keys are not recomputed.
func (t *Table) Apply(name string, transform func(string) string) (*Table, error) {
	i := fixedColumnIndex(name)
	if i < 0 || i >= FixedColumns {
		return nil, fmt.Errorf("unknown fixed VCF column %v", name)
	}
	result := t.emptyLike()
	for _, key := range t.keys {
		fields := cloneFields(t.records[key])
		fields[i] = transform(fields[i])
		result.insert(key, fields)
	}
	return result, nil
}
