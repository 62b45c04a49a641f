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
	"io"
	"strconv"
	"strings"

	"github.com/exascience/pargo/parallel"
	"gonum.org/v1/gonum/stat"
)

type sampleSummary struct {
	count  int
	depths []float64
}

// summarizeSamples scans all records once per sample. The work is
// split over the samples, so no two goroutines touch the same
// summary.
func (t *Table) summarizeSamples() []sampleSummary {
	summaries := make([]sampleSummary, t.NSamples())
	parallel.Range(0, len(summaries), 0, func(low, high int) {
		for s := low; s < high; s++ {
			summary := &summaries[s]
			for _, key := range t.keys {
				fields := t.records[key]
				cell := fields[FixedColumns+s]
				if strings.Contains(firstSubfield(cell), "1") {
					summary.count++
				}
				if i, ok := subfieldIndex(fields[FormatCol], DP); ok {
					if value, present := subfieldAt(cell, i); present {
						if dp, err := strconv.ParseFloat(value, 64); err == nil {
							summary.depths = append(summary.depths, dp)
						}
					}
				}
			}
		}
	})
	return summaries
}

// Describe writes descriptive statistics for the Table: per sample,
// the number of records with an alternate allele call, and the mean
// and standard deviation of the total-depth subfield DP for the
// records that declare it.
func (t *Table) Describe(out io.Writer) {
	samples, records := t.Shape()
	fmt.Fprintln(out, "Records:", records)
	fmt.Fprintln(out, "Samples:", samples)
	if samples == 0 {
		return
	}
	summaries := t.summarizeSamples()
	fmt.Fprintln(out, "Name", "VariantCount", "MeanDP", "StdDevDP")
	for s, name := range t.Samples() {
		summary := summaries[s]
		if len(summary.depths) == 0 {
			fmt.Fprintln(out, name, summary.count, MissingValue, MissingValue)
			continue
		}
		mean := stat.Mean(summary.depths, nil)
		if len(summary.depths) < 2 {
			// the sample standard deviation needs at least two observations
			fmt.Fprintf(out, "%v %v %.2f %v\n", name, summary.count, mean, MissingValue)
			continue
		}
		stddev := stat.StdDev(summary.depths, nil)
		fmt.Fprintf(out, "%v %v %.2f %.2f\n", name, summary.count, mean, stddev)
	}
}
