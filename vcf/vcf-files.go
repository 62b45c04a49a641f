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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/exascience/pargo/pipeline"
	"github.com/google/uuid"
)

// VcfExt is the file extension for VCF files.
const VcfExt = ".vcf"

const metaMarker = "##"

// InputFile represents a VCF file for input.
type InputFile struct {
	rc io.ReadCloser
	*bufio.Reader
}

// OutputFile represents a VCF file for output.
//
// The data is written to a temporary file that replaces the target
// only when Close succeeds, so a failed serialization never leaves a
// partial file behind that masquerades as complete.
type OutputFile struct {
	wc   io.WriteCloser
	name string // final path; "" when writing to stdout
	tmp  string
	*bufio.Writer
}

// Open a VCF file for input.
//
// If the name is "/dev/stdin", then the input is read from os.Stdin.
func Open(name string) (*InputFile, error) {
	if name == "/dev/stdin" {
		return &InputFile{os.Stdin, bufio.NewReader(os.Stdin)}, nil
	}
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return &InputFile{file, bufio.NewReader(file)}, nil
}

// Create a VCF file for output.
//
// If the name is "/dev/stdout", then the output is written to
// os.Stdout.
func Create(name string) (*OutputFile, error) {
	if name == "/dev/stdout" {
		return &OutputFile{wc: os.Stdout, Writer: bufio.NewWriter(os.Stdout)}, nil
	}
	tmp := filepath.Join(filepath.Dir(name), "."+filepath.Base(name)+"."+uuid.New().String())
	file, err := os.Create(tmp)
	if err != nil {
		return nil, err
	}
	return &OutputFile{wc: file, name: name, tmp: tmp, Writer: bufio.NewWriter(file)}, nil
}

// Close the VCF input file.
func (input *InputFile) Close() error {
	if input.rc != os.Stdin {
		return input.rc.Close()
	}
	return nil
}

// Close flushes the output and moves the temporary file to its final
// destination. When flushing or closing fails, the temporary file is
// removed and the target is left untouched.
func (output *OutputFile) Close() error {
	err := output.Flush()
	if output.wc == os.Stdout {
		return err
	}
	if err != nil {
		_ = output.wc.Close()
		_ = os.Remove(output.tmp)
		return err
	}
	if err := output.wc.Close(); err != nil {
		_ = os.Remove(output.tmp)
		return err
	}
	return os.Rename(output.tmp, output.name)
}

func getLine(reader *bufio.Reader) (line string, err error) {
	line, err = reader.ReadString('\n')
	switch {
	case err == nil:
		line = line[:len(line)-1]
	case err == io.EOF:
		err = nil
	}
	return
}

type parsedRecord struct {
	key    string
	fields []string
}

// ParseTable reads a VCF file into a Table.
//
// Lines starting with "##" are collected verbatim as metadata, in
// order, wherever they occur in the file. The single "#CHROM" line
// becomes the header, overriding the default header columns. All
// other non-blank lines become records; when a record key occurs more
// than once, the last occurrence wins.
func ParseTable(reader *bufio.Reader) (table *Table, err error) {
	table = NewTable()
	for {
		data, e := reader.Peek(1)
		if e == io.EOF {
			return table, nil
		}
		if e != nil {
			return nil, e
		}
		if data[0] != '#' {
			break
		}
		line, e := getLine(reader)
		if e != nil {
			return nil, e
		}
		if strings.HasPrefix(line, metaMarker) {
			table.Meta = append(table.Meta, line)
		} else {
			columns := splitFields(line)
			columns[0] = strings.TrimPrefix(columns[0], "#")
			if len(columns) < FixedColumns {
				return nil, &MalformedLineError{
					Text:   line,
					Reason: fmt.Sprintf("header declares %v columns, the %v fixed VCF columns are required", len(columns), FixedColumns),
				}
			}
			table.Columns = columns
		}
	}
	var p pipeline.Pipeline
	p.Source(pipeline.NewScanner(reader))
	p.Add(pipeline.LimitedPar(0, pipeline.Receive(func(_ int, data interface{}) interface{} {
		strs := data.([]string)
		parsed := make([]parsedRecord, 0, len(strs))
		for _, str := range strs {
			if str == "" {
				continue
			}
			if strings.HasPrefix(str, metaMarker) {
				// record keys are never empty, so an empty key marks a
				// metadata line for the collect stage
				parsed = append(parsed, parsedRecord{fields: []string{str}})
				continue
			}
			fields := splitFields(str)
			if len(fields) != len(table.Columns) {
				p.SetErr(&MalformedLineError{
					Text:   str,
					Reason: fmt.Sprintf("%v fields, header declares %v", len(fields), len(table.Columns)),
				})
				return parsed
			}
			if len(fields) > FixedColumns {
				n := SubfieldCount(fields[FormatCol])
				for _, cell := range fields[FixedColumns:] {
					if SubfieldCount(cell) != n {
						p.SetErr(&MalformedLineError{
							Text:   str,
							Reason: fmt.Sprintf("sample cell %v does not match the FORMAT cardinality %v", cell, n),
						})
						return parsed
					}
				}
			}
			parsed = append(parsed, parsedRecord{Key(fields), fields})
		}
		return parsed
	})))
	p.Add(pipeline.Ord(pipeline.Receive(func(_ int, data interface{}) interface{} {
		for _, record := range data.([]parsedRecord) {
			if record.key == "" {
				table.Meta = append(table.Meta, record.fields[0])
				continue
			}
			table.insert(record.key, record.fields)
		}
		return data
	})))
	p.Run()
	if err = p.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

// Parse reads the full contents of the input file into a Table.
func (input *InputFile) Parse() (*Table, error) {
	return ParseTable(input.Reader)
}

// Format outputs the Table: metadata lines verbatim, then the header
// line, then one line per record in insertion order.
func (t *Table) Format(out *bufio.Writer) error {
	for _, meta := range t.Meta {
		_, _ = out.WriteString(meta)
		_ = out.WriteByte('\n')
	}
	_ = out.WriteByte('#')
	if len(t.Columns) > 0 {
		_, _ = out.WriteString(t.Columns[0])
		for _, column := range t.Columns[1:] {
			_ = out.WriteByte('\t')
			_, _ = out.WriteString(column)
		}
	}
	_ = out.WriteByte('\n')
	for _, key := range t.keys {
		fields := t.records[key]
		for i, field := range fields {
			if i > 0 {
				_ = out.WriteByte('\t')
			}
			_, _ = out.WriteString(field)
		}
		_ = out.WriteByte('\n')
	}
	return out.Flush()
}

// ReadFile reads a VCF file into a Table.
func ReadFile(name string) (table *Table, err error) {
	input, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		nerr := input.Close()
		if err == nil {
			err = nerr
		}
	}()
	return input.Parse()
}

// WriteFile writes the Table to a VCF file.
func (t *Table) WriteFile(name string) (err error) {
	output, err := Create(name)
	if err != nil {
		return err
	}
	defer func() {
		nerr := output.Close()
		if err == nil {
			err = nerr
		}
	}()
	return t.Format(output.Writer)
}
