// Copyright 2023 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package table

import (
	"fmt"
	"strconv"
)

// cellKind discriminates the value stored in a Cell.
type cellKind uint8

const (
	cellNull cellKind = iota
	cellString
	cellNumber
	cellBool
)

// Cell is a union of the JSON scalar types: null, string, number or bool.
// The zero value is the null cell.
type Cell struct {
	kind    cellKind
	number  float64
	string  string
	boolean bool
}

// Null creates a null Cell.
func Null() Cell {
	return Cell{}
}

// String creates a string Cell.
func String(s string) Cell {
	return Cell{kind: cellString, string: s}
}

// Number creates a numeric Cell.
func Number(n float64) Cell {
	return Cell{kind: cellNumber, number: n}
}

// Bool creates a boolean Cell.
func Bool(b bool) Cell {
	return Cell{kind: cellBool, boolean: b}
}

// FromJSON converts a generic value unmarshaled by encoding/json into a Cell.
// Composite values (objects, arrays) are stringified with %v.
func FromJSON(v interface{}) Cell {
	switch x := v.(type) {
	case nil:
		return Null()
	case string:
		return String(x)
	case float64:
		return Number(x)
	case bool:
		return Bool(x)
	default:
		return String(fmt.Sprintf("%v", x))
	}
}

// IsNull tests whether the cell holds no value.
func (c Cell) IsNull() bool { return c.kind == cellNull }

// Less orders cells for sorting: null < string < number < bool, and within
// one kind by the natural order of the value.
func (c Cell) Less(c2 Cell) bool {
	if c.kind != c2.kind {
		return c.kind < c2.kind
	}
	switch c.kind {
	case cellString:
		return c.string < c2.string
	case cellNumber:
		return c.number < c2.number
	case cellBool:
		return !c.boolean && c2.boolean
	}
	return false
}

// Value returns the cell's value as a generic JSON value: nil, string,
// float64 or bool.
func (c Cell) Value() interface{} {
	switch c.kind {
	case cellString:
		return c.string
	case cellNumber:
		return c.number
	case cellBool:
		return c.boolean
	}
	return nil
}

// String prints the cell's value; the null cell prints as an empty string.
func (c Cell) String() string {
	switch c.kind {
	case cellString:
		return c.string
	case cellNumber:
		return strconv.FormatFloat(c.number, 'f', -1, 64)
	case cellBool:
		return strconv.FormatBool(c.boolean)
	}
	return ""
}

// Row interface that a table row representation must implement.
type Row interface {
	CSV() []string // an encoding/csv compatible row representation
}

// Record is a single flattened row: the values of a fixed column schema in
// the schema's declared order.
type Record []Cell

var _ Row = Record{}

// CSV implements the Row interface.
func (r Record) CSV() []string {
	res := make([]string, len(r))
	for i, c := range r {
		res[i] = c.String()
	}
	return res
}

// RecordFromMap flattens a generic JSON object into a Record following the
// column schema: missing fields become null cells, fields not listed in the
// schema are dropped.
func RecordFromMap(schema []string, m map[string]interface{}) Record {
	r := make(Record, len(schema))
	for i, col := range schema {
		if v, ok := m[col]; ok {
			r[i] = FromJSON(v)
		}
	}
	return r
}

// Table is an ordered sequence of rows with an optional column header. Rows
// are implicitly indexed by their dense 0..n-1 position.
type Table struct {
	Header []string // optional, may be nil
	Rows   []Row
}

// NewTable creates a new Table instance with optional column headers. When
// present, the number of column headers is expected to equal the number of
// elements in each Row.
func NewTable(header ...string) *Table {
	return &Table{Header: header}
}

// AddRow adds one or more rows to the table.
func (t *Table) AddRow(rows ...Row) {
	t.Rows = append(t.Rows, rows...)
}

// AddRecord adds one or more Records to the table.
func (t *Table) AddRecord(records ...Record) {
	for _, r := range records {
		t.Rows = append(t.Rows, r)
	}
}
