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
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/stockparfait/errors"
)

// Params are parameters for pretty-printing or CSV export of Table data.
type Params struct {
	Rows        int  // max. number of rows to write; 0 = unlimited (default)
	NoHeader    bool // whether to print the header, default - yes
	MaxColWidth int  // for WriteText only; 0 = unlimited, otherwise must be >= 4
}

// rowStrings lists the rows to be written out according to p, the header
// first when requested and present.
func (t *Table) rowStrings(p Params) [][]string {
	var rows [][]string
	if !p.NoHeader && len(t.Header) > 0 {
		rows = append(rows, t.Header)
	}
	for i, r := range t.Rows {
		if p.Rows > 0 && i >= p.Rows {
			break
		}
		rows = append(rows, r.CSV())
	}
	return rows
}

// WriteCSV writes the entire table to w in CSV format.
func (t *Table) WriteCSV(w io.Writer, p Params) error {
	cw := csv.NewWriter(w)
	for _, row := range t.rowStrings(p) {
		if err := cw.Write(row); err != nil {
			return errors.Annotate(err, "failed to write row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Annotate(err, "failed to flush written rows")
	}
	return nil
}

// WriteText writes the table as a text formatted for ease of reading:
// right-aligned columns separated by " | ", with a dashed line under the
// header.
func (t *Table) WriteText(w io.Writer, p Params) error {
	if p.MaxColWidth != 0 && p.MaxColWidth < 4 {
		return errors.Reason("MaxColWidth [%d] must be 0 or >= 4", p.MaxColWidth)
	}
	rows := t.rowStrings(p)
	if len(rows) == 0 {
		return nil
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		if len(row) != len(widths) {
			return errors.Reason("row size [%d] != expected size [%d]",
				len(row), len(widths))
		}
		for i, s := range row {
			if widths[i] < len(s) {
				widths[i] = len(s)
				if p.MaxColWidth > 0 && widths[i] > p.MaxColWidth {
					widths[i] = p.MaxColWidth
				}
			}
		}
	}

	write := func(row []string) error {
		cols := make([]string, len(row))
		for i, s := range row {
			if len([]rune(s)) > widths[i] {
				s = string([]rune(s)[:widths[i]-2]) + ".."
			}
			cols[i] = fmt.Sprintf("%[2]*[1]s", s, widths[i])
		}
		_, err := fmt.Fprintf(w, "%s\n", strings.Join(cols, " | "))
		return err
	}

	if !p.NoHeader && len(t.Header) > 0 {
		if err := write(rows[0]); err != nil {
			return errors.Annotate(err, "failed to write header")
		}
		dashed := make([]string, len(widths))
		for i, width := range widths {
			dashed[i] = strings.Repeat("-", width)
		}
		if err := write(dashed); err != nil {
			return errors.Annotate(err, "failed to write header separator")
		}
		rows = rows[1:]
	}
	for _, row := range rows {
		if err := write(row); err != nil {
			return errors.Annotate(err, "failed to write row")
		}
	}
	return nil
}
