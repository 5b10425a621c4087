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

package ark

import (
	"github.com/stockparfait/errors"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"

	"github.com/stockparfait/arkfunds/shape"
	"github.com/stockparfait/arkfunds/table"
)

// ReturnStats summarizes a fund's annual returns.
type ReturnStats struct {
	Mean   float64 // arithmetic mean of the annual returns
	StdDev float64 // sample standard deviation; 0 for a single sample
	N      int     // number of years with a reported return
}

// AnnualReturnStats computes per-fund summary statistics of the AnnualReturns
// rows in a shaped performance table, keyed by fund symbol. Rows with a null
// return (e.g. the running year) are skipped.
func AnnualReturnStats(tbl *table.Table) (map[string]ReturnStats, error) {
	fundIdx := slices.Index(tbl.Header, "fund")
	typeIdx := slices.Index(tbl.Header, "datatype")
	retIdx := slices.Index(tbl.Header, "return")
	if fundIdx < 0 || typeIdx < 0 || retIdx < 0 {
		return nil, errors.Reason("not a performance table: header %v", tbl.Header)
	}

	samples := make(map[string][]float64)
	var funds []string
	for i, row := range tbl.Rows {
		rec, ok := row.(table.Record)
		if !ok {
			return nil, errors.Reason("row %d is not a Record: %T", i, row)
		}
		if len(rec) != len(tbl.Header) {
			return nil, errors.Reason("row %d has %d cells for %d columns",
				i, len(rec), len(tbl.Header))
		}
		if rec[typeIdx].Value() != shape.AnnualReturns || rec[retIdx].IsNull() {
			continue
		}
		fund, ok := rec[fundIdx].Value().(string)
		if !ok {
			return nil, errors.Reason("row %d has a non-string fund column", i)
		}
		ret, ok := rec[retIdx].Value().(float64)
		if !ok {
			return nil, errors.Reason("row %d has a non-numeric return column", i)
		}
		if _, seen := samples[fund]; !seen {
			funds = append(funds, fund)
		}
		samples[fund] = append(samples[fund], ret)
	}

	res := make(map[string]ReturnStats, len(funds))
	for _, fund := range funds {
		xs := samples[fund]
		rs := ReturnStats{Mean: stat.Mean(xs, nil), N: len(xs)}
		if len(xs) > 1 {
			rs.StdDev = stat.StdDev(xs, nil)
		}
		res[fund] = rs
	}
	return res, nil
}
