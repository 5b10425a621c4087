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

package shape

import (
	"fmt"
	"strconv"

	"github.com/stockparfait/errors"
	"golang.org/x/exp/slices"

	"github.com/stockparfait/arkfunds/table"
)

// Datatype labels of the performance rows.
const (
	Overview        = "Overview"
	TrailingReturns = "TrailingReturns"
	AnnualReturns   = "AnnualReturns"
)

// performanceShaper pivots a fund performance payload into flat rows. The
// payload carries one performance block with three differently shaped
// sub-structures:
//
//   - overview: {period name: return value, "asOfDate": date}
//   - trailingReturns: same shape as overview with its own asOfDate
//   - annualReturns: [{"year": Y, "value": V}, ...]
//
// Every key of the first two except asOfDate becomes one row dated by the
// block's asOfDate; every annual entry becomes one row dated {year}-12-31
// with the year string as its period. Period rows are emitted in sorted
// period order to keep the output deterministic; annual rows keep the
// payload order.
func performanceShaper(columns []string, symbol string, js interface{}) ([]table.Record, error) {
	payload, err := object(js)
	if err != nil {
		return nil, err
	}
	fund, ok := payload["symbol"].(string)
	if !ok {
		return nil, errors.Reason("payload has no 'symbol' field")
	}
	blocks, _ := payload["performance"].([]interface{})
	if len(blocks) == 0 {
		return nil, nil
	}
	perf, err := object(blocks[0])
	if err != nil {
		return nil, errors.Annotate(err, "performance block")
	}

	var recs []table.Record
	add := func(m map[string]interface{}) {
		m["fund"] = fund
		recs = append(recs, table.RecordFromMap(columns, m))
	}

	for _, b := range []struct {
		key      string
		datatype string
	}{
		{"overview", Overview},
		{"trailingReturns", TrailingReturns},
	} {
		block, err := periodBlock(perf, b.key)
		if err != nil {
			return nil, err
		}
		for _, period := range sortedPeriods(block) {
			add(map[string]interface{}{
				"datatype":   b.datatype,
				"as_of_date": block["asOfDate"],
				"period":     period,
				"return":     block[period],
			})
		}
	}

	annual, _ := perf["annualReturns"].([]interface{})
	for i, elem := range annual {
		entry, err := object(elem)
		if err != nil {
			return nil, errors.Annotate(err, "element %d of 'annualReturns'", i)
		}
		year := yearString(entry["year"])
		add(map[string]interface{}{
			"datatype":   AnnualReturns,
			"as_of_date": year + "-12-31",
			"period":     year,
			"return":     entry["value"],
		})
	}
	return recs, nil
}

// periodBlock extracts a {period: return} sub-object; an absent block is
// treated as empty.
func periodBlock(perf map[string]interface{}, key string) (map[string]interface{}, error) {
	v, ok := perf[key]
	if !ok || v == nil {
		return nil, nil
	}
	block, err := object(v)
	if err != nil {
		return nil, errors.Annotate(err, "'%s' field", key)
	}
	return block, nil
}

// sortedPeriods lists the period keys of a block in sorted order, excluding
// the asOfDate marker key.
func sortedPeriods(block map[string]interface{}) []string {
	var periods []string
	for k := range block {
		if k != "asOfDate" {
			periods = append(periods, k)
		}
	}
	slices.Sort(periods)
	return periods
}

// yearString renders the year of an annual returns entry, which the API
// sends as a JSON number.
func yearString(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.Itoa(int(f))
	}
	return fmt.Sprintf("%v", v)
}
