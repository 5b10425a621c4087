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

// Package shape converts raw JSON payloads of the arkfunds.io endpoints into
// flat records with the endpoint's fixed column schema. Each endpoint has its
// own pure shaper; shaping the same payload twice yields identical records.
package shape

import (
	"github.com/stockparfait/errors"
	"golang.org/x/exp/slices"

	"github.com/stockparfait/arkfunds/api"
	"github.com/stockparfait/arkfunds/table"
)

// shaper converts one symbol's payload into records following the column
// schema. The requested symbol is supplied separately, since some payloads do
// not carry it.
type shaper func(columns []string, symbol string, js interface{}) ([]table.Record, error)

var shapers = map[api.Endpoint]shaper{
	{Class: api.Fund, Op: api.Profile}:     profileShaper,
	{Class: api.Fund, Op: api.Holdings}:    genericShaper("holdings"),
	{Class: api.Fund, Op: api.Trades}:      genericShaper("trades"),
	{Class: api.Fund, Op: api.News}:        genericShaper("news"),
	{Class: api.Fund, Op: api.Performance}: performanceShaper,
	{Class: api.Stock, Op: api.Profile}:    profileShaper,
	{Class: api.Stock, Op: api.Ownership}:  ownershipShaper,
	{Class: api.Stock, Op: api.Trades}:     tradesShaper,
	{Class: api.Stock, Op: api.Price}:      priceShaper,
}

// Records shapes the raw JSON document returned by the endpoint for a single
// requested symbol into a sequence of flat records. An empty result means "no
// usable data for this symbol"; it is not an error.
func Records(e api.Endpoint, symbol string, js interface{}) ([]table.Record, error) {
	s, ok := shapers[e]
	if !ok {
		return nil, errors.Reason("no shaper for endpoint %s", e)
	}
	recs, err := s(e.Columns(), symbol, js)
	if err != nil {
		return nil, errors.Annotate(err, "failed to shape %s payload for '%s'",
			e, symbol)
	}
	return recs, nil
}

// object asserts that a JSON value is an object.
func object(js interface{}) (map[string]interface{}, error) {
	m, ok := js.(map[string]interface{})
	if !ok {
		return nil, errors.Reason("expected a JSON object, got %T", js)
	}
	return m, nil
}

// genericShaper shapes the value under the given payload key: a list yields
// one record per element, a single object yields exactly one record.
func genericShaper(key string) shaper {
	return func(columns []string, symbol string, js interface{}) ([]table.Record, error) {
		payload, err := object(js)
		if err != nil {
			return nil, err
		}
		switch v := payload[key].(type) {
		case []interface{}:
			recs := make([]table.Record, len(v))
			for i, elem := range v {
				m, err := object(elem)
				if err != nil {
					return nil, errors.Annotate(err, "element %d of '%s'", i, key)
				}
				recs[i] = table.RecordFromMap(columns, m)
			}
			return recs, nil
		case map[string]interface{}:
			return []table.Record{table.RecordFromMap(columns, v)}, nil
		}
		return nil, errors.Reason("payload field '%s' is neither a list nor an object", key)
	}
}

// profileShaper shapes a profile payload. An absent or empty profile object
// yields zero records rather than a row of nulls.
func profileShaper(columns []string, symbol string, js interface{}) ([]table.Record, error) {
	payload, err := object(js)
	if err != nil {
		return nil, err
	}
	v, ok := payload["profile"]
	if !ok || v == nil {
		return nil, nil
	}
	m, err := object(v)
	if err != nil {
		return nil, errors.Annotate(err, "'profile' field")
	}
	if len(m) == 0 {
		return nil, nil
	}
	return []table.Record{table.RecordFromMap(columns, m)}, nil
}

// priceShaper shapes a price payload, which is a flat object. When every
// field other than the symbol is null, there is no usable data and zero
// records are produced. The requested symbol is stamped into the ticker
// column.
func priceShaper(columns []string, symbol string, js interface{}) ([]table.Record, error) {
	payload, err := object(js)
	if err != nil {
		return nil, err
	}
	empty := true
	for k, v := range payload {
		if k != "symbol" && v != nil {
			empty = false
			break
		}
	}
	if empty {
		return nil, nil
	}
	m := stamped(payload, symbol)
	return []table.Record{table.RecordFromMap(columns, m)}, nil
}

// tradesShaper shapes a stock trades payload: one record per trade entry,
// with the requested symbol stamped into the ticker column, since the raw
// entries do not carry it.
func tradesShaper(columns []string, symbol string, js interface{}) ([]table.Record, error) {
	payload, err := object(js)
	if err != nil {
		return nil, err
	}
	trades, _ := payload["trades"].([]interface{})
	recs := make([]table.Record, len(trades))
	for i, elem := range trades {
		m, err := object(elem)
		if err != nil {
			return nil, errors.Annotate(err, "element %d of 'trades'", i)
		}
		recs[i] = table.RecordFromMap(columns, stamped(m, symbol))
	}
	return recs, nil
}

// ownershipShaper shapes a fund ownership payload, which nests ownership
// entries inside a list of per-day blocks. Each entry becomes one record with
// the requested symbol stamped in, and the result is stable-sorted by
// (ticker, date, weight_rank) ascending.
func ownershipShaper(columns []string, symbol string, js interface{}) ([]table.Record, error) {
	payload, err := object(js)
	if err != nil {
		return nil, err
	}
	days, _ := payload["data"].([]interface{})
	var recs []table.Record
	for i, elem := range days {
		day, err := object(elem)
		if err != nil {
			return nil, errors.Annotate(err, "element %d of 'data'", i)
		}
		entries, _ := day["ownership"].([]interface{})
		for j, entry := range entries {
			m, err := object(entry)
			if err != nil {
				return nil, errors.Annotate(err, "ownership entry %d of day %d", j, i)
			}
			recs = append(recs, table.RecordFromMap(columns, stamped(m, symbol)))
		}
	}
	sortRecords(recs, columns, "ticker", "date", "weight_rank")
	return recs, nil
}

// stamped returns a copy of the JSON object with the ticker field set to the
// requested symbol.
func stamped(m map[string]interface{}, symbol string) map[string]interface{} {
	m2 := make(map[string]interface{}, len(m)+1)
	for k, v := range m {
		m2[k] = v
	}
	m2["ticker"] = symbol
	return m2
}

// sortRecords stable-sorts records by the named key columns, ascending.
func sortRecords(recs []table.Record, columns []string, keys ...string) {
	var idx []int
	for _, key := range keys {
		if i := slices.Index(columns, key); i >= 0 {
			idx = append(idx, i)
		}
	}
	slices.SortStableFunc(recs, func(a, b table.Record) bool {
		for _, i := range idx {
			if a[i].Less(b[i]) {
				return true
			}
			if b[i].Less(a[i]) {
				return false
			}
		}
		return false
	})
}
