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
	"context"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"

	"github.com/stockparfait/arkfunds/api"
	"github.com/stockparfait/arkfunds/table"
)

// Stock is the facade for the individual stock endpoints. Unlike ETF, any
// well-formed ticker is accepted; unknown tickers simply yield no data.
type Stock struct {
	symbols []string
}

// NewStock creates a Stock facade from one or more ticker symbols; each
// argument may itself be a whitespace- or comma-separated list.
func NewStock(symbols ...string) (*Stock, error) {
	parsed := parseAll(symbols)
	if len(parsed) == 0 {
		return nil, errors.Reason("no ticker symbols given")
	}
	return &Stock{symbols: parsed}, nil
}

// Symbols lists the ticker symbols in request order.
func (s *Stock) Symbols() []string {
	res := make([]string, len(s.symbols))
	copy(res, s.symbols)
	return res
}

func (s *Stock) collect(ctx context.Context, op api.Operation, q *api.Query) (*table.Table, error) {
	return collect(ctx, api.Endpoint{Class: api.Stock, Op: op}, s.symbols, q)
}

// Profile returns the stocks' profile information, one row per ticker with
// data. With price, the current share price is included.
func (s *Stock) Profile(ctx context.Context, price bool) (*table.Table, error) {
	return s.collect(ctx, api.Profile, api.NewQuery().Price(price))
}

// ProfileData returns the raw profile mapping per ticker, keyed by the
// requested symbol. Tickers with no data are absent from the result.
func (s *Stock) ProfileData(ctx context.Context, price bool) (map[string]map[string]interface{}, error) {
	e := api.Endpoint{Class: api.Stock, Op: api.Profile}
	res := make(map[string]map[string]interface{})
	for _, symbol := range s.symbols {
		js, found, err := api.Fetch(ctx, e, api.NewQuery().Price(price).Symbol(symbol))
		if err != nil {
			return nil, errors.Annotate(err, "failed to fetch %s for '%s'", e, symbol)
		}
		if !found {
			logging.Debugf(ctx, "%s: no data for '%s'", e, symbol)
			continue
		}
		payload, ok := js.(map[string]interface{})
		if !ok {
			return nil, errors.Reason("%s: expected a JSON object for '%s', got %T",
				e, symbol, js)
		}
		profile, ok := payload["profile"].(map[string]interface{})
		if !ok || len(profile) == 0 {
			continue
		}
		res[symbol] = profile
	}
	return res, nil
}

// FundOwnership returns which ARK funds hold the stocks, within the optional
// date range, optionally limiting the number of results.
func (s *Stock) FundOwnership(ctx context.Context, dateFrom, dateTo api.Date, limit int) (*table.Table, error) {
	q := api.NewQuery().DateFrom(dateFrom).DateTo(dateTo).Limit(limit)
	return s.collect(ctx, api.Ownership, q)
}

// Trades returns ARK fund trades in the stocks. The direction filter is
// case-insensitive and may be empty for both directions.
func (s *Stock) Trades(ctx context.Context, direction string, dateFrom, dateTo api.Date, limit int) (*table.Table, error) {
	q := api.NewQuery().DateFrom(dateFrom).DateTo(dateTo).Limit(limit)
	if direction != "" {
		d, err := api.ParseDirection(direction)
		if err != nil {
			return nil, err
		}
		q = q.Direction(d)
	}
	return s.collect(ctx, api.Trades, q)
}

// Price returns the current price info, one row per ticker with data.
func (s *Stock) Price(ctx context.Context) (*table.Table, error) {
	return s.collect(ctx, api.Price, api.NewQuery())
}
