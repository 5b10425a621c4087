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
	"strings"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"

	"github.com/stockparfait/arkfunds/api"
	"github.com/stockparfait/arkfunds/table"
)

// ETF is the facade for the ARK fund endpoints. It holds a validated,
// immutable list of fund symbols.
type ETF struct {
	symbols []string // members of the ArkFunds whitelist, in request order
	invalid []string // rejected symbols, kept for diagnostics
}

// NewETF creates an ETF facade from one or more fund symbols; each argument
// may itself be a whitespace- or comma-separated list. Symbols not in the
// ArkFunds whitelist are kept as diagnostics and skipped by the operations;
// it is an error when no valid symbols remain.
func NewETF(symbols ...string) (*ETF, error) {
	valid, invalid := partitionSymbols(parseAll(symbols))
	if len(valid) == 0 {
		return nil, errors.Reason(
			"no valid fund symbols in %v; symbols accepted: %s",
			invalid, strings.Join(ArkFunds, ", "))
	}
	return &ETF{symbols: valid, invalid: invalid}, nil
}

// NewETFStrict is like NewETF, but any symbol outside of the ArkFunds
// whitelist is a construction-time error.
func NewETFStrict(symbols ...string) (*ETF, error) {
	e, err := NewETF(symbols...)
	if err != nil {
		return nil, err
	}
	if len(e.invalid) > 0 {
		return nil, errors.Reason(
			"invalid fund symbols %v; symbols accepted: %s",
			e.invalid, strings.Join(ArkFunds, ", "))
	}
	return e, nil
}

// Symbols lists the validated fund symbols in request order.
func (e *ETF) Symbols() []string {
	res := make([]string, len(e.symbols))
	copy(res, e.symbols)
	return res
}

// InvalidSymbols lists the rejected symbols in request order.
func (e *ETF) InvalidSymbols() []string {
	res := make([]string, len(e.invalid))
	copy(res, e.invalid)
	return res
}

func (e *ETF) collect(ctx context.Context, op api.Operation, q *api.Query) (*table.Table, error) {
	if len(e.invalid) > 0 {
		logging.Warningf(ctx, "ignoring invalid fund symbols: %s",
			strings.Join(e.invalid, ", "))
	}
	return collect(ctx, api.Endpoint{Class: api.Fund, Op: op}, e.symbols, q)
}

// Profile returns the funds' profile information, one row per fund.
func (e *ETF) Profile(ctx context.Context) (*table.Table, error) {
	return e.collect(ctx, api.Profile, api.NewQuery())
}

// Holdings returns the funds' holdings, optionally as of the given date.
func (e *ETF) Holdings(ctx context.Context, date api.Date) (*table.Table, error) {
	return e.collect(ctx, api.Holdings, api.NewQuery().Date(date))
}

// Trades returns the funds' intraday trades for the given period; the zero
// value defaults to 1d.
func (e *ETF) Trades(ctx context.Context, period api.Period) (*table.Table, error) {
	if period == "" {
		period = api.Period1D
	}
	if !period.Valid() {
		return nil, errors.Reason("invalid period: '%s'", period)
	}
	return e.collect(ctx, api.Trades, api.NewQuery().Period(period))
}

// News returns fund news within the optional date range.
func (e *ETF) News(ctx context.Context, dateFrom, dateTo api.Date) (*table.Table, error) {
	return e.collect(ctx, api.News, api.NewQuery().DateFrom(dateFrom).DateTo(dateTo))
}

// Performance returns the funds' performance pivoted into one row per
// (datatype, period) pair.
func (e *ETF) Performance(ctx context.Context, formatted bool) (*table.Table, error) {
	return e.collect(ctx, api.Performance, api.NewQuery().Formatted(formatted))
}
