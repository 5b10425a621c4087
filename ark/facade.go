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

// Package ark implements the public facades of the arkfunds.io API: ETF for
// the ARK fund endpoints and Stock for the individual stock endpoints. A
// facade is an immutable set of validated symbols; the connection is carried
// by the context, injected with api.UseClient.
package ark

import (
	"context"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"

	"github.com/stockparfait/arkfunds/api"
	"github.com/stockparfait/arkfunds/shape"
	"github.com/stockparfait/arkfunds/table"
)

// parseAll tokenizes and canonicalizes constructor arguments: each argument
// may be a single symbol or a whitespace- or comma-separated list.
func parseAll(symbols []string) []string {
	var res []string
	for _, s := range symbols {
		res = append(res, ParseSymbols(s)...)
	}
	return res
}

// collect fetches and shapes the endpoint for each symbol sequentially, in
// request order, concatenating the per-symbol records into a single table.
// A symbol with no data (HTTP 404) contributes nothing; any other fetch
// failure aborts the whole batch. The result always carries the endpoint's
// declared column schema, even with zero rows.
func collect(ctx context.Context, e api.Endpoint, symbols []string, q *api.Query) (*table.Table, error) {
	tbl := table.NewTable(e.Columns()...)
	for _, symbol := range symbols {
		js, found, err := api.Fetch(ctx, e, q.Symbol(symbol))
		if err != nil {
			return nil, errors.Annotate(err, "failed to fetch %s for '%s'", e, symbol)
		}
		if !found {
			logging.Debugf(ctx, "%s: no data for '%s'", e, symbol)
			continue
		}
		recs, err := shape.Records(e, symbol, js)
		if err != nil {
			return nil, err
		}
		tbl.AddRecord(recs...)
	}
	return tbl, nil
}
