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
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stockparfait/fetch"
	"github.com/stockparfait/testutil"

	"github.com/stockparfait/arkfunds/api"
	"github.com/stockparfait/arkfunds/table"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStockConstruction(t *testing.T) {
	t.Parallel()

	Convey("NewStock accepts any well-formed tickers", t, func() {
		s, err := NewStock("tsla, aapl", "tdoc")
		So(err, ShouldBeNil)
		So(s.Symbols(), ShouldResemble, []string{"TSLA", "AAPL", "TDOC"})
	})

	Convey("NewStock requires at least one ticker", t, func() {
		_, err := NewStock("  ,, ")
		So(err, ShouldNotBeNil)
	})
}

func TestStockOperations(t *testing.T) {
	Convey("Stock operations against a test server", t, func() {
		server := testutil.NewTestServer()
		defer server.Close()

		ctx := fetch.UseClient(context.Background(), server.Client())
		api.URL = server.URL() + "/api/v2"
		ctx = api.UseClient(ctx)

		Convey("Trades lower-cases the direction and passes filters", func() {
			server.ResponseBody = []string{`{"symbol": "TSLA", "trades": [
  {"date": "2021-07-22", "fund": "ARKK", "direction": "Sell",
   "shares": 144200, "etf_percent": 0.537}
]}`}
			s, err := NewStock("TSLA")
			So(err, ShouldBeNil)
			tbl, err := s.Trades(ctx, "Sell", api.NewDate(2021, 7, 1), api.Date{}, 10)
			So(err, ShouldBeNil)
			So(server.RequestPath, ShouldEqual, "/api/v2/stock/trades")
			So(server.RequestQuery, ShouldResemble, url.Values{
				"symbol":    []string{"TSLA"},
				"direction": []string{"sell"},
				"date_from": []string{"2021-07-01"},
				"limit":     []string{"10"},
			})
			So(len(tbl.Rows), ShouldEqual, 1)
			So(tbl.Rows[0].(table.Record)[0], ShouldResemble, table.String("TSLA"))

			Convey("an invalid direction is rejected", func() {
				_, err := s.Trades(ctx, "hold", api.Date{}, api.Date{}, 0)
				So(err, ShouldNotBeNil)
			})
		})

		Convey("FundOwnership flattens and sorts day blocks", func() {
			server.ResponseBody = []string{`{"symbol": "TSLA", "data": [
  {"date": "2021-07-23", "ownership": [
    {"date": "2021-07-23", "fund": "ARKW", "weight": 9.87, "weight_rank": 2},
    {"date": "2021-07-23", "fund": "ARKK", "weight": 10.33, "weight_rank": 1}
  ]}
]}`}
			s, err := NewStock("TSLA")
			So(err, ShouldBeNil)
			tbl, err := s.FundOwnership(ctx, api.Date{}, api.Date{}, 0)
			So(err, ShouldBeNil)
			So(len(tbl.Rows), ShouldEqual, 2)
			// sorted by weight_rank: ARKK first
			So(tbl.Rows[0].(table.Record)[2], ShouldResemble, table.String("ARKK"))
			So(tbl.Rows[1].(table.Record)[2], ShouldResemble, table.String("ARKW"))
		})

		Convey("ProfileData returns the raw mapping per symbol", func() {
			server.ResponseBody = []string{
				`{"symbol": "TSLA", "profile": {"ticker": "TSLA", "name": "Tesla, Inc."}}`,
			}
			s, err := NewStock("TSLA")
			So(err, ShouldBeNil)
			data, err := s.ProfileData(ctx, false)
			So(err, ShouldBeNil)
			So(data, ShouldResemble, map[string]map[string]interface{}{
				"TSLA": {"ticker": "TSLA", "name": "Tesla, Inc."},
			})
			So(server.RequestQuery["price"], ShouldResemble, []string{"false"})
		})
	})

	Convey("Batch error handling", t, func() {
		// Per-symbol statuses, keyed by the requested symbol.
		statuses := map[string]int{}
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				symbol := r.URL.Query().Get("symbol")
				if status := statuses[symbol]; status != 0 {
					w.WriteHeader(status)
					return
				}
				fmt.Fprintf(w, `{"symbol": %q, "exchange": "NASDAQ", "currency": "USD",
  "price": 100.5, "change": 1.2, "changep": 1.1, "last_trade": "2021-07-23T20:00:02"}`,
					symbol)
			}))
		defer server.Close()

		ctx := fetch.UseClient(context.Background(), server.Client())
		api.URL = server.URL
		ctx = api.UseClient(ctx)

		Convey("a symbol with no data is skipped, not an error", func() {
			statuses["NODATA"] = http.StatusNotFound
			s, err := NewStock("tsla nodata aapl")
			So(err, ShouldBeNil)
			tbl, err := s.Price(ctx)
			So(err, ShouldBeNil)
			So(len(tbl.Rows), ShouldEqual, 2)
			So(tbl.Rows[0].(table.Record)[0], ShouldResemble, table.String("TSLA"))
			So(tbl.Rows[1].(table.Record)[0], ShouldResemble, table.String("AAPL"))
		})

		Convey("all symbols without data yield a schema-correct empty table", func() {
			statuses["NODATA"] = http.StatusNotFound
			s, err := NewStock("NODATA")
			So(err, ShouldBeNil)
			tbl, err := s.Price(ctx)
			So(err, ShouldBeNil)
			So(tbl.Header, ShouldResemble, api.Endpoint{Class: api.Stock, Op: api.Price}.Columns())
			So(len(tbl.Rows), ShouldEqual, 0)
		})

		Convey("a transport failure aborts the whole batch", func() {
			statuses["BAD"] = http.StatusInternalServerError
			s, err := NewStock("tsla bad aapl")
			So(err, ShouldBeNil)
			_, err = s.Price(ctx)
			So(err, ShouldNotBeNil)
		})
	})
}
