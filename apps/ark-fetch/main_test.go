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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stockparfait/fetch"
	"github.com/stockparfait/logging"
	"github.com/stockparfait/testutil"

	"github.com/stockparfait/arkfunds/api"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(t *testing.T) {
	tmpdir, tmpdirErr := os.MkdirTemp("", "test_ark_fetch")
	defer os.RemoveAll(tmpdir)

	Convey("Setup succeeded", t, func() {
		So(tmpdirErr, ShouldBeNil)
	})

	Convey("parseFlags", t, func() {
		Convey("parses a full stock query", func() {
			flags, err := parseFlags([]string{
				"-stock", "tsla, aapl", "-op", "trades", "-direction", "Buy",
				"-date-from", "2021-07-01", "-limit", "5", "-csv",
				"-log-level", "warning"})
			So(err, ShouldBeNil)
			So(flags.Stock, ShouldEqual, "tsla, aapl")
			So(flags.Op, ShouldEqual, "trades")
			So(flags.Direction, ShouldEqual, "Buy")
			So(flags.Limit, ShouldEqual, 5)
			So(flags.CSV, ShouldBeTrue)
			So(flags.LogLevel, ShouldEqual, logging.Warning)
		})

		Convey("requires exactly one of -etf or -stock", func() {
			_, err := parseFlags([]string{"-op", "price"})
			So(err, ShouldNotBeNil)
			_, err = parseFlags([]string{"-etf", "ARKK", "-stock", "TSLA", "-op", "price"})
			So(err, ShouldNotBeNil)
		})

		Convey("requires -op", func() {
			_, err := parseFlags([]string{"-etf", "ARKK"})
			So(err, ShouldNotBeNil)
		})
	})

	Convey("run works", t, func() {
		server := testutil.NewTestServer()
		defer server.Close()

		ctx := fetch.UseClient(context.Background(), server.Client())
		api.URL = server.URL() + "/api/v2"

		Convey("stock price as CSV", func() {
			server.ResponseBody = []string{`{"symbol": "TSLA", "exchange": "NASDAQ",
  "currency": "USD", "price": 709.67, "change": -8.77, "changep": -1.22,
  "last_trade": "2021-07-23T20:00:02"}`}
			flags, err := parseFlags([]string{"-stock", "TSLA", "-op", "price", "-csv"})
			So(err, ShouldBeNil)
			var buf bytes.Buffer
			So(run(ctx, flags, &buf), ShouldBeNil)
			So("\n"+buf.String(), ShouldEqual, `
ticker,exchange,currency,price,change,changep,last_trade
TSLA,NASDAQ,USD,709.67,-8.77,-1.22,2021-07-23T20:00:02
`)
		})

		Convey("etf returns summary", func() {
			server.ResponseBody = []string{`{
  "symbol": "ARKK",
  "performance": [{
    "overview": {"asOfDate": "2021-07-31", "ytdReturn": -2.5},
    "trailingReturns": {"asOfDate": "2021-07-31", "oneMonth": 5.2},
    "annualReturns": [
      {"year": 2020, "value": 20.0},
      {"year": 2019, "value": 10.0}
    ]
  }]
}`}
			flags, err := parseFlags([]string{"-etf", "ARKK", "-op", "returns", "-csv"})
			So(err, ShouldBeNil)
			var buf bytes.Buffer
			So(run(ctx, flags, &buf), ShouldBeNil)
			So("\n"+buf.String(), ShouldEqual, `
fund,mean,std_dev,years
ARKK,15,7.0710678118654755,2
`)
		})

		Convey("config overrides the client defaults", func() {
			confPath := filepath.Join(tmpdir, "config.toml")
			So(os.WriteFile(confPath, []byte(`
base_url = "`+server.URL()+`/api/v2"
user_agent = "ark-fetch-test/1.0"
timeout_sec = 5
`), 0644), ShouldBeNil)
			config, err := parseConfig(confPath)
			So(err, ShouldBeNil)
			So(config, ShouldResemble, &Config{
				BaseURL:    server.URL() + "/api/v2",
				UserAgent:  "ark-fetch-test/1.0",
				TimeoutSec: 5,
			})

			Convey("missing config file is an error", func() {
				_, err := parseConfig(filepath.Join(tmpdir, "nonexistent.toml"))
				So(err, ShouldNotBeNil)
			})
		})
	})
}
