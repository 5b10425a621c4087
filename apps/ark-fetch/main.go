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

// ark-fetch prints the result of a single arkfunds.io operation as a text or
// CSV table, e.g.:
//
//	ark-fetch -etf "ARKK ARKW" -op holdings -date 2021-07-01
//	ark-fetch -stock TSLA -op price -csv
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"sort"
	"time"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"

	"github.com/stockparfait/arkfunds/api"
	"github.com/stockparfait/arkfunds/ark"
	"github.com/stockparfait/arkfunds/table"

	toml "github.com/pelletier/go-toml/v2"
)

type Flags struct {
	ETF       string // fund symbols; exactly one of ETF / Stock is required
	Stock     string // stock ticker symbols
	Op        string // operation to run
	Config    string // optional TOML config file
	Date      string
	DateFrom  string
	DateTo    string
	Period    string
	Direction string
	Limit     int
	Formatted bool
	Price     bool
	CSV       bool // dump CSV format; default: text
	LogLevel  logging.Level
}

func parseFlags(args []string) (*Flags, error) {
	var flags Flags
	fs := flag.NewFlagSet("ark-fetch", flag.ExitOnError)
	fs.StringVar(&flags.ETF, "etf", "", "ARK fund symbol(s), comma- or space-separated")
	fs.StringVar(&flags.Stock, "stock", "", "stock ticker symbol(s), comma- or space-separated")
	fs.StringVar(&flags.Op, "op", "", `operation to run (required):
etf: profile, holdings, trades, news, performance, returns
stock: profile, ownership, trades, price`)
	fs.StringVar(&flags.Config, "conf", "", "optional TOML config file")
	fs.StringVar(&flags.Date, "date", "", "holdings date, YYYY-MM-DD")
	fs.StringVar(&flags.DateFrom, "date-from", "", "start of the date range, YYYY-MM-DD")
	fs.StringVar(&flags.DateTo, "date-to", "", "end of the date range, YYYY-MM-DD")
	fs.StringVar(&flags.Period, "period", "", "fund trades period: 1d, 7d, 1m, 3m, 1y, ytd")
	fs.StringVar(&flags.Direction, "direction", "", "stock trades direction: buy or sell")
	fs.IntVar(&flags.Limit, "limit", 0, "limit the number of results")
	fs.BoolVar(&flags.Formatted, "formatted", false, "request formatted performance values")
	fs.BoolVar(&flags.Price, "price", false, "include the current price with the stock profile")
	fs.BoolVar(&flags.CSV, "csv", false, "print table in CSV format; default: text")
	flags.LogLevel = logging.Info
	fs.Var(&flags.LogLevel, "log-level", "Log level: debug, info, warning, error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if (flags.ETF == "") == (flags.Stock == "") {
		return nil, errors.Reason("expected exactly one of -etf or -stock")
	}
	if flags.Op == "" {
		return nil, errors.Reason("missing required -op argument")
	}
	return &flags, nil
}

// Config is the optional TOML configuration overriding client defaults.
type Config struct {
	BaseURL    string `toml:"base_url"`
	UserAgent  string `toml:"user_agent"`
	TimeoutSec int    `toml:"timeout_sec"`
}

func parseConfig(filePath string) (*Config, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Annotate(err, "failed to open config file %s", filePath)
	}
	defer f.Close()

	d := toml.NewDecoder(f)
	var c Config
	if err := d.Decode(&c); err != nil {
		return nil, errors.Annotate(err, "failed to read config file %s", filePath)
	}
	return &c, nil
}

// apply overrides the client defaults from the config.
func (c *Config) apply() {
	if c.BaseURL != "" {
		api.URL = c.BaseURL
	}
	if c.UserAgent != "" {
		api.UserAgent = c.UserAgent
	}
	if c.TimeoutSec > 0 {
		api.Timeout = time.Duration(c.TimeoutSec) * time.Second
	}
}

func parseDate(s, name string) (api.Date, error) {
	if s == "" {
		return api.Date{}, nil
	}
	d, err := api.NewDateFromString(s)
	if err != nil {
		return api.Date{}, errors.Annotate(err, "invalid -%s argument", name)
	}
	return d, nil
}

func etfTable(ctx context.Context, flags *Flags) (*table.Table, error) {
	e, err := ark.NewETF(flags.ETF)
	if err != nil {
		return nil, err
	}
	switch flags.Op {
	case "profile":
		return e.Profile(ctx)
	case "holdings":
		date, err := parseDate(flags.Date, "date")
		if err != nil {
			return nil, err
		}
		return e.Holdings(ctx, date)
	case "trades":
		return e.Trades(ctx, api.Period(flags.Period))
	case "news":
		dateFrom, err := parseDate(flags.DateFrom, "date-from")
		if err != nil {
			return nil, err
		}
		dateTo, err := parseDate(flags.DateTo, "date-to")
		if err != nil {
			return nil, err
		}
		return e.News(ctx, dateFrom, dateTo)
	case "performance":
		return e.Performance(ctx, flags.Formatted)
	case "returns":
		perf, err := e.Performance(ctx, false)
		if err != nil {
			return nil, err
		}
		return returnsTable(perf)
	}
	return nil, errors.Reason("unknown etf operation: '%s'", flags.Op)
}

// returnsTable summarizes the annual returns of a performance table, one row
// per fund.
func returnsTable(perf *table.Table) (*table.Table, error) {
	stats, err := ark.AnnualReturnStats(perf)
	if err != nil {
		return nil, errors.Annotate(err, "failed to summarize annual returns")
	}
	funds := make([]string, 0, len(stats))
	for fund := range stats {
		funds = append(funds, fund)
	}
	sort.Strings(funds)
	tbl := table.NewTable("fund", "mean", "std_dev", "years")
	for _, fund := range funds {
		rs := stats[fund]
		tbl.AddRecord(table.Record{
			table.String(fund),
			table.Number(rs.Mean),
			table.Number(rs.StdDev),
			table.Number(float64(rs.N)),
		})
	}
	return tbl, nil
}

func stockTable(ctx context.Context, flags *Flags) (*table.Table, error) {
	s, err := ark.NewStock(flags.Stock)
	if err != nil {
		return nil, err
	}
	dateFrom, err := parseDate(flags.DateFrom, "date-from")
	if err != nil {
		return nil, err
	}
	dateTo, err := parseDate(flags.DateTo, "date-to")
	if err != nil {
		return nil, err
	}
	switch flags.Op {
	case "profile":
		return s.Profile(ctx, flags.Price)
	case "ownership":
		return s.FundOwnership(ctx, dateFrom, dateTo, flags.Limit)
	case "trades":
		return s.Trades(ctx, flags.Direction, dateFrom, dateTo, flags.Limit)
	case "price":
		return s.Price(ctx)
	}
	return nil, errors.Reason("unknown stock operation: '%s'", flags.Op)
}

func run(ctx context.Context, flags *Flags, w io.Writer) error {
	if flags.Config != "" {
		config, err := parseConfig(flags.Config)
		if err != nil {
			return errors.Annotate(err, "failed to parse config")
		}
		config.apply()
	}
	ctx = api.UseClient(ctx)

	var tbl *table.Table
	var err error
	if flags.ETF != "" {
		tbl, err = etfTable(ctx, flags)
	} else {
		tbl, err = stockTable(ctx, flags)
	}
	if err != nil {
		return errors.Annotate(err, "operation '%s' failed", flags.Op)
	}
	if flags.CSV {
		return tbl.WriteCSV(w, table.Params{})
	}
	return tbl.WriteText(w, table.Params{})
}

func main() {
	ctx := context.Background()
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		ctx = logging.Use(ctx, logging.DefaultGoLogger(logging.Info))
		logging.Errorf(ctx, "failed to parse flags: %s", err.Error())
		os.Exit(1)
	}
	ctx = logging.Use(ctx, logging.DefaultGoLogger(flags.LogLevel))

	if err := run(ctx, flags, os.Stdout); err != nil {
		logging.Errorf(ctx, err.Error())
		os.Exit(1)
	}
}
