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

package api

// AssetClass is one of the two data domains served by the API.
type AssetClass string

// Values for AssetClass.
const (
	Fund  = AssetClass("etf")
	Stock = AssetClass("stock")
)

// Operation is a logical API operation within an asset class.
type Operation string

// Values for Operation.
const (
	Profile     = Operation("profile")
	Holdings    = Operation("holdings")
	Trades      = Operation("trades")
	News        = Operation("news")
	Performance = Operation("performance")
	Ownership   = Operation("ownership")
	Price       = Operation("price")
)

// Endpoint identifies an (asset class, operation) pair exposed by the API.
// It maps to a fixed relative URL path and a fixed ordered column schema.
type Endpoint struct {
	Class AssetClass
	Op    Operation
}

func (e Endpoint) String() string {
	return string(e.Class) + "/" + string(e.Op)
}

var endpointPaths = map[Endpoint]string{
	{Fund, Profile}:     "/etf/profile",
	{Fund, Holdings}:    "/etf/holdings",
	{Fund, Trades}:      "/etf/trades",
	{Fund, News}:        "/etf/news",
	{Fund, Performance}: "/etf/performance",
	{Stock, Profile}:    "/stock/profile",
	{Stock, Ownership}:  "/stock/fund-ownership",
	{Stock, Trades}:     "/stock/trades",
	{Stock, Price}:      "/stock/price",
}

var endpointColumns = map[Endpoint][]string{
	{Fund, Profile}: {
		"symbol",
		"name",
		"description",
		"fund_type",
		"inception_date",
		"cusip",
		"isin",
		"website",
	},
	{Fund, Holdings}: {
		"fund",
		"date",
		"company",
		"ticker",
		"cusip",
		"shares",
		"market_value",
		"share_price",
		"weight",
		"weight_rank",
	},
	{Fund, Trades}: {
		"fund",
		"date",
		"direction",
		"ticker",
		"company",
		"cusip",
		"shares",
		"etf_percent",
	},
	{Fund, News}: {
		"id",
		"datetime",
		"related",
		"source",
		"headline",
		"summary",
		"url",
		"image",
	},
	{Fund, Performance}: {
		"fund",
		"datatype",
		"as_of_date",
		"period",
		"return",
	},
	{Stock, Profile}: {
		"ticker",
		"name",
		"country",
		"industry",
		"sector",
		"fullTimeEmployees",
		"summary",
		"website",
		"exchange",
		"currency",
		"marketCap",
		"sharesOutstanding",
	},
	{Stock, Ownership}: {
		"ticker",
		"date",
		"fund",
		"weight",
		"weight_rank",
		"shares",
		"market_value",
	},
	{Stock, Trades}: {
		"ticker",
		"date",
		"fund",
		"direction",
		"shares",
		"etf_percent",
	},
	{Stock, Price}: {
		"ticker",
		"exchange",
		"currency",
		"price",
		"change",
		"changep",
		"last_trade",
	},
}

// Valid tests whether the endpoint is actually served by the API.
func (e Endpoint) Valid() bool {
	_, ok := endpointPaths[e]
	return ok
}

// Path returns the relative URL path of the endpoint to add to the base URL,
// or "" for an unknown endpoint.
func (e Endpoint) Path() string {
	return endpointPaths[e]
}

// Columns returns the endpoint's declared column schema in its fixed order.
// Each call returns a fresh copy; the descriptor itself stays immutable.
func (e Endpoint) Columns() []string {
	cols := endpointColumns[e]
	res := make([]string, len(cols))
	copy(res, cols)
	return res
}
