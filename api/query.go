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

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/stockparfait/errors"
)

// Period is the time window for intraday trade queries.
type Period string

// Values for Period.
const (
	Period1D  = Period("1d")
	Period7D  = Period("7d")
	Period1M  = Period("1m")
	Period3M  = Period("3m")
	Period1Y  = Period("1y")
	PeriodYTD = Period("ytd")
)

// Valid tests whether the period is one of the accepted values.
func (p Period) Valid() bool {
	switch p {
	case Period1D, Period7D, Period1M, Period3M, Period1Y, PeriodYTD:
		return true
	}
	return false
}

// Direction of a trade, buy or sell.
type Direction string

// Values for Direction.
const (
	Buy  = Direction("buy")
	Sell = Direction("sell")
)

// ParseDirection converts a case-insensitive trade direction string into a
// Direction. The wire format is always lower case.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(s)); d {
	case Buy, Sell:
		return d, nil
	}
	return "", errors.Reason("invalid trade direction: '%s'", s)
}

// Query is a builder for the query parameters of an endpoint request. Builder
// methods create a copy, leaving the original intact; a nil *Query is a valid
// empty query.
type Query struct {
	symbol       string
	date         Date
	dateFrom     Date
	dateTo       Date
	period       Period
	direction    Direction
	limit        int
	formatted    bool
	price        bool
	hasFormatted bool
	hasPrice     bool
}

// NewQuery creates a new empty query.
func NewQuery() *Query {
	return &Query{}
}

// Copy creates a copy of the query. It is primarily used in the builder
// methods.
func (q *Query) Copy() *Query {
	var q2 Query
	if q != nil {
		q2 = *q
	}
	return &q2
}

// Symbol sets the required symbol parameter.
func (q *Query) Symbol(symbol string) *Query {
	q2 := q.Copy()
	q2.symbol = symbol
	return q2
}

// Date sets the holding date filter.
func (q *Query) Date(date Date) *Query {
	q2 := q.Copy()
	q2.date = date
	return q2
}

// DateFrom sets the lower bound of the date range filter.
func (q *Query) DateFrom(date Date) *Query {
	q2 := q.Copy()
	q2.dateFrom = date
	return q2
}

// DateTo sets the upper bound of the date range filter.
func (q *Query) DateTo(date Date) *Query {
	q2 := q.Copy()
	q2.dateTo = date
	return q2
}

// Period sets the trade period filter.
func (q *Query) Period(period Period) *Query {
	q2 := q.Copy()
	q2.period = period
	return q2
}

// Direction sets the trade direction filter.
func (q *Query) Direction(direction Direction) *Query {
	q2 := q.Copy()
	q2.direction = direction
	return q2
}

// Limit caps the number of results, [1..inf).
func (q *Query) Limit(limit int) *Query {
	if limit < 0 {
		limit = 0
	}
	q2 := q.Copy()
	q2.limit = limit
	return q2
}

// Formatted requests formatted values from the performance endpoint.
func (q *Query) Formatted(formatted bool) *Query {
	q2 := q.Copy()
	q2.formatted = formatted
	q2.hasFormatted = true
	return q2
}

// Price requests the current share price along with the profile.
func (q *Query) Price(price bool) *Query {
	q2 := q.Copy()
	q2.price = price
	q2.hasPrice = true
	return q2
}

// Values returns the query values on the wire. Each call creates a new
// object, so the caller is free to modify it without affecting the query.
func (q *Query) Values() url.Values {
	v := make(url.Values)
	if q == nil {
		return v
	}
	if q.symbol != "" {
		v["symbol"] = []string{q.symbol}
	}
	if !q.date.IsZero() {
		v["date"] = []string{q.date.String()}
	}
	if !q.dateFrom.IsZero() {
		v["date_from"] = []string{q.dateFrom.String()}
	}
	if !q.dateTo.IsZero() {
		v["date_to"] = []string{q.dateTo.String()}
	}
	if q.period != "" {
		v["period"] = []string{string(q.period)}
	}
	if q.direction != "" {
		v["direction"] = []string{strings.ToLower(string(q.direction))}
	}
	if q.limit > 0 {
		v["limit"] = []string{fmt.Sprintf("%d", q.limit)}
	}
	if q.hasFormatted {
		v["formatted"] = []string{strconv.FormatBool(q.formatted)}
	}
	if q.hasPrice {
		v["price"] = []string{strconv.FormatBool(q.price)}
	}
	return v
}
