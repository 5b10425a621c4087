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
	"testing"

	"github.com/stockparfait/testutil"

	"github.com/stockparfait/arkfunds/api"
	"github.com/stockparfait/arkfunds/shape"
	"github.com/stockparfait/arkfunds/table"

	. "github.com/smartystreets/goconvey/convey"
)

func TestAnnualReturnStats(t *testing.T) {
	t.Parallel()

	perfRecord := func(fund, datatype, period string, ret interface{}) table.Record {
		return table.RecordFromMap(
			api.Endpoint{Class: api.Fund, Op: api.Performance}.Columns(),
			map[string]interface{}{
				"fund":     fund,
				"datatype": datatype,
				"period":   period,
				"return":   ret,
			})
	}

	Convey("AnnualReturnStats summarizes per fund", t, func() {
		tbl := table.NewTable(api.Endpoint{Class: api.Fund, Op: api.Performance}.Columns()...)
		tbl.AddRecord(
			perfRecord("ARKK", shape.Overview, "ytdReturn", -2.5),
			perfRecord("ARKK", shape.AnnualReturns, "2021", nil),
			perfRecord("ARKK", shape.AnnualReturns, "2020", 20.0),
			perfRecord("ARKK", shape.AnnualReturns, "2019", 10.0),
			perfRecord("IZRL", shape.AnnualReturns, "2020", 7.0),
		)

		stats, err := AnnualReturnStats(tbl)
		So(err, ShouldBeNil)
		So(len(stats), ShouldEqual, 2)
		So(stats["ARKK"].N, ShouldEqual, 2)
		So(stats["ARKK"].Mean, ShouldEqual, 15.0)
		So(testutil.Round(stats["ARKK"].StdDev, 4), ShouldEqual, 7.071)
		So(stats["IZRL"], ShouldResemble, ReturnStats{Mean: 7.0, N: 1})
	})

	Convey("AnnualReturnStats rejects a non-performance table", t, func() {
		tbl := table.NewTable("ticker", "price")
		_, err := AnnualReturnStats(tbl)
		So(err, ShouldNotBeNil)
	})

	Convey("AnnualReturnStats rejects a row shorter than the header", t, func() {
		tbl := table.NewTable(api.Endpoint{Class: api.Fund, Op: api.Performance}.Columns()...)
		tbl.AddRecord(table.Record{table.String("ARKK")})
		_, err := AnnualReturnStats(tbl)
		So(err, ShouldNotBeNil)
	})
}
