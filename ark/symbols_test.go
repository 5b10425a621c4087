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

	. "github.com/smartystreets/goconvey/convey"
)

func TestSymbols(t *testing.T) {
	t.Parallel()

	Convey("ParseSymbols tokenizes uniformly", t, func() {
		expected := []string{"TSLA", "AAPL", "TDOC"}
		So(ParseSymbols("tsla, aapl, tdoc"), ShouldResemble, expected)
		So(ParseSymbols("tsla aapl tdoc"), ShouldResemble, expected)
		So(ParseSymbols(" tsla,aapl ,  tdoc "), ShouldResemble, expected)

		Convey("duplicates are not removed", func() {
			So(ParseSymbols("arkk arkk"), ShouldResemble, []string{"ARKK", "ARKK"})
		})

		Convey("special ticker characters are kept", func() {
			So(ParseSymbols("brk.b ^gspc eurusd=x bf-b"), ShouldResemble,
				[]string{"BRK.B", "^GSPC", "EURUSD=X", "BF-B"})
		})

		Convey("empty input yields no tokens", func() {
			So(len(ParseSymbols("  ,, ")), ShouldEqual, 0)
		})
	})

	Convey("ParseSymbolsComma splits on commas only", t, func() {
		So(ParseSymbolsComma("tsla, aapl, tdoc"), ShouldResemble,
			[]string{"TSLA", "AAPL", "TDOC"})
		So(ParseSymbolsComma("a b, c"), ShouldResemble, []string{"A B", "C"})
	})

	Convey("NormalizeSymbols canonicalizes list inputs", t, func() {
		So(NormalizeSymbols([]string{"tsla", " aapl ", "tdoc"}), ShouldResemble,
			[]string{"TSLA", "AAPL", "TDOC"})
	})

	Convey("partitionSymbols splits by the whitelist", t, func() {
		valid, invalid := partitionSymbols([]string{"ARKK", "LOLOIL", "IZRL"})
		So(valid, ShouldResemble, []string{"ARKK", "IZRL"})
		So(invalid, ShouldResemble, []string{"LOLOIL"})

		Convey("an unknown symbol yields no valid entries", func() {
			valid, invalid := partitionSymbols([]string{"LOLOIL"})
			So(len(valid), ShouldEqual, 0)
			So(invalid, ShouldResemble, []string{"LOLOIL"})
		})
	})
}
