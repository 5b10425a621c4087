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
	"regexp"
	"strings"
)

// ArkFunds is the fixed set of known ARK fund symbols used to validate fund
// requests.
var ArkFunds = []string{
	"ARKA",
	"ARKB",
	"ARKC",
	"ARKD",
	"ARKF",
	"ARKG",
	"ARKK",
	"ARKQ",
	"ARKVX",
	"ARKW",
	"ARKX",
	"ARKY",
	"ARKZ",
	"IZRL",
	"PRNT",
}

// symbolRegexp matches one ticker symbol token: all maximal runs of allowed
// characters are extracted, discarding whitespace, commas and any other
// separators uniformly.
var symbolRegexp = regexp.MustCompile(`[\w\-.=^&]+`)

// ParseSymbols tokenizes a string of symbols separated by whitespace, commas
// or both, into canonical upper-case symbol tokens. Order is preserved and
// duplicates are not removed.
func ParseSymbols(s string) []string {
	return NormalizeSymbols(symbolRegexp.FindAllString(s, -1))
}

// ParseSymbolsComma splits a string strictly on commas and trims surrounding
// whitespace from each token. Unlike ParseSymbols, a token containing inner
// whitespace is kept as is.
func ParseSymbolsComma(s string) []string {
	return NormalizeSymbols(strings.Split(s, ","))
}

// NormalizeSymbols canonicalizes already tokenized symbols: trim and upper
// case each, dropping empty tokens. Order is preserved.
func NormalizeSymbols(symbols []string) []string {
	res := make([]string, 0, len(symbols))
	for _, s := range symbols {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s != "" {
			res = append(res, s)
		}
	}
	return res
}

// partitionSymbols separates fund symbols into members of the ArkFunds
// whitelist and the rest, preserving order within each part.
func partitionSymbols(symbols []string) (valid, invalid []string) {
	known := make(map[string]bool, len(ArkFunds))
	for _, s := range ArkFunds {
		known[s] = true
	}
	for _, s := range symbols {
		if known[s] {
			valid = append(valid, s)
		} else {
			invalid = append(invalid, s)
		}
	}
	return valid, invalid
}
