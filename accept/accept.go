/*
Copyright 2026 Bcp47 Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package accept parses HTTP Accept-Language header fields (RFC 9110,
// Section 12.5.4) and negotiates the best language among those a caller
// supports.
//
// Each language range in the header must be either the wildcard "*" or a
// well-formed BCP 47 language tag as checked by the langtag package.
// Negotiation is delegated to golang.org/x/text/language, which applies
// CLDR matching data on top of the syntactic layer.
package accept

import (
	"cmp"
	"errors"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/jplu/bcp47/langtag"
)

// maxHeaderLen bounds attacker-controlled header input.
const maxHeaderLen = 4096

// defaultQuality is the weight of a range without a q parameter
// (RFC 9110 Sec 12.4.2).
const defaultQuality = 1.0

// ErrMalformedHeader is returned by ParseHeader when the header does not
// parse as an Accept-Language field: a range that is not a well-formed
// language tag, an unknown parameter, a q-value outside [0, 1], or an
// oversized header.
var ErrMalformedHeader = errors.New("the string is not a well-formed Accept-Language header")

// Range is a single quality-weighted language range from an
// Accept-Language header.
type Range struct {
	// Tag is the parsed language tag. It is the zero value when
	// Wildcard is true.
	Tag langtag.LanguageTag
	// Quality is the range's weight in [0, 1]. A quality of 0 means the
	// range is explicitly not acceptable.
	Quality float64
	// Wildcard reports whether the range was "*".
	Wildcard bool
}

// ParseHeader parses an Accept-Language header value into its language
// ranges, sorted by descending quality. The sort is stable: ranges with
// equal quality keep their header order. An empty header yields no
// ranges and no error.
func ParseHeader(header string) ([]Range, error) {
	if len(header) > maxHeaderLen {
		return nil, ErrMalformedHeader
	}
	if strings.TrimSpace(header) == "" {
		return nil, nil
	}

	elements := strings.Split(header, ",")
	ranges := make([]Range, 0, len(elements))
	for _, element := range elements {
		r, err := parseRange(element)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}

	slices.SortStableFunc(ranges, func(a, b Range) int {
		return cmp.Compare(b.Quality, a.Quality)
	})
	return ranges, nil
}

// parseRange parses one comma-separated element: a language range
// optionally followed by a ";q=value" weight parameter.
func parseRange(element string) (Range, error) {
	rangeText, params, hasParams := strings.Cut(element, ";")
	rangeText = strings.TrimSpace(rangeText)

	r := Range{Quality: defaultQuality}
	if rangeText == "*" {
		r.Wildcard = true
	} else {
		tag, err := langtag.Parse(rangeText)
		if err != nil {
			return Range{}, ErrMalformedHeader
		}
		r.Tag = tag
	}

	if !hasParams {
		return r, nil
	}
	// Accept-Language ranges carry at most the single weight parameter.
	key, value, hasValue := strings.Cut(params, "=")
	if !hasValue || !strings.EqualFold(strings.TrimSpace(key), "q") {
		return Range{}, ErrMalformedHeader
	}
	quality, ok := parseQuality(strings.TrimSpace(value))
	if !ok {
		return Range{}, ErrMalformedHeader
	}
	r.Quality = quality
	return r, nil
}

// parseQuality parses an RFC 9110 Sec 12.4.2 qvalue:
//
//	qvalue = ( "0" [ "." 0*3DIGIT ] ) / ( "1" [ "." 0*3("0") ] )
//
// The grammar is checked before conversion, so forms strconv would take
// (NaN, exponents, signs, excess precision) are rejected.
func parseQuality(s string) (float64, bool) {
	if s == "" || len(s) > 5 || (s[0] != '0' && s[0] != '1') {
		return 0, false
	}
	if len(s) > 1 {
		if s[1] != '.' {
			return 0, false
		}
		for i := 2; i < len(s); i++ {
			if s[i] < '0' || s[i] > '9' || (s[0] == '1' && s[i] != '0') {
				return 0, false
			}
		}
	}
	quality, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return quality, true
}

// Negotiate picks the best tag among available for the given
// Accept-Language header. The returned bool reports whether the choice
// came from an actual match; on an empty, malformed, or unmatchable
// header the first available tag is returned as a fallback with false.
// Available entries that golang.org/x/text/language cannot parse are
// ignored. An empty available list yields ("", false).
func Negotiate(header string, available []string) (string, bool) {
	if len(available) == 0 {
		return "", false
	}

	ranges, err := ParseHeader(header)
	if err != nil || len(ranges) == 0 {
		return available[0], false
	}

	supported := make([]language.Tag, 0, len(available))
	indexes := make([]int, 0, len(available))
	for i, a := range available {
		tag, err := language.Parse(a)
		if err != nil {
			continue
		}
		supported = append(supported, tag)
		indexes = append(indexes, i)
	}
	if len(supported) == 0 {
		return "", false
	}

	wildcard := false
	desired := make([]language.Tag, 0, len(ranges))
	for _, r := range ranges {
		if r.Quality == 0 {
			continue
		}
		if r.Wildcard {
			wildcard = true
			continue
		}
		tag, err := language.Parse(r.Tag.String())
		if err != nil {
			continue
		}
		desired = append(desired, tag)
	}

	if len(desired) > 0 {
		matcher := language.NewMatcher(supported)
		if _, idx, conf := matcher.Match(desired...); conf > language.No {
			return available[indexes[idx]], true
		}
	}
	if wildcard {
		return available[indexes[0]], true
	}
	return available[0], false
}
