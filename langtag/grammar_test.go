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

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package langtag

import (
	"reflect"
	"strings"
	"testing"
)

// TestLanguageSubtag tests the 'language' production, including the
// joining of extended language subtags.
func TestLanguageSubtag(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		wantValue string
		wantRest  []string
		wantOK    bool
	}{
		{"Two letters", "en", "en", nil, true},
		{"Three letters", "ast", "ast", nil, true},
		{"Short language with extlang", "zh-cmn", "zh-cmn", nil, true},
		{"Extlang stops at script", "zh-cmn-Hans", "zh-cmn", []string{"Hans"}, true},
		{"Up to three extlangs", "zh-aaa-bbb-ccc", "zh-aaa-bbb-ccc", nil, true},
		{"Fourth extlang not consumed", "zh-aaa-bbb-ccc-ddd", "zh-aaa-bbb-ccc", []string{"ddd"}, true},
		{"Four letters, no extlang", "root-abc", "root", []string{"abc"}, true},
		{"Five to eight letters", "abcde", "abcde", nil, true},
		{"Eight letters", "abcdefgh", "abcdefgh", nil, true},
		{"Single letter", "a", "", []string{"a"}, false},
		{"Nine letters", "abcdefghi", "", []string{"abcdefghi"}, false},
		{"Digits", "123", "", []string{"123"}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			in := strings.Split(tc.input, "-")
			value, rest, ok := languageSubtag(in)
			if len(rest) == 0 {
				rest = nil
			}
			if ok != tc.wantOK || value != tc.wantValue || !reflect.DeepEqual(rest, tc.wantRest) {
				t.Errorf("languageSubtag(%q) = (%q, %v, %v), want (%q, %v, %v)",
					tc.input, value, rest, ok, tc.wantValue, tc.wantRest, tc.wantOK)
			}
		})
	}
}

// TestRegionSubtag tests the two region alternatives.
func TestRegionSubtag(t *testing.T) {
	testCases := []struct {
		input  string
		wantOK bool
	}{
		{"CH", true},
		{"us", true},
		{"419", true},
		{"USA", false}, // Three letters are not a region.
		{"41", false},  // Two digits are not a region.
		{"4a", false},
		{"", false},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if _, _, ok := regionSubtag([]string{tc.input}); ok != tc.wantOK {
				t.Errorf("regionSubtag(%q) ok = %v, want %v", tc.input, ok, tc.wantOK)
			}
		})
	}
}

// TestVariantSubtag tests the variant bound of 4-8 alphanumeric characters.
func TestVariantSubtag(t *testing.T) {
	testCases := []struct {
		input  string
		wantOK bool
	}{
		{"rozaj", true},
		{"1996", true},
		{"1606nict", true},
		{"abcd", true}, // Accepted by the general 4-8 alphanumeric bound.
		{"abc", false},
		{"abcdefghi", false},
		{"ro-aj", false},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			in := strings.Split(tc.input, "-")
			if _, _, ok := variantSubtag(in); ok != tc.wantOK {
				t.Errorf("variantSubtag(%q) ok = %v, want %v", tc.input, ok, tc.wantOK)
			}
		})
	}
}

// TestExtensionSubtag tests the 'extension' production: a non-"x"
// singleton followed by one or more 2-8 alphanumeric subtags.
func TestExtensionSubtag(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		wantValue string
		wantOK    bool
	}{
		{"Single subtag", "a-myext", "a-myext", true},
		{"Multiple subtags", "u-co-phonebk", "u-co-phonebk", true},
		{"Digit singleton", "1-abc", "1-abc", true},
		{"Bare singleton", "a", "", false},
		{"Private-use marker is not a singleton", "x-foo", "", false},
		{"Subtag too short", "a-b", "", false},
		{"Subtag too long", "a-abcdefghi", "", false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			value, _, ok := extensionSubtag(strings.Split(tc.input, "-"))
			if ok != tc.wantOK || value != tc.wantValue {
				t.Errorf("extensionSubtag(%q) = (%q, %v), want (%q, %v)",
					tc.input, value, ok, tc.wantValue, tc.wantOK)
			}
		})
	}
}

// TestExtensionStopsAtNextSingleton checks that an extension consumes
// subtags greedily but hands the next singleton back to the caller.
func TestExtensionStopsAtNextSingleton(t *testing.T) {
	value, rest, ok := extensionSubtag([]string{"a", "myext", "b", "other"})
	if !ok || value != "a-myext" || !reflect.DeepEqual(rest, []string{"b", "other"}) {
		t.Errorf("extensionSubtag() = (%q, %v, %v), want (%q, [b other], true)", value, rest, ok, "a-myext")
	}
}

// TestPrivateUseSubtags tests the 'privateuse' production.
func TestPrivateUseSubtags(t *testing.T) {
	testCases := []struct {
		name      string
		input     []string
		wantValue []string
		wantOK    bool
	}{
		{"Single subtag", []string{"x", "whatever"}, []string{"whatever"}, true},
		{"Multiple subtags", []string{"x", "phonebk", "sort"}, []string{"phonebk", "sort"}, true},
		{"One-character subtag", []string{"x", "a"}, []string{"a"}, true},
		{"Bare marker", []string{"x"}, nil, false},
		{"Uppercase marker", []string{"X", "foo"}, nil, false},
		{"Subtag too long", []string{"x", "abcdefghi"}, nil, false},
		{"Empty subtag", []string{"x", ""}, nil, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			value, _, ok := privateUseSubtags(tc.input)
			if ok != tc.wantOK || !reflect.DeepEqual(value, tc.wantValue) {
				t.Errorf("privateUseSubtags(%v) = (%v, %v), want (%v, %v)",
					tc.input, value, ok, tc.wantValue, tc.wantOK)
			}
		})
	}
}

// TestParseNormal tests the full 'langtag' production, including the
// rejection of repeated extension singletons.
func TestParseNormal(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		want     LanguageTag
		wantRest []string
		wantOK   bool
	}{
		{
			name:   "Language only",
			input:  "de",
			want:   LanguageTag{kind: Normal, language: "de"},
			wantOK: true,
		},
		{
			name:  "All components",
			input: "zh-cmn-Hans-CN-variant1-a-extend1-x-wadegile",
			want: LanguageTag{
				kind:       Normal,
				language:   "zh-cmn",
				script:     "Hans",
				region:     "CN",
				variants:   []string{"variant1"},
				extensions: []string{"a-extend1"},
				privateUse: []string{"wadegile"},
			},
			wantOK: true,
		},
		{
			name:     "Duplicate singleton rejected",
			input:    "ar-a-aaa-b-bbb-a-ccc",
			wantRest: []string{"ar", "a", "aaa", "b", "bbb", "a", "ccc"},
			wantOK:   false,
		},
		{
			name:     "Trailing garbage left unconsumed",
			input:    "de-CH-verylongsubtagg",
			want:     LanguageTag{kind: Normal, language: "de", region: "CH"},
			wantRest: []string{"verylongsubtagg"},
			wantOK:   true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			value, rest, ok := parseNormal(strings.Split(tc.input, "-"))
			if len(rest) == 0 {
				rest = nil
			}
			if ok != tc.wantOK || !reflect.DeepEqual(value, tc.want) || !reflect.DeepEqual(rest, tc.wantRest) {
				t.Errorf("parseNormal(%q) = (%+v, %v, %v), want (%+v, %v, %v)",
					tc.input, value, rest, ok, tc.want, tc.wantRest, tc.wantOK)
			}
		})
	}
}

// TestHasDuplicateSingleton tests the duplicate-extension check in isolation.
func TestHasDuplicateSingleton(t *testing.T) {
	testCases := []struct {
		name       string
		extensions []string
		want       bool
	}{
		{"None", nil, false},
		{"Single", []string{"a-foo"}, false},
		{"Distinct", []string{"a-foo", "b-bar"}, false},
		{"Duplicate", []string{"a-foo", "b-bar", "a-baz"}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := hasDuplicateSingleton(tc.extensions); got != tc.want {
				t.Errorf("hasDuplicateSingleton(%v) = %v, want %v", tc.extensions, got, tc.want)
			}
		})
	}
}
