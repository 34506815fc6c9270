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

// Package langtag parses BCP 47 language tags, as specified in RFC 5646,
// into a structured representation, and converts that structure back to
// its canonical string form.
//
// The parser is a small combinator engine that implements the RFC 5646
// 'Language-Tag' grammar exactly, including the grandfathered legacy tags
// and the grammar's constrained repetition counts. It checks syntactic
// well-formedness only: subtags are not validated against the IANA
// Language Subtag Registry, and no case normalization is applied. The
// string form of an accepted tag always reproduces the input exactly.
//
// # Key Features
//
//   - Strict Grammar Conformance: Ordered alternatives, bounded
//     repetitions, and the fixed grandfathered enumerations are encoded
//     precisely, so the parser neither over- nor under-accepts.
//   - Round-Trip Guarantee: For every accepted input s,
//     Parse(s).String() == s, byte for byte.
//   - Full Component Access: Methods expose language, script, region,
//     variants, extensions, and private-use subtags.
//   - Pure and Reentrant: Parsing has no shared mutable state and is safe
//     to call concurrently without coordination.
package langtag

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrMalformedTag is returned by Parse when the input is not a
// well-formed RFC 5646 language tag. No finer-grained failure cause is
// surfaced: grammar-rule failures are local, non-fatal, and simply cause
// the next alternative to be tried, so by the time the whole parse fails
// there is no single authoritative reason.
var ErrMalformedTag = errors.New("the string is not a well-formed BCP 47 language tag")

// Kind identifies which of the three top-level RFC 5646 productions a
// tag matched. The variants are mutually exclusive: the alternatives are
// tried in the order Grandfathered, PrivateUse, Normal, and the first
// fully-consuming match wins.
type Kind uint8

const (
	// Normal is an ordinary 'langtag' production: a language subtag
	// optionally followed by script, region, variants, extensions, and a
	// private-use section.
	Normal Kind = iota
	// PrivateUse is a tag consisting solely of a private-use sequence,
	// e.g. "x-whatever".
	PrivateUse
	// Grandfathered is one of the fixed legacy tags enumerated by
	// RFC 5646, e.g. "i-klingon", kept verbatim and never decomposed.
	Grandfathered
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case PrivateUse:
		return "private-use"
	case Grandfathered:
		return "grandfathered"
	default:
		return "normal"
	}
}

// LanguageTag is the parsed representation of a well-formed RFC 5646
// language tag. It is an immutable value produced by Parse; all subtag
// text is stored verbatim, without case folding.
type LanguageTag struct {
	kind     Kind
	language string
	script   string
	region   string
	// variants, extensions, and privateUse hold the Normal components in
	// parsed order. For the PrivateUse kind only privateUse is set; for
	// Grandfathered only subtags is set.
	variants   []string
	extensions []string
	privateUse []string
	subtags    []string
}

// Parse checks whether tag is well-formed according to the RFC 5646
// syntax and returns its parsed structure. The sole recognized separator
// is "-" (U+002D).
//
// Grandfathered tags (e.g. "i-klingon") are part of the grammar but
// cannot be parsed compositionally; they are identified as single,
// un-decomposed units. Matching for them is exact and case-sensitive.
//
// On any failure Parse returns ErrMalformedTag; there is no partial
// result. A successful parse must consume the entire input: a valid
// prefix followed by an out-of-grammar trailing subtag fails as a whole.
func Parse(tag string) (LanguageTag, error) {
	result, rest, ok := parseTag(strings.Split(tag, "-"))
	if !ok || len(rest) != 0 {
		return LanguageTag{}, ErrMalformedTag
	}
	return result, nil
}

// String renders the tag in canonical segment order, joined with "-".
// For every tag produced by Parse this reproduces the accepted input
// exactly. It implements the fmt.Stringer interface.
func (lt LanguageTag) String() string {
	switch lt.kind {
	case PrivateUse:
		return "x-" + strings.Join(lt.privateUse, "-")
	case Grandfathered:
		return strings.Join(lt.subtags, "-")
	default:
		parts := make([]string, 0, 3+len(lt.variants)+len(lt.extensions)+1+len(lt.privateUse))
		if lt.language != "" {
			parts = append(parts, lt.language)
		}
		if lt.script != "" {
			parts = append(parts, lt.script)
		}
		if lt.region != "" {
			parts = append(parts, lt.region)
		}
		parts = append(parts, lt.variants...)
		parts = append(parts, lt.extensions...)
		if len(lt.privateUse) > 0 {
			parts = append(parts, "x")
			parts = append(parts, lt.privateUse...)
		}
		return strings.Join(parts, "-")
	}
}

// Kind returns which top-level production the tag matched.
func (lt LanguageTag) Kind() Kind {
	return lt.kind
}

// Language returns the full language subtag, including any extended
// language subtags joined with "-" (e.g. "zh-cmn"). It is empty for
// private-use and grandfathered tags.
func (lt LanguageTag) Language() string {
	return lt.language
}

// PrimaryLanguage returns the primary language subtag without any
// extended language subtags.
func (lt LanguageTag) PrimaryLanguage() string {
	if idx := strings.IndexByte(lt.language, '-'); idx >= 0 {
		return lt.language[:idx]
	}
	return lt.language
}

// ExtendedLanguageSubtags returns the extended language subtags, or nil
// when the language has none.
func (lt LanguageTag) ExtendedLanguageSubtags() []string {
	idx := strings.IndexByte(lt.language, '-')
	if idx < 0 {
		return nil
	}
	return strings.Split(lt.language[idx+1:], "-")
}

// Script returns the script subtag.
func (lt LanguageTag) Script() (string, bool) {
	return lt.script, lt.script != ""
}

// Region returns the region subtag.
func (lt LanguageTag) Region() (string, bool) {
	return lt.region, lt.region != ""
}

// VariantSubtags returns the variant subtags in parsed order.
func (lt LanguageTag) VariantSubtags() []string {
	return copied(lt.variants)
}

// Extensions returns the extension sequences in parsed order, each as a
// single string of the form "singleton-subtag[-subtag...]", e.g. "a-myext".
func (lt LanguageTag) Extensions() []string {
	return copied(lt.extensions)
}

// PrivateUseSubtags returns the private-use subtags, excluding the "x"
// marker itself. For a Normal tag without a private-use section it
// returns nil; absence and emptiness are not distinguished.
func (lt LanguageTag) PrivateUseSubtags() []string {
	return copied(lt.privateUse)
}

// Subtags returns every subtag of the tag in order, i.e. the rendered
// form split on "-".
func (lt LanguageTag) Subtags() []string {
	if lt.kind == Grandfathered {
		return copied(lt.subtags)
	}
	return strings.Split(lt.String(), "-")
}

// IsGrandfathered returns true if the tag is a grandfathered tag.
func (lt LanguageTag) IsGrandfathered() bool {
	return lt.kind == Grandfathered
}

// copied returns a defensive copy so callers cannot mutate the tag's
// internal slices.
func copied(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// MarshalJSON implements the json.Marshaler interface. It marshals the
// language tag as a JSON string.
func (lt LanguageTag) MarshalJSON() ([]byte, error) {
	return json.Marshal(lt.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface. The JSON
// string is parsed with Parse; a malformed tag fails the unmarshal. An
// empty string yields the zero LanguageTag.
func (lt *LanguageTag) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*lt = LanguageTag{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*lt = parsed
	return nil
}
