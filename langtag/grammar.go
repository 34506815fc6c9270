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

package langtag

import "strings"

// BCP 47 subtag length constants (RFC 5646 Sec 2.1).
const (
	maxSubtagLen       = 8 // Maximum length of any subtag.
	scriptLen          = 4 // A script subtag is always 4 letters.
	regionAlphaLen     = 2 // An alphabetic region subtag is always 2 letters.
	regionNumericLen   = 3 // A numeric region subtag is always 3 digits.
	extlangLen         = 3 // An extended language subtag is always 3 letters.
	maxExtraExtlangs   = 2 // Extlang subtags permitted after the first one.
	minVariantLen      = 4 // Minimum length of a variant subtag.
	minExtensionSubLen = 2 // Minimum length of a subtag within an extension.
)

// The productions of the RFC 5646 'Language-Tag' grammar, one named
// parser per rule. Alternatives inside oneOf are listed in the order the
// ABNF gives them; that order resolves ambiguity and must not change.

// scriptSubtag matches 'script' = 4ALPHA.
var scriptSubtag = alphaExactly(scriptLen)

// regionSubtag matches 'region' = 2ALPHA / 3DIGIT.
var regionSubtag = oneOf(
	alphaExactly(regionAlphaLen),
	segment(regionNumericLen, regionNumericLen, isDigit),
)

// variantSubtag matches 'variant' as any 4-8 alphanumeric subtag. This is
// a slightly broader class than the ABNF's 5*8alphanum / (DIGIT 3alphanum)
// pair: it additionally accepts four-character subtags that start with a
// letter. The two subforms exist to keep variants distinguishable from
// language subtags, which the ordered grammar already guarantees here.
var variantSubtag = segment(minVariantLen, maxSubtagLen, isAlphanum)

// singletonSubtag matches 'singleton', a one-character alphanumeric subtag
// other than the private-use marker "x".
var singletonSubtag = popIf(func(s string) bool {
	return len(s) == 1 && isAlphanum(s[0]) && s != "x"
})

// extensionSubtag matches 'extension' = singleton 1*("-" (2*8alphanum)),
// yielding the whole extension joined back with "-".
var extensionSubtag = andThen(singletonSubtag, func(singleton string) parser[string] {
	return mapValue(some(segment(minExtensionSubLen, maxSubtagLen, isAlphanum)), func(subs []string) string {
		return singleton + "-" + strings.Join(subs, "-")
	})
})

// privateUseSubtags matches 'privateuse' = "x" 1*("-" (1*8alphanum)),
// yielding the subtags after the "x" marker.
var privateUseSubtags = andThen(literal("x"), func(string) parser[[]string] {
	return some(segment(1, maxSubtagLen, isAlphanum))
})

// languageSubtag matches 'language':
//
//	2*3ALPHA ["-" extlang]  ; shortest ISO 639 code
//	/ 4ALPHA                ; reserved for future use
//	/ 5*8ALPHA              ; registered language subtag
//
// A primary subtag and its extlang are joined with "-" into one value.
var languageSubtag = oneOf(
	andThen(alphaBetween(2, 3), func(primary string) parser[string] {
		return mapValue(maybe(extlangSubtags), func(extlang string) string {
			if extlang == "" {
				return primary
			}
			return primary + "-" + extlang
		})
	}),
	alphaExactly(4),
	alphaBetween(5, maxSubtagLen),
)

// extlangSubtags matches 'extlang' = 3ALPHA *2("-" 3ALPHA), joined with "-".
func extlangSubtags(in []string) (string, []string, bool) {
	first, rest, ok := alphaExactly(extlangLen)(in)
	if !ok {
		return "", in, false
	}
	parts := []string{first}
	for i := 0; i < maxExtraExtlangs; i++ {
		next, r, ok := alphaExactly(extlangLen)(rest)
		if !ok {
			break
		}
		parts = append(parts, next)
		rest = r
	}
	return strings.Join(parts, "-"), rest, true
}

// parseNormal matches the main 'langtag' production:
//
//	language ["-" script] ["-" region] *("-" variant)
//	         *("-" extension) ["-" privateuse]
//
// Sequencing is expressed by threading the remainder through each rule;
// any failing step fails the whole production with no partial result.
// A repeated extension singleton is rejected: RFC 5646 Sec 2.2.9 forbids
// two extensions with the same singleton, and since extensions are never
// merged the tag cannot be represented faithfully.
func parseNormal(in []string) (LanguageTag, []string, bool) {
	language, rest, ok := languageSubtag(in)
	if !ok {
		return LanguageTag{}, in, false
	}
	script, rest, _ := maybe(scriptSubtag)(rest)
	region, rest, _ := maybe(regionSubtag)(rest)
	variants, rest, _ := many(variantSubtag)(rest)
	extensions, rest, _ := many(extensionSubtag)(rest)
	if hasDuplicateSingleton(extensions) {
		return LanguageTag{}, in, false
	}
	privateUse, rest, _ := maybe(privateUseSubtags)(rest)

	return LanguageTag{
		kind:       Normal,
		language:   language,
		script:     script,
		region:     region,
		variants:   variants,
		extensions: extensions,
		privateUse: privateUse,
	}, rest, true
}

// hasDuplicateSingleton reports whether two extensions share a leading
// singleton character.
func hasDuplicateSingleton(extensions []string) bool {
	if len(extensions) < 2 {
		return false
	}
	seen := make(map[byte]struct{}, len(extensions))
	for _, ext := range extensions {
		if _, ok := seen[ext[0]]; ok {
			return true
		}
		seen[ext[0]] = struct{}{}
	}
	return false
}

// parsePrivateUseOnly matches a tag that is nothing but a private-use
// sequence, e.g. "x-whatever".
func parsePrivateUseOnly(in []string) (LanguageTag, []string, bool) {
	subtags, rest, ok := privateUseSubtags(in)
	if !ok {
		return LanguageTag{}, in, false
	}
	return LanguageTag{kind: PrivateUse, privateUse: subtags}, rest, true
}

// parseTag is the top-level 'Language-Tag' production. Grandfathered tags
// take priority over otherwise-similar normal parses, and a leading "x"
// must not be misparsed as a language subtag.
var parseTag = oneOf(parseGrandfathered, parsePrivateUseOnly, parseNormal)
