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

// Grandfathered tags predate RFC 5646 and are matched verbatim against
// the fixed enumerations of its 'irregular' and 'regular' productions.
// They are legacy exceptions, deliberately kept out of the compositional
// grammar: matching is by exact, case-sensitive equality of the whole
// subtag sequence.

// irregularTags do not fit the langtag production at all
// (RFC 5646 Sec 2.1, 'irregular').
var irregularTags = map[string]struct{}{
	"en-GB-oed":  {},
	"i-ami":      {},
	"i-bnn":      {},
	"i-default":  {},
	"i-enochian": {},
	"i-hak":      {},
	"i-klingon":  {},
	"i-lux":      {},
	"i-mingo":    {},
	"i-navajo":   {},
	"i-pwn":      {},
	"i-tao":      {},
	"i-tay":      {},
	"i-tsu":      {},
	"sgn-BE-FR":  {},
	"sgn-BE-NL":  {},
	"sgn-CH-DE":  {},
}

// regularTags fit the langtag production but carry meanings assigned
// before registration was possible (RFC 5646 Sec 2.1, 'regular').
var regularTags = map[string]struct{}{
	"art-lojban":  {},
	"cel-gaulish": {},
	"no-bok":      {},
	"no-nyn":      {},
	"zh-guoyu":    {},
	"zh-hakka":    {},
	"zh-min":      {},
	"zh-min-nan":  {},
	"zh-xiang":    {},
}

// parseGrandfathered matches the entire remaining subtag sequence against
// the irregular table first, then the regular one, consuming everything
// on success. Subtags never contain a hyphen, so joining and comparing
// the full string is equivalent to sequence equality.
func parseGrandfathered(in []string) (LanguageTag, []string, bool) {
	joined := strings.Join(in, "-")
	if _, ok := irregularTags[joined]; !ok {
		if _, ok := regularTags[joined]; !ok {
			return LanguageTag{}, in, false
		}
	}
	return LanguageTag{kind: Grandfathered, subtags: in}, nil, true
}
