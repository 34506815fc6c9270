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

import "golang.org/x/text/language"

// TextTag converts the parsed tag into a golang.org/x/text/language.Tag,
// the value type used by the x/text ecosystem for registry lookups,
// matching, and display names. Those concerns are out of scope for this
// package and belong to layers built on top of it.
//
// Note that language.Parse canonicalizes: the returned tag's String()
// may differ from this tag's String() (e.g. "i-klingon" becomes "tlh").
// An error is returned when x/text rejects the tag, which can happen for
// syntactically well-formed tags it has no mapping for.
func (lt LanguageTag) TextTag() (language.Tag, error) {
	return language.Parse(lt.String())
}
