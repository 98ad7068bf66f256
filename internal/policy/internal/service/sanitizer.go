// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import "github.com/microcosm-cc/bluemonday"

// newSanitizer 允许常见的排版标签，外加 h2、h3，链接只保留 href、target 和 rel
func newSanitizer() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"p", "br", "hr", "div", "span",
		"b", "i", "u", "s", "em", "strong", "small", "sub", "sup", "mark",
		"ul", "ol", "li", "dl", "dt", "dd",
		"blockquote", "code", "pre",
		"h2", "h3",
		"table", "thead", "tbody", "tfoot", "tr", "th", "td", "caption",
	)
	p.AllowStandardURLs()
	p.AllowAttrs("href", "target", "rel").OnElements("a")
	return p
}
