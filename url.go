// Copyright 2020 Jim Smart
// Copyright 1999 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rep

import (
	"strings"

	whatwg "github.com/nlnwa/whatwg-url/url"
)

// ExtractPathParamsQuery extracts the path, params and query portion of a
// URL for use as the Matcher's path: scheme and authority are stripped, the
// fragment is dropped, and the result always starts with "/".
//
// Absolute URLs (those containing "://") are parsed with the WHATWG URL
// Standard parser; anything else — scheme-less hosts, protocol-relative
// URLs, bare paths, or input the strict parser rejects — falls back to the
// lightweight, hand-rolled extraction the reference matcher uses, which is
// what the boundary vectors in this package's tests are pinned against.
func ExtractPathParamsQuery(rawURL string) string {
	if rawURL == "" {
		return "/"
	}

	if strings.Contains(rawURL, "://") {
		if u, err := whatwg.Parse(rawURL); err == nil {
			path := u.Pathname() + u.Search()
			if path == "" {
				path = "/"
			}
			return escapePatternLiteral(path)
		}
	}

	return escapePatternLiteral(legacyPathParamsQuery(rawURL))
}

// legacyPathParamsQuery is the hand-rolled extraction for everything the
// WHATWG parser doesn't handle for us: scheme-less and protocol-relative
// URLs, and malformed input that should still be treated as a bare path
// when it starts with '/'.
func legacyPathParamsQuery(uri string) string {
	searchStart := 0
	if len(uri) >= 2 && uri[0] == '/' && uri[1] == '/' {
		searchStart = 2
	}

	earlyPath := indexAnyFrom(uri, "/?;", searchStart)
	protocolEnd := indexFrom(uri, "://", searchStart)
	if earlyPath != -1 && (protocolEnd == -1 || earlyPath < protocolEnd) {
		protocolEnd = -1
	}
	if protocolEnd == -1 {
		protocolEnd = searchStart
	} else {
		protocolEnd += len("://")
	}

	pathStart := indexAnyFrom(uri, "/?;", protocolEnd)
	if pathStart == -1 {
		return "/"
	}

	hashPos := indexByteFrom(uri, '#', searchStart)
	if hashPos != -1 && hashPos < pathStart {
		return "/"
	}
	pathEnd := len(uri)
	if hashPos != -1 {
		pathEnd = hashPos
	}

	if uri[pathStart] != '/' {
		return "/" + uri[pathStart:pathEnd]
	}
	return uri[pathStart:pathEnd]
}

func indexAnyFrom(s, chars string, from int) int {
	if j := strings.IndexAny(s[from:], chars); j != -1 {
		return j + from
	}
	return -1
}

func indexFrom(s, sub string, from int) int {
	if j := strings.Index(s[from:], sub); j != -1 {
		return j + from
	}
	return -1
}

func indexByteFrom(s string, b byte, from int) int {
	if j := strings.IndexByte(s[from:], b); j != -1 {
		return j + from
	}
	return -1
}
