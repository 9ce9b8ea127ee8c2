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

import "strings"

// AllowFrequentTypos controls whether well-known misspellings of directive
// names (e.g. "dissalow", "crawldelay") are accepted as their canonical
// directive. The reference crawler this package follows enables this by
// default, because real robots.txt files are full of them.
var AllowFrequentTypos = true

// KeyKind identifies which directive a line's key token names.
type KeyKind int

const (
	// Unknown is the zero value so additions to this enumeration don't
	// change the meaning of an already-serialized value.
	Unknown KeyKind = iota
	UserAgent
	Allow
	Disallow
	Sitemap
	CrawlDelay
	RequestRate
	ContentSignal
)

func (k KeyKind) String() string {
	switch k {
	case UserAgent:
		return "user-agent"
	case Allow:
		return "allow"
	case Disallow:
		return "disallow"
	case Sitemap:
		return "sitemap"
	case CrawlDelay:
		return "crawl-delay"
	case RequestRate:
		return "request-rate"
	case ContentSignal:
		return "content-signal"
	default:
		return "unknown"
	}
}

// isActionValue reports whether values of this kind name a URL path pattern
// (Allow, Disallow, or an unrecognized action) and therefore must be run
// through MaybeEscapePattern before being handed to the handler. User-agent,
// Sitemap, Crawl-delay, Request-rate and Content-Signal values are not
// patterns and are passed through unescaped.
func (k KeyKind) isActionValue() bool {
	switch k {
	case Allow, Disallow, Unknown:
		return true
	default:
		return false
	}
}

// Key is a parsed, classified directive name. Parse does not copy the text
// it is given, so the string passed to Parse must outlive the Key (or the
// next call to Parse).
type Key struct {
	kind   KeyKind
	text   string // original text, retained only when kind == Unknown
	isTypo bool
}

// Parse classifies a whitespace-stripped key token. Matching is
// case-insensitive and prefix-based: "disallowed-paths" still classifies as
// Disallow, because the reference implementation this follows uses a
// starts-with comparison rather than an exact one.
func (k *Key) Parse(key string) {
	k.text = ""
	k.isTypo = false
	switch {
	case startsWithIgnoreCase(key, "user-agent"):
		k.kind = UserAgent
	case AllowFrequentTypos && (startsWithIgnoreCase(key, "useragent") || startsWithIgnoreCase(key, "user agent")):
		k.kind = UserAgent
		k.isTypo = true
	case startsWithIgnoreCase(key, "allow"):
		k.kind = Allow
	case startsWithIgnoreCase(key, "disallow"):
		k.kind = Disallow
	case AllowFrequentTypos && isDisallowTypo(key):
		k.kind = Disallow
		k.isTypo = true
	case startsWithIgnoreCase(key, "sitemap") || startsWithIgnoreCase(key, "site-map"):
		k.kind = Sitemap
	case startsWithIgnoreCase(key, "crawl-delay"):
		k.kind = CrawlDelay
	case AllowFrequentTypos && (startsWithIgnoreCase(key, "crawldelay") || startsWithIgnoreCase(key, "crawl delay")):
		k.kind = CrawlDelay
		k.isTypo = true
	case startsWithIgnoreCase(key, "request-rate"):
		k.kind = RequestRate
	case startsWithIgnoreCase(key, "content-signal"):
		k.kind = ContentSignal
	case AllowFrequentTypos && (startsWithIgnoreCase(key, "contentsignal") || startsWithIgnoreCase(key, "content signal")):
		k.kind = ContentSignal
		k.isTypo = true
	default:
		k.kind = Unknown
		k.text = key
	}
}

func isDisallowTypo(key string) bool {
	return startsWithIgnoreCase(key, "dissallow") ||
		startsWithIgnoreCase(key, "dissalow") ||
		startsWithIgnoreCase(key, "disalow") ||
		startsWithIgnoreCase(key, "diasllow") ||
		startsWithIgnoreCase(key, "disallaw")
}

// Kind returns the classified directive kind.
func (k *Key) Kind() KeyKind { return k.kind }

// IsTypo reports whether the key matched via a typo-tolerant variant rather
// than its canonical spelling.
func (k *Key) IsTypo() bool { return k.isTypo }

// UnknownText returns the original key text for an Unknown key. It panics
// if called on anything else; callers must check Kind() first.
func (k *Key) UnknownText() string {
	if k.kind != Unknown {
		panic("rep: UnknownText called on a recognized key")
	}
	return k.text
}

func startsWithIgnoreCase(x, y string) bool {
	return len(x) >= len(y) && strings.EqualFold(x[:len(y)], y)
}
