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

// noMatchPriority is the sentinel priority for "no match yet," chosen
// negative so that a match of priority 0 (an empty pattern) still outranks
// having seen nothing at all.
const noMatchPriority = -1

// Match records the best Allow or Disallow rule seen so far for one scope:
// the priority is the byte length of the pattern that matched (see
// pattern.go), and line is the 1-based source line it came from.
type Match struct {
	Priority int
	Line     int
}

func (m *Match) clear() { *m = Match{Priority: noMatchPriority} }

func (m *Match) record(priority, line int) {
	if priority > m.Priority {
		*m = Match{Priority: priority, Line: line}
	}
}

// higherPriority returns whichever of a, b has the greater priority. On a
// tie it returns a: MatchingLine relies on this to prefer the Disallow
// match's line over the Allow match's line when both matched equally well.
func higherPriority(a, b Match) Match {
	if b.Priority > a.Priority {
		return b
	}
	return a
}

// MatchHierarchy holds the competing Match for the global ('*') scope and
// for the most specific named agent scope, for either Allow or Disallow.
type MatchHierarchy struct {
	Global   Match
	Specific Match
}

func (h *MatchHierarchy) clear() {
	h.Global.clear()
	h.Specific.clear()
}

// Matcher matches robots.txt directives against URLs using the longest-
// match-wins strategy the dominant web crawler uses. Construct one with
// NewMatcher and reuse it across calls to Allowed/OneAgentAllowed; each
// call re-initializes all state, but a single Matcher is not safe for
// concurrent use — two goroutines must each use their own instance.
type Matcher struct {
	strategy LongestMatchStrategy

	allow    MatchHierarchy
	disallow MatchHierarchy

	seenGlobalAgent         bool
	seenSpecificAgent       bool
	everSeenSpecificAgent   bool
	seenSeparator           bool
	bestSpecificAgentLength int

	globalCrawlDelay      *float64
	specificCrawlDelay    *float64
	globalRequestRate     *RequestRate
	specificRequestRate   *RequestRate
	globalContentSignal   *ContentSignal
	specificContentSignal *ContentSignal

	path   string
	agents []string
}

var _ RobotsParseHandler = (*Matcher)(nil)

// NewMatcher constructs a Matcher using the default longest-match pattern
// strategy.
func NewMatcher() *Matcher {
	return &Matcher{strategy: LongestMatchStrategy{}}
}

// Allowed parses robotsBody fresh and reports whether uri may be fetched by
// any of the given user-agent identifiers. The URL is assumed to already be
// percent-encoded per RFC 3986; this package does no canonicalization of
// its own beyond §4.5's path extraction.
func (m *Matcher) Allowed(robotsBody string, agents []string, uri string) bool {
	m.reset()
	m.path = ExtractPathParamsQuery(uri)
	m.agents = agents
	Parse(robotsBody, m)
	return !m.isDisallowed()
}

// OneAgentAllowed is sugar for Allowed with a single user-agent identifier.
func (m *Matcher) OneAgentAllowed(robotsBody, agent, uri string) bool {
	return m.Allowed(robotsBody, []string{agent}, uri)
}

// MatchingLine returns the source line number responsible for the decision
// made by the most recent Allowed/OneAgentAllowed call.
func (m *Matcher) MatchingLine() int {
	if m.everSeenSpecificAgent {
		return higherPriority(m.disallow.Specific, m.allow.Specific).Line
	}
	return higherPriority(m.disallow.Global, m.allow.Global).Line
}

// EverSeenSpecificAgent reports whether any queried agent had its own named
// group in the most recently parsed robots.txt.
func (m *Matcher) EverSeenSpecificAgent() bool { return m.everSeenSpecificAgent }

// CrawlDelay returns the effective Crawl-delay for the most recent call:
// the specific scope's value if one was seen and set, otherwise the global
// scope's, otherwise nil.
func (m *Matcher) CrawlDelay() *float64 {
	if m.everSeenSpecificAgent && m.specificCrawlDelay != nil {
		return m.specificCrawlDelay
	}
	return m.globalCrawlDelay
}

// RequestRate returns the effective Request-rate for the most recent call,
// with the same specific-before-global precedence as CrawlDelay.
func (m *Matcher) RequestRate() *RequestRate {
	if m.everSeenSpecificAgent && m.specificRequestRate != nil {
		return m.specificRequestRate
	}
	return m.globalRequestRate
}

// ContentSignal returns the effective Content-Signal for the most recent
// call, with the same specific-before-global precedence as CrawlDelay.
func (m *Matcher) ContentSignal() *ContentSignal {
	if m.everSeenSpecificAgent && m.specificContentSignal != nil {
		return m.specificContentSignal
	}
	return m.globalContentSignal
}

func (m *Matcher) reset() {
	m.allow.clear()
	m.disallow.clear()
	m.seenGlobalAgent = false
	m.seenSpecificAgent = false
	m.everSeenSpecificAgent = false
	m.seenSeparator = false
	m.bestSpecificAgentLength = 0
	m.globalCrawlDelay = nil
	m.specificCrawlDelay = nil
	m.globalRequestRate = nil
	m.specificRequestRate = nil
	m.globalContentSignal = nil
	m.specificContentSignal = nil
}

func (m *Matcher) seenAnyAgent() bool {
	return m.seenGlobalAgent || m.seenSpecificAgent
}

// isDisallowed implements §4.4's decision: the specific scope wins whenever
// it has a match of positive priority (a zero-priority match from an empty
// pattern does not count); an empty but present specific group allows by
// default; otherwise the global scope decides; ties favor Allow throughout.
func (m *Matcher) isDisallowed() bool {
	if m.allow.Specific.Priority > 0 || m.disallow.Specific.Priority > 0 {
		return m.disallow.Specific.Priority > m.allow.Specific.Priority
	}
	if m.everSeenSpecificAgent {
		return false
	}
	if m.disallow.Global.Priority > 0 || m.allow.Global.Priority > 0 {
		return m.disallow.Global.Priority > m.allow.Global.Priority
	}
	return false
}

// HandleRobotsStart is called by Parse before the first line; Matcher's own
// state is already reset by Allowed/OneAgentAllowed, so this is a no-op.
func (m *Matcher) HandleRobotsStart() {}

// HandleRobotsEnd is called by Parse after the last line; Matcher needs no
// end-of-parse bookkeeping.
func (m *Matcher) HandleRobotsEnd() {}

// HandleLineMetadata discards per-line diagnostics; use a LineReporter (see
// reporter.go) to collect them.
func (m *Matcher) HandleLineMetadata(LineMeta) {}

// HandleUserAgent implements the group-reset and specificity rules of §4.4.
func (m *Matcher) HandleUserAgent(lineNum int, value string) {
	if m.seenSeparator {
		m.seenGlobalAgent = false
		m.seenSpecificAgent = false
		m.seenSeparator = false
	}

	if len(value) >= 1 && value[0] == '*' && (len(value) == 1 || isASCIISpace(value[1])) {
		m.seenGlobalAgent = true
		return
	}

	prefix := ExtractUserAgent(value)
	for _, agent := range m.agents {
		if !strings.EqualFold(prefix, agent) {
			continue
		}
		switch {
		case len(prefix) > m.bestSpecificAgentLength:
			m.bestSpecificAgentLength = len(prefix)
			m.allow.Specific.clear()
			m.disallow.Specific.clear()
			m.specificCrawlDelay = nil
			m.specificRequestRate = nil
			m.specificContentSignal = nil
			m.seenSpecificAgent = true
			m.everSeenSpecificAgent = true
		case len(prefix) == m.bestSpecificAgentLength:
			m.seenSpecificAgent = true
			m.everSeenSpecificAgent = true
		default:
			// A shorter agent name than one already admitted: this group
			// doesn't get to contribute specific rules.
		}
		break
	}
}

// HandleAllow implements §4.4's Allow handling, including the
// index.htm(l)-as-"/" convention.
func (m *Matcher) HandleAllow(lineNum int, value string) {
	if !m.seenAnyAgent() {
		return
	}
	m.seenSeparator = true
	priority := m.strategy.MatchAllow(m.path, value)
	if priority >= 0 {
		if m.seenSpecificAgent {
			m.allow.Specific.record(priority, lineNum)
		} else {
			m.allow.Global.record(priority, lineNum)
		}
		return
	}

	slashPos := strings.LastIndexByte(value, '/')
	if slashPos != -1 && strings.HasPrefix(value[slashPos:], "/index.htm") {
		m.HandleAllow(lineNum, value[:slashPos+1]+"$")
	}
}

// HandleDisallow implements §4.4's Disallow handling.
func (m *Matcher) HandleDisallow(lineNum int, value string) {
	if !m.seenAnyAgent() {
		return
	}
	m.seenSeparator = true
	priority := m.strategy.MatchDisallow(m.path, value)
	if priority < 0 {
		return
	}
	if m.seenSpecificAgent {
		m.disallow.Specific.record(priority, lineNum)
	} else {
		m.disallow.Global.record(priority, lineNum)
	}
}

// HandleSitemap does not affect Allow/Disallow matching; use Sitemaps (in
// reporter.go) to collect sitemap URLs.
func (m *Matcher) HandleSitemap(lineNum int, value string) {}

// HandleUnknownAction does not affect matching and is not a group separator.
func (m *Matcher) HandleUnknownAction(lineNum int, action, value string) {}

// HandleCrawlDelay stores the first Crawl-delay seen in the current scope;
// later ones in the same scope are ignored.
func (m *Matcher) HandleCrawlDelay(lineNum int, value float64) {
	if !m.seenAnyAgent() {
		return
	}
	if m.seenSpecificAgent {
		if m.specificCrawlDelay == nil {
			m.specificCrawlDelay = &value
		}
		return
	}
	if m.globalCrawlDelay == nil {
		m.globalCrawlDelay = &value
	}
}

// HandleRequestRate stores the first Request-rate seen in the current
// scope; later ones in the same scope are ignored.
func (m *Matcher) HandleRequestRate(lineNum int, value RequestRate) {
	if !m.seenAnyAgent() {
		return
	}
	if m.seenSpecificAgent {
		if m.specificRequestRate == nil {
			m.specificRequestRate = &value
		}
		return
	}
	if m.globalRequestRate == nil {
		m.globalRequestRate = &value
	}
}

// HandleContentSignal stores the first Content-Signal seen in the current
// scope; later ones in the same scope are ignored.
func (m *Matcher) HandleContentSignal(lineNum int, value ContentSignal) {
	if !m.seenAnyAgent() {
		return
	}
	if m.seenSpecificAgent {
		if m.specificContentSignal == nil {
			m.specificContentSignal = &value
		}
		return
	}
	if m.globalContentSignal == nil {
		m.globalContentSignal = &value
	}
}

// ExtractUserAgent returns the matchable prefix of a User-agent value: the
// run of bytes in [A-Za-z_-] at the start of it.
func ExtractUserAgent(userAgent string) string {
	i := 0
	for i < len(userAgent) && isUserAgentByte(userAgent[i]) {
		i++
	}
	return userAgent[:i]
}

// IsValidUserAgentToObey reports whether s is non-empty and composed
// entirely of bytes in [A-Za-z_-], the only characters a crawler's own
// identifier is allowed to contain when querying a Matcher.
func IsValidUserAgentToObey(s string) bool {
	return len(s) > 0 && ExtractUserAgent(s) == s
}

func isUserAgentByte(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '-' || c == '_'
}

func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}
