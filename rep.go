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

import "github.com/google/uuid"

// AgentAllowed constructs a fresh Matcher and reports whether uri may be
// fetched by agent according to robotsBody.
func AgentAllowed(robotsBody, agent, uri string) bool {
	return NewMatcher().OneAgentAllowed(robotsBody, agent, uri)
}

// AgentsAllowed constructs a fresh Matcher and reports whether uri may be
// fetched by any of agents according to robotsBody.
func AgentsAllowed(robotsBody string, agents []string, uri string) bool {
	return NewMatcher().Allowed(robotsBody, agents, uri)
}

// MatcherRun is a JSON-serializable snapshot of one Allowed/OneAgentAllowed
// call, intended for diagnostics output (see cmd/repcheck). RunID lets
// repeated invocations of a long-lived tool correlate a decision back to
// the robots.txt/agents/URL that produced it, the way blue-banded-bee tags
// its crawl jobs with a uuid.
type MatcherRun struct {
	RunID                 string         `json:"run_id"`
	Allowed               bool           `json:"allowed"`
	MatchingLine          int            `json:"matching_line"`
	EverSeenSpecificAgent bool           `json:"ever_seen_specific_agent"`
	CrawlDelay            *float64       `json:"crawl_delay,omitempty"`
	RequestRate           *RequestRate   `json:"request_rate,omitempty"`
	ContentSignal         *ContentSignal `json:"content_signal,omitempty"`
}

// Run parses robotsBody once and returns a full diagnostic snapshot of the
// decision for agents and uri, instead of just the boolean Allowed returns.
func Run(robotsBody string, agents []string, uri string) MatcherRun {
	m := NewMatcher()
	allowed := m.Allowed(robotsBody, agents, uri)
	return MatcherRun{
		RunID:                 uuid.NewString(),
		Allowed:               allowed,
		MatchingLine:          m.MatchingLine(),
		EverSeenSpecificAgent: m.EverSeenSpecificAgent(),
		CrawlDelay:            m.CrawlDelay(),
		RequestRate:           m.RequestRate(),
		ContentSignal:         m.ContentSignal(),
	}
}
