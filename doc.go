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

// Package rep implements the Robots Exclusion Protocol, RFC 9309, together
// with the pragmatic extensions the dominant web-search crawler has adopted
// (typo-tolerant directive names, longest-match Allow/Disallow resolution,
// Crawl-delay, Request-rate and Content-Signal directives).
//
// The package is split into a zero-copy line scanner (Parse), which emits
// directive events to any RobotsParseHandler, and a stateful Matcher, which
// consumes those events and answers whether a URL may be fetched by a given
// set of user-agent identifiers.
//
// A Matcher is not safe for concurrent use: each call to Allowed or
// OneAgentAllowed re-initialises its internal state and mutates it for the
// duration of the call. Two independent Matcher values may be used from
// separate goroutines without coordination.
package rep
