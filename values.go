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
	"strconv"
	"strings"
)

// RequestRate is the parsed value of a Request-rate directive: Requests
// requests permitted every Seconds seconds. Both fields are always
// positive; ParseRequestRate rejects (and the scanner drops) any value that
// would produce a non-positive field.
type RequestRate struct {
	Requests int
	Seconds  int
}

// ContentSignal is the parsed value of a Content-Signal directive. Each
// field is nil unless the directive explicitly set it; an absent field
// means the directive didn't mention that signal, not that it was set to
// false.
type ContentSignal struct {
	AITrain *bool
	AIInput *bool
	Search  *bool
}

// ParseCrawlDelay parses a Crawl-delay value as a non-negative decimal
// number of seconds, optionally with a fractional part. A malformed or
// negative value parses to 0, per the directive's defined error recovery:
// there is no way to "reject" a Crawl-delay, so a malformed one is still
// reported, with a value of 0.
func ParseCrawlDelay(value string) float64 {
	value = strings.TrimSpace(value)
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

// ParseRequestRate parses a Request-rate value of the form "R/S", "R/Ss" or
// bare "R" (which implies a one-second window). It returns ok=false when
// the value is malformed or either number would be non-positive, in which
// case the directive must be dropped rather than stored.
func ParseRequestRate(value string) (rate RequestRate, ok bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return RequestRate{}, false
	}

	reqPart := value
	secPart := ""
	slash := strings.IndexByte(value, '/')
	if slash != -1 {
		reqPart = value[:slash]
		secPart = value[slash+1:]
	}

	requests, err := strconv.Atoi(reqPart)
	if err != nil || requests <= 0 {
		return RequestRate{}, false
	}

	seconds := 1
	if slash != -1 {
		secPart = strings.TrimSuffix(strings.TrimSuffix(secPart, "s"), "S")
		seconds, err = strconv.Atoi(secPart)
		if err != nil || seconds <= 0 {
			return RequestRate{}, false
		}
	}

	return RequestRate{Requests: requests, Seconds: seconds}, true
}

// ParseContentSignal parses a comma-separated "key=value" list, recognizing
// only the "ai-train", "ai-input" and "search" keys (case-insensitively);
// any other key is silently skipped. Values "yes"/"true"/"1" set the field
// true, "no"/"false"/"0" set it false, and anything else leaves the field
// unset.
func ParseContentSignal(value string) ContentSignal {
	var cs ContentSignal
	for _, item := range strings.Split(value, ",") {
		eq := strings.IndexByte(item, '=')
		if eq == -1 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(item[:eq]))
		val := strings.ToLower(strings.TrimSpace(item[eq+1:]))
		b, ok := parseContentSignalBool(val)
		if !ok {
			continue
		}
		switch key {
		case "ai-train":
			cs.AITrain = &b
		case "ai-input":
			cs.AIInput = &b
		case "search":
			cs.Search = &b
		}
	}
	return cs
}

func parseContentSignalBool(val string) (b bool, ok bool) {
	switch val {
	case "yes", "true", "1":
		return true, true
	case "no", "false", "0":
		return false, true
	default:
		return false, false
	}
}
