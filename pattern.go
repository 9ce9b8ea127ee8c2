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

// PatternStrategy defines a strategy for matching a path against an
// Allow/Disallow pattern. Each method returns a match priority:
//
//	priority < 0   no match
//	priority == 0  match, as if against an empty pattern
//	priority > 0   match, priority equal to the pattern's byte length
//
// The matcher's precedence rules treat this priority as the deciding factor
// between competing Allow and Disallow rules, so the strategy is a
// compile-time choice rather than something resolved through an interface
// in the hot path; LongestMatchStrategy is the only one this package ships.
type PatternStrategy interface {
	MatchAllow(path, pattern string) int
	MatchDisallow(path, pattern string) int
	Matches(path, pattern string) bool
}

var _ PatternStrategy = LongestMatchStrategy{}

// LongestMatchStrategy implements the canonical robots.txt matching rule:
// the priority of a match is the byte length of the pattern that produced
// it, so among several candidate rules the longest (most specific) one
// wins.
type LongestMatchStrategy struct{}

func (s LongestMatchStrategy) MatchAllow(path, pattern string) int {
	if s.Matches(path, pattern) {
		return len(pattern)
	}
	return -1
}

func (s LongestMatchStrategy) MatchDisallow(path, pattern string) int {
	if s.Matches(path, pattern) {
		return len(pattern)
	}
	return -1
}

func (s LongestMatchStrategy) Matches(path, pattern string) bool {
	return matchPattern(path, pattern)
}

// matchPattern reports whether path satisfies pattern under the REP pattern
// grammar: '*' matches any run of bytes (including none), a trailing '$'
// anchors the match to the end of path, and every other byte matches
// itself. Percent-encoded triplets ("%HH") on either side are decoded to a
// single byte before the comparison, so "%2F" in a pattern matches a
// literal '/' in the path and vice versa. "%2A" and "%24" in a pattern are
// therefore literal '*' and '$' bytes, never re-interpreted as the wildcard
// or the anchor, because the anchor/wildcard check below only fires on the
// raw, unescaped byte.
//
// pos holds the path offsets consistent with the pattern consumed so far,
// following the same sweep the reference matcher uses; here each offset
// advances by 1 or 3 bytes depending on whether the decoded unit at that
// offset was a literal byte or a "%HH" triplet, so pos is not always sorted
// or free of duplicates (hence the explicit minimum taken for '*').
func matchPattern(path, pattern string) bool {
	pos := []int{0}

	i := 0
	for i < len(pattern) {
		if pattern[i] == '$' && i+1 == len(pattern) {
			for _, p := range pos {
				if p == len(path) {
					return true
				}
			}
			return false
		}

		if pattern[i] == '*' {
			minPos := pos[0]
			for _, p := range pos {
				if p < minPos {
					minPos = p
				}
			}
			expanded := make([]int, 0, len(path)-minPos+1)
			for p := minPos; p <= len(path); p++ {
				expanded = append(expanded, p)
			}
			pos = expanded
			i++
			continue
		}

		wantByte, patAdvance := decodeOctetAt(pattern, i)

		next := pos[:0:0]
		for _, p := range pos {
			if p >= len(path) {
				continue
			}
			gotByte, pathAdvance := decodeOctetAt(path, p)
			if gotByte == wantByte {
				next = append(next, p+pathAdvance)
			}
		}
		if len(next) == 0 {
			return false
		}
		pos = next
		i += patAdvance
	}

	return len(pos) > 0
}

// decodeOctetAt reads one comparison unit from s starting at i: a "%HH"
// triplet decodes to its single byte value and advances 3, anything else
// is taken literally and advances 1.
func decodeOctetAt(s string, i int) (b byte, advance int) {
	if s[i] == '%' && i+2 < len(s) && isHexDigit(s[i+1]) && isHexDigit(s[i+2]) {
		return hexValue(s[i+1])<<4 | hexValue(s[i+2]), 3
	}
	return s[i], 1
}

func hexValue(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}
