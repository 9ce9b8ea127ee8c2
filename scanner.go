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

// maxLineLength is the content cap for one logical line: browsers commonly
// cap URLs at 2083 bytes, and a valid robots.txt line is never many times
// that; capping here bounds the pattern matcher's worst-case inner loop
// (see pattern.go) without having to reject any real-world file.
const maxLineLength = 2083 * 8

const asciiWhitespace = " \t\n\r\f\v"

// Parse scans body (the raw bytes of a robots.txt document) and drives
// handler with the directive and line-metadata events it contains. It
// accepts the typical typos and missing separators found in real robots.txt
// files rather than rejecting them; see LineMeta for what was tolerated on
// each line.
func Parse(body string, handler RobotsParseHandler) {
	handler.HandleRobotsStart()

	body = stripBOM(body)
	n := len(body)
	lineNum := 0
	lineStart := 0
	lastWasCR := false

	emit := func(rawEnd int) {
		lineNum++
		truncated := rawEnd-lineStart > maxLineLength
		end := rawEnd
		if truncated {
			end = lineStart + maxLineLength
		}
		processLine(lineNum, body[lineStart:end], truncated, handler)
	}

	i := 0
	for i < n {
		b := body[i]
		if b != '\n' && b != '\r' {
			i++
			continue
		}
		isCRLFContinuation := i == lineStart && lastWasCR && b == '\n'
		if !isCRLFContinuation {
			emit(i)
		}
		lastWasCR = b == '\r'
		i++
		lineStart = i
	}
	// §4.2 only guarantees a final line when the input has no trailing
	// terminator; emitting one more here for terminator-ended input would
	// report a phantom empty line after every real line in the file.
	if lineStart < n || n == 0 {
		emit(n)
	}

	handler.HandleRobotsEnd()
}

// stripBOM removes a leading UTF-8 byte order mark, including a partial one
// truncated at end of input. A corrupted BOM (a mismatching byte before the
// full sequence is seen) stops at the mismatch: only the bytes that did
// match are skipped, the rest is left for ordinary line processing.
func stripBOM(body string) string {
	const bom = "\xEF\xBB\xBF"
	i := 0
	for i < len(bom) && i < len(body) && body[i] == bom[i] {
		i++
	}
	return body[i:]
}

// processLine implements the per-line grammar in full: comment stripping,
// whitespace trimming, separator detection (colon, or whitespace between
// exactly two tokens), key classification, pattern-value escaping, and
// dispatch to the matching handler callback. It always reports a LineMeta
// for the line, directive or not.
func processLine(lineNum int, line string, tooLong bool, handler RobotsParseHandler) {
	meta := LineMeta{LineNum: lineNum, IsLineTooLong: tooLong}

	if comment := strings.IndexByte(line, '#'); comment != -1 {
		meta.HasComment = true
		line = line[:comment]
	}
	line = strings.Trim(line, asciiWhitespace)

	if line == "" {
		if meta.HasComment {
			meta.IsComment = true
		} else {
			meta.IsEmpty = true
		}
		handler.HandleLineMetadata(meta)
		return
	}

	key, value, ok := splitKeyValue(line, &meta)
	if !ok || key == "" {
		handler.HandleLineMetadata(meta)
		return
	}

	meta.HasDirective = true

	var k Key
	k.Parse(key)
	meta.IsAcceptableTypo = k.IsTypo()

	if k.Kind().isActionValue() {
		value = MaybeEscapePattern(value)
	}

	dispatch(lineNum, &k, value, handler)
	handler.HandleLineMetadata(meta)
}

// splitKeyValue locates the key/value separator for one non-empty,
// comment-stripped, trimmed line. A colon is preferred; if none is present,
// whitespace is accepted as a separator, but only when doing so leaves
// exactly two tokens (otherwise the line is ambiguous and is dropped).
func splitKeyValue(line string, meta *LineMeta) (key, value string, ok bool) {
	sep := strings.IndexByte(line, ':')
	if sep == -1 {
		white := strings.IndexAny(line, " \t")
		if white == -1 {
			return "", "", false
		}
		val := strings.TrimSpace(line[white:])
		if strings.IndexAny(val, " \t") != -1 {
			// More than two whitespace-separated tokens: not a directive.
			return "", "", false
		}
		meta.IsMissingColonSeparator = true
		sep = white
	}

	key = strings.TrimRight(line[:sep], asciiWhitespace)
	if key == "" {
		return "", "", false
	}
	value = strings.TrimLeft(line[sep+1:], asciiWhitespace)
	return key, value, true
}

// dispatch invokes the handler callback matching key's classified kind,
// parsing the value-specific grammar for Crawl-delay, Request-rate and
// Content-Signal inline before calling the handler, as §4.2 step 9
// requires.
func dispatch(lineNum int, key *Key, value string, handler RobotsParseHandler) {
	switch key.Kind() {
	case UserAgent:
		handler.HandleUserAgent(lineNum, value)
	case Allow:
		handler.HandleAllow(lineNum, value)
	case Disallow:
		handler.HandleDisallow(lineNum, value)
	case Sitemap:
		handler.HandleSitemap(lineNum, value)
	case CrawlDelay:
		handler.HandleCrawlDelay(lineNum, ParseCrawlDelay(value))
	case RequestRate:
		if rate, ok := ParseRequestRate(value); ok {
			handler.HandleRequestRate(lineNum, rate)
		}
	case ContentSignal:
		handler.HandleContentSignal(lineNum, ParseContentSignal(value))
	case Unknown:
		handler.HandleUnknownAction(lineNum, key.UnknownText(), value)
	}
}
