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

import "bytes"

const hexDigits = "0123456789ABCDEF"

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' ||
		'a' <= c && c <= 'f' ||
		'A' <= c && c <= 'F'
}

func isAsciiLower(c byte) bool {
	return 'a' <= c && c <= 'z'
}

func toAsciiUpper(c byte) byte {
	if isAsciiLower(c) {
		return c &^ 0x20
	}
	return c
}

// MaybeEscapePattern canonicalizes an Allow/Disallow/Unknown-action value:
// it uppercases the hex digits of any existing "%HH" escape and
// percent-encodes any byte with the high bit set, using two uppercase hex
// digits. If neither transformation is needed the original string is
// returned unchanged, so the common case allocates nothing.
func MaybeEscapePattern(src string) string {
	needsUppercase := false
	numToEscape := 0

	byteAt := func(i int) byte {
		if i < len(src) {
			return src[i]
		}
		return 0
	}

	for i := 0; i < len(src); i++ {
		switch {
		case src[i] == '%' && isHexDigit(byteAt(i+1)) && isHexDigit(byteAt(i+2)):
			if isAsciiLower(byteAt(i+1)) || isAsciiLower(byteAt(i+2)) {
				needsUppercase = true
			}
		case src[i] >= 0x80:
			numToEscape++
		}
	}

	if numToEscape == 0 && !needsUppercase {
		return src
	}

	var dst bytes.Buffer
	dst.Grow(len(src) + numToEscape*2)
	for i := 0; i < len(src); i++ {
		switch {
		case src[i] == '%' && isHexDigit(byteAt(i+1)) && isHexDigit(byteAt(i+2)):
			dst.WriteByte('%')
			dst.WriteByte(toAsciiUpper(src[i+1]))
			dst.WriteByte(toAsciiUpper(src[i+2]))
			i += 2
		case src[i] >= 0x80:
			dst.WriteByte('%')
			dst.WriteByte(hexDigits[(src[i]>>4)&0xF])
			dst.WriteByte(hexDigits[src[i]&0xF])
		default:
			dst.WriteByte(src[i])
		}
	}
	return dst.String()
}

// escapePatternLiteral re-encodes any literal '*' or '$' byte in s as "%2A"
// or "%24", so a pattern containing those sequences can still match a URL
// whose path genuinely contains the raw characters (see url.go).
func escapePatternLiteral(s string) string {
	if !bytes.ContainsAny([]byte(s), "*$") {
		return s
	}
	var dst bytes.Buffer
	dst.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '*':
			dst.WriteString("%2A")
		case '$':
			dst.WriteString("%24")
		default:
			dst.WriteByte(s[i])
		}
	}
	return dst.String()
}
