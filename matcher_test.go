// Copyright 2020 Jim Smart
// Copyright 2019 Google LLC
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

// This file exercises the matcher described in §4.4 against Robots
// Exclusion Protocol test vectors, plus the group-syntax and precedence
// scenarios the reference matcher this package follows is itself tested
// against.

package rep_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/aldermoss/rep"
)

var _ = Describe("Matcher", func() {

	isAgentAllowed := func(robotsTxt, userAgent, url string) bool {
		m := rep.NewMatcher()
		return m.OneAgentAllowed(robotsTxt, userAgent, url)
	}

	EXPECT_TRUE := func(b bool) { Expect(b).To(BeTrue()) }
	EXPECT_FALSE := func(b bool) { Expect(b).To(BeFalse()) }

	It("allows everything against an empty robots.txt", func() {
		const robotsTxt = "user-agent: FooBot\ndisallow: /\n"
		EXPECT_TRUE(isAgentAllowed("", "FooBot", ""))
		EXPECT_TRUE(isAgentAllowed(robotsTxt, "", ""))
		EXPECT_FALSE(isAgentAllowed(robotsTxt, "FooBot", ""))
		EXPECT_TRUE(isAgentAllowed("", "", ""))
	})

	It("accepts a missing colon separator between exactly two tokens", func() {
		const correct = "user-agent: FooBot\ndisallow: /\n"
		const incorrectKey = "foo: FooBot\nbar: /\n"
		const missingColon = "user-agent FooBot\ndisallow /\n"
		const url = "http://foo.bar/x/y"
		EXPECT_FALSE(isAgentAllowed(correct, "FooBot", url))
		EXPECT_TRUE(isAgentAllowed(incorrectKey, "FooBot", url))
		EXPECT_FALSE(isAgentAllowed(missingColon, "FooBot", url))
	})

	It("groups rules under their preceding user-agent lines only", func() {
		const robotsTxt = "allow: /foo/bar/\n" +
			"\n" +
			"user-agent: FooBot\n" +
			"disallow: /\n" +
			"allow: /x/\n" +
			"user-agent: BarBot\n" +
			"disallow: /\n" +
			"allow: /y/\n" +
			"\n\n" +
			"allow: /w/\n" +
			"user-agent: BazBot\n" +
			"\n" +
			"user-agent: FooBot\n" +
			"allow: /z/\n" +
			"disallow: /\n"

		EXPECT_TRUE(isAgentAllowed(robotsTxt, "FooBot", "http://foo.bar/x/b"))
		EXPECT_TRUE(isAgentAllowed(robotsTxt, "FooBot", "http://foo.bar/z/d"))
		EXPECT_FALSE(isAgentAllowed(robotsTxt, "FooBot", "http://foo.bar/y/c"))
		EXPECT_TRUE(isAgentAllowed(robotsTxt, "BarBot", "http://foo.bar/y/c"))
		EXPECT_TRUE(isAgentAllowed(robotsTxt, "BarBot", "http://foo.bar/w/a"))
		EXPECT_FALSE(isAgentAllowed(robotsTxt, "BarBot", "http://foo.bar/z/d"))
		EXPECT_TRUE(isAgentAllowed(robotsTxt, "BazBot", "http://foo.bar/z/d"))
		EXPECT_FALSE(isAgentAllowed(robotsTxt, "FooBot", "http://foo.bar/foo/bar/"))
	})

	It("is case-insensitive on directive names and user-agent values", func() {
		const upper = "USER-AGENT: FooBot\nALLOW: /x/\nDISALLOW: /\n"
		const lower = "user-agent: FooBot\nallow: /x/\ndisallow: /\n"
		const mixed = "uSeR-aGeNt: FooBot\nAlLoW: /x/\ndIsAlLoW: /\n"
		for _, txt := range []string{upper, lower, mixed} {
			EXPECT_TRUE(isAgentAllowed(txt, "FooBot", "http://foo.bar/x/y"))
			EXPECT_FALSE(isAgentAllowed(txt, "FooBot", "http://foo.bar/z/y"))
		}
		EXPECT_FALSE(isAgentAllowed("user-agent: FooBot\ndisallow: /\n", "foobot", "http://foo.bar/x"))
	})

	It("resolves an Allow vs Disallow conflict by longest match", func() {
		const robotsTxt = "user-agent: FooBot\ndisallow: /\nallow: /fish*.php\n"
		EXPECT_TRUE(isAgentAllowed(robotsTxt, "FooBot", "http://foo.bar/fishheads/catfish.php?parameters"))
		EXPECT_FALSE(isAgentAllowed(robotsTxt, "FooBot", "http://foo.bar/Fish.PHP"))
	})

	It("matches percent-encoded octets in a pattern against literal path bytes", func() {
		const robotsTxt = "User-agent: FooBot\nDisallow: /path/file-with-%2A.html\n"
		EXPECT_FALSE(isAgentAllowed(robotsTxt, "FooBot", "http://foo.bar/path/file-with-*.html"))
	})

	It("does not close a group on Crawl-delay and reports the specific value", func() {
		const robotsTxt = "User-agent: *\nCrawl-delay: 10\n\nUser-agent: FooBot\nCrawl-delay: 5\n"
		m := rep.NewMatcher()
		EXPECT_TRUE(m.OneAgentAllowed(robotsTxt, "FooBot", "http://example.com/"))
		Expect(m.CrawlDelay()).NotTo(BeNil())
		Expect(*m.CrawlDelay()).To(Equal(5.0))
	})

	It("parses Content-Signal and leaves unmentioned fields unset", func() {
		const robotsTxt = "User-agent: *\nContent-Signal: ai-train=no, search=yes\nDisallow:\n"
		m := rep.NewMatcher()
		EXPECT_TRUE(m.OneAgentAllowed(robotsTxt, "Googlebot", "http://example.com/"))
		cs := m.ContentSignal()
		Expect(cs).NotTo(BeNil())
		Expect(*cs.AITrain).To(BeFalse())
		Expect(*cs.Search).To(BeTrue())
		Expect(cs.AIInput).To(BeNil())
	})

	It("ignores the global group once a more specific agent group is seen", func() {
		const robotsTxt = "User-agent: *\nDisallow: /\n\nUser-agent: FooBot\nAllow: /\n"
		EXPECT_TRUE(isAgentAllowed(robotsTxt, "FooBot", "http://foo.bar/anything"))
		EXPECT_FALSE(isAgentAllowed(robotsTxt, "OtherBot", "http://foo.bar/anything"))
	})

	It("prefers the longer of two queried agents when both have a matching group", func() {
		const robotsTxt = "User-agent: Foo\nDisallow: /\n\nUser-agent: FooBot\nAllow: /\n"
		m := rep.NewMatcher()
		EXPECT_TRUE(m.Allowed(robotsTxt, []string{"Foo", "FooBot"}, "http://foo.bar/x"))
	})

	It("treats an empty specific group as allow-everything", func() {
		const robotsTxt = "User-agent: FooBot\n"
		EXPECT_TRUE(isAgentAllowed(robotsTxt, "FooBot", "http://foo.bar/x"))
	})

	It("applies the index.html-equivalent-to-slash convention", func() {
		const robotsTxt = "User-agent: FooBot\nDisallow: /\nAllow: /index.html$\n"
		EXPECT_TRUE(isAgentAllowed(robotsTxt, "FooBot", "http://foo.bar/"))
	})

	It("treats the first-value of a side-channel directive as authoritative", func() {
		const robotsTxt = "User-agent: FooBot\nRequest-rate: 5/10\nRequest-rate: 1/1\n"
		m := rep.NewMatcher()
		m.OneAgentAllowed(robotsTxt, "FooBot", "http://foo.bar/")
		rr := m.RequestRate()
		Expect(rr).NotTo(BeNil())
		Expect(rr.Requests).To(Equal(5))
		Expect(rr.Seconds).To(Equal(10))
	})

	It("drops a malformed Request-rate instead of storing it", func() {
		const robotsTxt = "User-agent: FooBot\nRequest-rate: 0/10\n"
		m := rep.NewMatcher()
		m.OneAgentAllowed(robotsTxt, "FooBot", "http://foo.bar/")
		Expect(m.RequestRate()).To(BeNil())
	})

	It("is idempotent across repeated calls on the same Matcher", func() {
		const robotsTxt = "User-agent: FooBot\nDisallow: /x/\n"
		m := rep.NewMatcher()
		first := m.OneAgentAllowed(robotsTxt, "FooBot", "http://foo.bar/x/y")
		second := m.OneAgentAllowed(robotsTxt, "FooBot", "http://foo.bar/x/y")
		Expect(first).To(Equal(second))
	})

	It("reports the Disallow line on an equal-priority Allow/Disallow tie", func() {
		const robotsTxt = "User-agent: FooBot\nAllow: /x\nDisallow: /x\n"
		m := rep.NewMatcher()
		allowed := m.OneAgentAllowed(robotsTxt, "FooBot", "http://foo.bar/x")
		EXPECT_TRUE(allowed) // ties favor Allow in the decision...
		Expect(m.MatchingLine()).To(Equal(3)) // ...but matching_line reports Disallow's line.
	})
})
