package rep_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aldermoss/rep"
)

func TestKeyParse(t *testing.T) {
	cases := []struct {
		name     string
		key      string
		wantKind rep.KeyKind
		wantTypo bool
	}{
		{"user-agent canonical", "user-agent", rep.UserAgent, false},
		{"user-agent is case-insensitive", "User-Agent", rep.UserAgent, false},
		{"user-agent prefix match", "user-agent-extended", rep.UserAgent, false},
		{"useragent typo", "useragent", rep.UserAgent, true},
		{"user agent typo", "user agent", rep.UserAgent, true},
		{"allow canonical", "allow", rep.Allow, false},
		{"disallow canonical", "disallow", rep.Disallow, false},
		{"dissallow typo", "dissallow", rep.Disallow, true},
		{"disalow typo", "disalow", rep.Disallow, true},
		{"sitemap canonical", "sitemap", rep.Sitemap, false},
		{"site-map variant", "site-map", rep.Sitemap, false},
		{"crawl-delay canonical", "crawl-delay", rep.CrawlDelay, false},
		{"crawldelay typo", "crawldelay", rep.CrawlDelay, true},
		{"request-rate canonical", "request-rate", rep.RequestRate, false},
		{"content-signal canonical", "content-signal", rep.ContentSignal, false},
		{"contentsignal typo", "contentsignal", rep.ContentSignal, true},
		{"unrecognized key", "x-custom-directive", rep.Unknown, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var k rep.Key
			k.Parse(tc.key)
			assert.Equal(t, tc.wantKind, k.Kind())
			assert.Equal(t, tc.wantTypo, k.IsTypo())
			if tc.wantKind == rep.Unknown {
				assert.Equal(t, tc.key, k.UnknownText())
			}
		})
	}
}

func TestKeyParseDisallowsTyposWhenDisabled(t *testing.T) {
	original := rep.AllowFrequentTypos
	defer func() { rep.AllowFrequentTypos = original }()

	rep.AllowFrequentTypos = false
	var k rep.Key
	k.Parse("dissallow")
	assert.Equal(t, rep.Unknown, k.Kind())
}

func TestUnknownTextPanicsOnRecognizedKey(t *testing.T) {
	var k rep.Key
	k.Parse("allow")
	assert.Panics(t, func() { k.UnknownText() })
}
