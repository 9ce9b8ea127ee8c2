package rep

// Directive is one recognized event the scanner emitted: its kind, source
// line, and value as the scanner passed it (Allow, Disallow and unknown
// action values already escaped by MaybeEscapePattern; User-agent and
// Sitemap values unescaped). UserAgent/Allow/Disallow/Sitemap store
// their value in Value; CrawlDelay/RequestRate/ContentSignal store their
// parsed form in the matching field instead, since those directives have no
// single string representation worth keeping around.
type Directive struct {
	Line  int
	Kind  KeyKind
	Value string

	UnknownKey string

	CrawlDelay    float64
	RequestRate   RequestRate
	ContentSignal ContentSignal
}

// LineReporter is a passive RobotsParseHandler: instead of deciding
// Allow/Disallow, it collects every line's LineMeta and every recognized
// Directive, in source order, for diagnostics and linting. It generalizes
// the single-purpose sitemap collector this package also exposes as
// Sitemaps.
type LineReporter struct {
	Lines      []LineMeta
	Directives []Directive
}

var _ RobotsParseHandler = (*LineReporter)(nil)

// Report runs Parse over body and returns a populated LineReporter.
func Report(body string) *LineReporter {
	r := &LineReporter{}
	Parse(body, r)
	return r
}

// Sitemaps returns the Sitemap directive values r has collected from the
// most recent Parse, in source order.
func (r *LineReporter) Sitemaps() []string {
	var sitemaps []string
	for _, d := range r.Directives {
		if d.Kind == Sitemap {
			sitemaps = append(sitemaps, d.Value)
		}
	}
	return sitemaps
}

func (r *LineReporter) HandleRobotsStart() {
	r.Lines = nil
	r.Directives = nil
}

func (r *LineReporter) HandleRobotsEnd() {}

func (r *LineReporter) HandleLineMetadata(meta LineMeta) {
	r.Lines = append(r.Lines, meta)
}

func (r *LineReporter) HandleUserAgent(lineNum int, value string) {
	r.Directives = append(r.Directives, Directive{Line: lineNum, Kind: UserAgent, Value: value})
}

func (r *LineReporter) HandleAllow(lineNum int, value string) {
	r.Directives = append(r.Directives, Directive{Line: lineNum, Kind: Allow, Value: value})
}

func (r *LineReporter) HandleDisallow(lineNum int, value string) {
	r.Directives = append(r.Directives, Directive{Line: lineNum, Kind: Disallow, Value: value})
}

func (r *LineReporter) HandleSitemap(lineNum int, value string) {
	r.Directives = append(r.Directives, Directive{Line: lineNum, Kind: Sitemap, Value: value})
}

func (r *LineReporter) HandleCrawlDelay(lineNum int, value float64) {
	r.Directives = append(r.Directives, Directive{Line: lineNum, Kind: CrawlDelay, CrawlDelay: value})
}

func (r *LineReporter) HandleRequestRate(lineNum int, value RequestRate) {
	r.Directives = append(r.Directives, Directive{Line: lineNum, Kind: RequestRate, RequestRate: value})
}

func (r *LineReporter) HandleContentSignal(lineNum int, value ContentSignal) {
	r.Directives = append(r.Directives, Directive{Line: lineNum, Kind: ContentSignal, ContentSignal: value})
}

func (r *LineReporter) HandleUnknownAction(lineNum int, action, value string) {
	r.Directives = append(r.Directives, Directive{Line: lineNum, Kind: Unknown, Value: value, UnknownKey: action})
}

// Sitemaps parses body and returns the Sitemap directive values found in
// it, in source order.
func Sitemaps(body string) []string {
	return Report(body).Sitemaps()
}
