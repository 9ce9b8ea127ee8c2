package rep

// RobotsParseHandler receives directive events from Parse, in the order
// they occur in the source. HandleRobotsStart fires once before the first
// line; HandleRobotsEnd fires once after the last. HandleLineMetadata fires
// for every logical line, directive or not, and is the only callback that
// sees non-directive lines.
type RobotsParseHandler interface {
	HandleRobotsStart()
	HandleRobotsEnd()

	HandleUserAgent(lineNum int, value string)
	HandleAllow(lineNum int, value string)
	HandleDisallow(lineNum int, value string)
	HandleSitemap(lineNum int, value string)
	HandleCrawlDelay(lineNum int, value float64)
	HandleRequestRate(lineNum int, value RequestRate)
	HandleContentSignal(lineNum int, value ContentSignal)
	HandleUnknownAction(lineNum int, action, value string)

	HandleLineMetadata(meta LineMeta)
}
