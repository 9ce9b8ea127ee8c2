package rep

// LineMeta describes how the scanner interpreted one logical line, whether
// or not that line produced a directive event. It is emitted for every
// line, including blank and comment-only ones, so a diagnostic consumer
// (see LineReporter) can reconstruct the whole shape of a robots.txt file.
type LineMeta struct {
	LineNum int

	IsEmpty                 bool // line was blank (after stripping comments/whitespace)
	HasComment              bool // line contained a '#' and had text stripped from it
	IsComment               bool // line was nothing but a comment
	HasDirective            bool // a key/value pair was extracted and dispatched
	IsAcceptableTypo        bool // key matched via a typo-tolerant variant
	IsLineTooLong           bool // line exceeded maxLineLength and was truncated
	IsMissingColonSeparator bool // whitespace was accepted in place of ':'
}
