package transform

// Position says where derived text is joined onto a filename.
type Position string

// Position constants
const (
	PositionStart Position = "start"
	PositionEnd   Position = "end"
)

// Rule is one renaming transformation. A rule is immutable once
// constructed; the planner decides which filenames it applies to.
type Rule interface {
	// Kind returns the rule type: "replace", "prefix", "suffix",
	// "enumerate", "content-match", "rebase".
	Kind() string
}

// Replace substitutes every occurrence of From with To.
type Replace struct {
	From string
	To   string
}

// Prefix prepends Text to each filename.
type Prefix struct {
	Text string
}

// Suffix inserts Text between the stem and the extension.
type Suffix struct {
	Text string
}

// Enumerate appends Separator plus a running number, starting at Start.
type Enumerate struct {
	Start     int
	Separator string
}

// ContentMatch derives new text from file contents: the first capture
// group of Pattern, joined at Position.
type ContentMatch struct {
	Pattern  string
	Position Position
}

// Rebase renames every file to Base plus a running number, keeping the
// extension.
type Rebase struct {
	Base string
}

// Kind returns "replace".
func (Replace) Kind() string { return "replace" }

// Kind returns "prefix".
func (Prefix) Kind() string { return "prefix" }

// Kind returns "suffix".
func (Suffix) Kind() string { return "suffix" }

// Kind returns "enumerate".
func (Enumerate) Kind() string { return "enumerate" }

// Kind returns "content-match".
func (ContentMatch) Kind() string { return "content-match" }

// Kind returns "rebase".
func (Rebase) Kind() string { return "rebase" }
