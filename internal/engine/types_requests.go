package engine

import "github.com/minjipark/renamer/internal/transform"

// ReplaceRequest represents a request to replace a substring in filenames.
type ReplaceRequest struct {
	// Dir is the target directory
	Dir string

	// From is the substring to replace
	From string

	// To is the replacement text
	To string

	// Display shows the plan before the confirmation prompt
	Display bool
}

// ReplacePair is one from/to pair of a multi-replace.
type ReplacePair struct {
	From string
	To   string
}

// ReplaceManyRequest represents a request to apply several replacements
// sequentially, each as its own plan/confirm/execute cycle.
type ReplaceManyRequest struct {
	// Dir is the target directory
	Dir string

	// Pairs is the ordered list of replacements
	Pairs []ReplacePair

	// Display shows each plan before its confirmation prompt
	Display bool
}

// PrefixRequest represents a request to prepend text to filenames.
type PrefixRequest struct {
	Dir     string
	Text    string
	Display bool
}

// SuffixRequest represents a request to insert text before extensions.
type SuffixRequest struct {
	Dir     string
	Text    string
	Display bool
}

// EnumerateRequest represents a request to number every filename.
type EnumerateRequest struct {
	Dir string

	// Start is the number given to the first entry
	Start int

	// Separator is inserted between the name and the number
	Separator string

	Display bool
}

// RebaseRequest represents a request to rename every file to a common
// base name plus a running number, keeping extensions.
type RebaseRequest struct {
	Dir     string
	Base    string
	Display bool
}

// FromContentRequest represents a request to derive new names from file
// contents via a pattern's first capture group.
type FromContentRequest struct {
	Dir string

	// Pattern is the search pattern applied to each file's content
	Pattern string

	// Position says where the matched text is joined onto the name
	Position transform.Position

	Display bool
}

// ShowRequest represents a request for the current directory listing.
type ShowRequest struct {
	Dir string
}
