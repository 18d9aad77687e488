// Package transform holds the pure name transformations.
//
// Every function here is deterministic and side-effect free: a new name
// is computed from an old name and rule parameters, nothing else. The
// extension of a name is everything from its first "." to the end, and
// the stem is everything before it.
package transform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNoExtension indicates an extension-aware transform was applied to a
// filename without a "." character.
var ErrNoExtension = errors.New("filename has no extension")

// Extension returns the substring from the first "." (inclusive) to the
// end of name. Returns ErrNoExtension if name contains no ".".
func Extension(name string) (string, error) {
	i := strings.Index(name, ".")
	if i < 0 {
		return "", fmt.Errorf("%w: %q", ErrNoExtension, name)
	}
	return name[i:], nil
}

// Stem returns the portion of name before its first ".".
// A name without a "." is its own stem.
func Stem(name string) string {
	i := strings.Index(name, ".")
	if i < 0 {
		return name
	}
	return name[:i]
}

// WithPrefix returns name with prefix prepended.
func WithPrefix(name, prefix string) string {
	return prefix + name
}

// WithSuffix returns stem + suffix + extension.
// Returns ErrNoExtension if name contains no ".".
func WithSuffix(name, suffix string) (string, error) {
	ext, err := Extension(name)
	if err != nil {
		return "", err
	}
	return Stem(name) + suffix + ext, nil
}

// ReplaceSubstring returns name with every non-overlapping occurrence of
// from replaced by to, scanning left to right.
func ReplaceSubstring(name, from, to string) string {
	return strings.ReplaceAll(name, from, to)
}

// Enumerated returns name + separator + (index + start). The number goes
// after the extension, matching the behavior of the tool this replaces;
// see the enum command help for the caveat.
func Enumerated(name string, index, start int, separator string) string {
	return name + separator + strconv.Itoa(index+start)
}

// ContentDerived joins matched text onto name at the given position:
// PositionEnd inserts it before the extension, PositionStart prepends it
// raw. PositionEnd returns ErrNoExtension if name contains no ".".
func ContentDerived(name, matched string, position Position) (string, error) {
	if position == PositionStart {
		return WithPrefix(name, matched), nil
	}
	return WithSuffix(name, matched)
}
