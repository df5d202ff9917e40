package domain

import "strings"

// Position is a non-empty path of segment names from the root to a Category.
// The first segment is always the root name.
type Position []string

// RootPosition returns the initial Position for a tree rooted at name.
func RootPosition(name string) Position {
	return Position{name}
}

// Clone returns an independent copy.
func (p Position) Clone() Position {
	out := make(Position, len(p))
	copy(out, p)
	return out
}

// Depth is the number of segments, root included.
func (p Position) Depth() int {
	return len(p)
}

// IsRoot reports whether p points at the root Category.
func (p Position) IsRoot() bool {
	return len(p) == 1
}

// Equal compares two positions segment by segment.
func (p Position) Equal(other Position) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Child returns a new Position with name appended.
func (p Position) Child(name string) Position {
	out := make(Position, len(p), len(p)+1)
	copy(out, p)
	return append(out, name)
}

// String renders the position as a slash-separated path, e.g. "/aws/ec2".
func (p Position) String() string {
	return PathSeparator + strings.Join(p, PathSeparator)
}

// Prompt renders the position the way the console shows it before the cursor.
func (p Position) Prompt() string {
	return strings.Join(p, PathSeparator) + " > "
}
