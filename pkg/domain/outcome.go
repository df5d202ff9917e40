package domain

// OutcomeKind classifies the result of dispatching one line.
type OutcomeKind int

const (
	// OutcomeNone is produced by empty input.
	OutcomeNone OutcomeKind = iota
	// OutcomeNavigate carries a new, already validated Position.
	OutcomeNavigate
	// OutcomeList carries the entries of a Category.
	OutcomeList
	// OutcomeInvoke carries an Action to run. Position does not change.
	OutcomeInvoke
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNone:
		return "none"
	case OutcomeNavigate:
		return "navigate"
	case OutcomeList:
		return "list"
	case OutcomeInvoke:
		return "invoke"
	}
	return "unknown"
}

// EntryKind tags a listed child.
type EntryKind string

const (
	EntryCategory EntryKind = "category"
	EntryAction   EntryKind = "action"
)

// Entry is one child of a Category as shown by ls.
type Entry struct {
	Name        string    `json:"name"`
	Kind        EntryKind `json:"kind"`
	Description string    `json:"description,omitempty"`
}

// Outcome is the result of a successful dispatch.
type Outcome struct {
	Kind OutcomeKind

	// To is set for OutcomeNavigate.
	To Position

	// Listed and Entries are set for OutcomeList.
	Listed  Position
	Entries []Entry

	// Path, Handler and Args are set for OutcomeInvoke.
	Path    []string
	Handler ActionHandler
	Args    []string
}
