package domain

// Built-in verbs interpreted by the console itself.
const (
	BuiltinList = "ls"
	BuiltinCd   = "cd"
)

// Path syntax.
const (
	PathSeparator  = "/"
	ParentSegment  = ".."
	CurrentSegment = "."
)

// DefaultRoot is the root segment used when no configuration overrides it.
const DefaultRoot = "aws"

// Builtins returns the built-in verbs in the order they are offered for completion.
func Builtins() []string {
	return []string{BuiltinList, BuiltinCd}
}

// IsBuiltin reports whether verb is interpreted by the console rather than the tree.
func IsBuiltin(verb string) bool {
	return verb == BuiltinList || verb == BuiltinCd
}
