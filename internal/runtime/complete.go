package runtime

import (
	"strings"

	"github.com/aretw0/awsh/pkg/domain"
	"github.com/aretw0/awsh/pkg/namespace"
)

// Complete returns whole-word candidates for the last word of line.
// The first word completes to built-ins followed by the children of current;
// arguments of cd and ls complete to category paths.
func Complete(tree *namespace.Tree, current domain.Position, line string) []string {
	fields := strings.Fields(line)
	endsWithSpace := strings.HasSuffix(line, " ")

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		prefix := ""
		if len(fields) == 1 {
			prefix = fields[0]
		}
		return filterPrefix(verbs(tree, current), prefix)
	}

	switch fields[0] {
	case domain.BuiltinCd, domain.BuiltinList:
	default:
		return nil
	}

	word := ""
	if !endsWithSpace {
		word = fields[len(fields)-1]
	}
	return filterPrefix(pathCandidates(tree, current, word), word)
}

func verbs(tree *namespace.Tree, current domain.Position) []string {
	out := domain.Builtins()
	names, err := tree.ChildrenOf(current)
	if err != nil {
		return out
	}
	return append(out, names...)
}

// pathCandidates lists the sub-categories of the directory part of word,
// each rendered as a full word ending in "/".
func pathCandidates(tree *namespace.Tree, current domain.Position, word string) []string {
	dir := ""
	if i := strings.LastIndex(word, domain.PathSeparator); i >= 0 {
		dir = word[:i+1]
	}

	base := current
	if dir != "" {
		resolved, err := Resolve(tree, current, dir)
		if err != nil {
			return nil
		}
		base = resolved
	}

	children, err := tree.Children(base)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(children)+1)
	if !base.IsRoot() {
		out = append(out, dir+domain.ParentSegment+domain.PathSeparator)
	}
	for _, c := range children {
		if c.IsCategory() {
			out = append(out, dir+c.Name()+domain.PathSeparator)
		}
	}
	return out
}

func filterPrefix(candidates []string, prefix string) []string {
	if prefix == "" {
		return candidates
	}
	out := candidates[:0:0]
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}
