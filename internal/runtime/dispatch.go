package runtime

import (
	"github.com/aretw0/awsh/pkg/domain"
	"github.com/aretw0/awsh/pkg/namespace"
)

const (
	usageCd = "cd <path>"
	usageLs = "ls [path]"
)

// Dispatch classifies one input line against the Category at current.
//
// Resolution order:
//  1. empty line: no-op;
//  2. built-ins (ls, cd), even when the Category has a child of that name;
//  3. a child Category: same as "cd <verb>";
//  4. a child Action: an invocation with the full field list as arguments;
//  5. anything else: CommandNotFoundError.
func Dispatch(tree *namespace.Tree, current domain.Position, line string) (domain.Outcome, error) {
	cmd, ok := domain.ParseCommand(line)
	if !ok {
		return domain.Outcome{Kind: domain.OutcomeNone}, nil
	}

	category, ok := tree.Category(current)
	if !ok {
		return domain.Outcome{}, &domain.MalformedTreeError{Position: current.Clone()}
	}

	switch cmd.Verb() {
	case domain.BuiltinCd:
		return dispatchCd(tree, current, cmd)
	case domain.BuiltinList:
		return dispatchLs(tree, current, category, cmd)
	}

	child, ok := category.Child(cmd.Verb())
	if !ok {
		return domain.Outcome{}, &domain.CommandNotFoundError{Verb: cmd.Verb()}
	}

	if child.IsCategory() {
		to, err := Resolve(tree, current, child.Name())
		if err != nil {
			return domain.Outcome{}, err
		}
		return domain.Outcome{Kind: domain.OutcomeNavigate, To: to}, nil
	}

	return domain.Outcome{
		Kind:    domain.OutcomeInvoke,
		Path:    current.Child(child.Name()),
		Handler: child.Handler(),
		Args:    cmd.Fields,
	}, nil
}

func dispatchCd(tree *namespace.Tree, current domain.Position, cmd domain.Command) (domain.Outcome, error) {
	args := cmd.Args()
	if len(args) != 1 {
		return domain.Outcome{}, &domain.UsageError{Command: domain.BuiltinCd, Usage: usageCd}
	}
	to, err := Resolve(tree, current, args[0])
	if err != nil {
		return domain.Outcome{}, err
	}
	return domain.Outcome{Kind: domain.OutcomeNavigate, To: to}, nil
}

func dispatchLs(tree *namespace.Tree, current domain.Position, category *namespace.Node, cmd domain.Command) (domain.Outcome, error) {
	args := cmd.Args()
	listed := current
	switch len(args) {
	case 0:
	case 1:
		target, err := Resolve(tree, current, args[0])
		if err != nil {
			return domain.Outcome{}, err
		}
		node, _ := tree.Category(target)
		category, listed = node, target
	default:
		return domain.Outcome{}, &domain.UsageError{Command: domain.BuiltinList, Usage: usageLs}
	}

	children := category.Children()
	entries := make([]domain.Entry, len(children))
	for i, c := range children {
		entries[i] = c.Entry()
	}
	return domain.Outcome{Kind: domain.OutcomeList, Listed: listed.Clone(), Entries: entries}, nil
}
