/*
Package awsh is an interactive, shell-like console for walking a hierarchical
namespace of cloud resources and invoking the actions at its leaves.

The namespace is a tree of categories (service, resource) and actions. An
operator moves through it with filesystem-style commands and runs an action
by typing its name:

	aws > cd ec2/instances
	aws/ec2/instances > ls
	describe
	aws/ec2/instances > describe --region eu-west-1

# Concept

The console separates three things:

  - The tree, an immutable value built once from YAML or the dsl package.
  - Resolution, pure functions that turn (tree, position, line) into an
    Outcome: navigate, list, invoke, or a typed error.
  - The session loop (package runner), which owns the current position and
    talks to a line source and an output sink.

Built-in commands (ls, cd) are always checked before tree entries.

# Usage

	console, err := awsh.New("~/.awsh.yaml")
	if err != nil {
		log.Fatal(err)
	}

	pos, _ := console.Resolve(console.Root(), "ec2/instances")
	outcome, err := console.Dispatch(pos, "describe")

See the runner package for the interactive loop and cmd/awsh for the CLI.
*/
package awsh
