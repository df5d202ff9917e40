/*
Package dsl provides a fluent Go API for declaring an awsh namespace.

It is the programmatic counterpart of the YAML namespace in the configuration
file: categories are opened with Category, leaves are bound with Action, and
Build validates the whole declaration into an immutable namespace.Tree.

Example usage:

	package main

	import (
		"github.com/aretw0/awsh/pkg/dsl"
	)

	func main() {
		b := dsl.New("aws")

		b.Category("ec2").
			Category("instances").
			Action("describe", describeInstances).
			Describe("List EC2 instances")

		b.Category("s3").
			Category("buckets").
			ActionFunc("list", listBuckets)

		tree, err := b.Build()
		// ... pass tree to awsh.New(awsh.WithTree(tree))
	}
*/
package dsl
