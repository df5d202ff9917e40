/*
Package namespace implements the navigation tree browsed by the console.

A Tree is built once from a Spec and never mutated afterwards. Internal nodes
are Categories with ordered, named children; leaves are Actions bound to a
domain.ActionHandler. The kind of every node is an explicit tag, so callers
never infer "directory or action" from a path length.

	tree, err := namespace.Build(namespace.Spec{
		Name: "aws",
		Children: []namespace.Spec{
			{Name: "ec2", Children: []namespace.Spec{
				{Name: "instances", Children: []namespace.Spec{
					{Name: "describe", Handler: describe},
				}},
			}},
		},
	})
*/
package namespace
