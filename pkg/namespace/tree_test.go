package namespace

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/awsh/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noop = domain.ActionFunc(func(context.Context, domain.ActionCall) error { return nil })

func sampleSpec() Spec {
	return Spec{
		Name: "aws",
		Children: []Spec{
			{Name: "s3", Children: []Spec{
				{Name: "buckets", Children: []Spec{
					{Name: "list", Handler: noop},
				}},
			}},
			{Name: "ec2", Children: []Spec{
				{Name: "instances", Children: []Spec{
					{Name: "describe", Handler: noop, Description: "Describe instances"},
					{Name: "reboot", Handler: noop},
				}},
				{Name: "volumes"},
			}},
			{Name: "whoami", Handler: noop},
		},
	}
}

func TestBuild_LookupKinds(t *testing.T) {
	tree, err := Build(sampleSpec())
	require.NoError(t, err)

	n, ok := tree.Lookup([]string{"aws"})
	require.True(t, ok)
	assert.True(t, n.IsCategory())

	n, ok = tree.Lookup([]string{"aws", "ec2", "instances", "describe"})
	require.True(t, ok)
	assert.True(t, n.IsAction())
	assert.Equal(t, "Describe instances", n.Description())
	assert.NotNil(t, n.Handler())

	_, ok = tree.Lookup([]string{"aws", "ec2", "bogus"})
	assert.False(t, ok)

	_, ok = tree.Lookup([]string{"gcp"})
	assert.False(t, ok, "first segment must be the root")

	_, ok = tree.Lookup(nil)
	assert.False(t, ok)

	_, ok = tree.Lookup([]string{"aws", "whoami", "deeper"})
	assert.False(t, ok, "actions have no children")
}

func TestBuild_ChildrenOfKeepsConstructionOrder(t *testing.T) {
	tree, err := Build(sampleSpec())
	require.NoError(t, err)

	names, err := tree.ChildrenOf([]string{"aws"})
	require.NoError(t, err)
	assert.Equal(t, []string{"s3", "ec2", "whoami"}, names)

	names, err = tree.ChildrenOf([]string{"aws", "ec2", "instances"})
	require.NoError(t, err)
	assert.Equal(t, []string{"describe", "reboot"}, names)

	names, err = tree.ChildrenOf([]string{"aws", "ec2", "volumes"})
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = tree.ChildrenOf([]string{"aws", "whoami"})
	assert.True(t, errors.Is(err, ErrNotCategory))
}

func TestBuild_DepthLimit(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want int
	}{
		{"root only", Spec{Name: "aws"}, 1},
		{"single action", Spec{Name: "aws", Children: []Spec{{Name: "a", Handler: noop}}}, 2},
		{"uneven branches", sampleSpec(), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := Build(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tree.DepthLimit())
		})
	}
}

func TestBuild_Rejects(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
	}{
		{"action root", Spec{Name: "aws", Handler: noop}},
		{"empty name", Spec{Name: "aws", Children: []Spec{{Name: ""}}}},
		{"slash", Spec{Name: "aws", Children: []Spec{{Name: "a/b"}}}},
		{"whitespace", Spec{Name: "aws", Children: []Spec{{Name: "a b"}}}},
		{"parent segment", Spec{Name: "aws", Children: []Spec{{Name: ".."}}}},
		{"dot", Spec{Name: "aws", Children: []Spec{{Name: "."}}}},
		{"duplicate", Spec{Name: "aws", Children: []Spec{{Name: "ec2"}, {Name: "ec2"}}}},
		{"action with children", Spec{Name: "aws", Children: []Spec{
			{Name: "run", Handler: noop, Children: []Spec{{Name: "x"}}},
		}}},
		{"builtin collision", Spec{Name: "aws", Children: []Spec{{Name: "ls", Handler: noop}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.spec)
			var buildErr *BuildError
			require.ErrorAs(t, err, &buildErr)
		})
	}
}

func TestBuild_ShadowPolicyAcceptsBuiltinNames(t *testing.T) {
	spec := Spec{Name: "aws", Children: []Spec{{Name: "cd", Handler: noop}}}

	tree, err := Build(spec, WithCollisionPolicy(ShadowBuiltins))
	require.NoError(t, err)
	assert.Equal(t, ShadowBuiltins, tree.Policy())

	n, ok := tree.Lookup([]string{"aws", "cd"})
	require.True(t, ok)
	assert.True(t, n.IsAction())
}

func TestParseCollisionPolicy(t *testing.T) {
	p, err := ParseCollisionPolicy("")
	require.NoError(t, err)
	assert.Equal(t, RejectBuiltinNames, p)

	p, err = ParseCollisionPolicy("Shadow")
	require.NoError(t, err)
	assert.Equal(t, ShadowBuiltins, p)

	_, err = ParseCollisionPolicy("merge")
	assert.Error(t, err)
}

func TestTree_WalkPreOrder(t *testing.T) {
	tree, err := Build(sampleSpec())
	require.NoError(t, err)

	var visited []string
	err = tree.Walk(func(path []string, n *Node) error {
		visited = append(visited, domain.Position(path).String())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"/aws",
		"/aws/s3",
		"/aws/s3/buckets",
		"/aws/s3/buckets/list",
		"/aws/ec2",
		"/aws/ec2/instances",
		"/aws/ec2/instances/describe",
		"/aws/ec2/instances/reboot",
		"/aws/ec2/volumes",
		"/aws/whoami",
	}, visited)

	assert.Len(t, tree.Actions(), 4)
}

func TestNode_ChildrenIsACopy(t *testing.T) {
	tree, err := Build(sampleSpec())
	require.NoError(t, err)

	children := tree.Root().Children()
	children[0] = nil

	names, err := tree.ChildrenOf([]string{"aws"})
	require.NoError(t, err)
	assert.Equal(t, "s3", names[0])
}
