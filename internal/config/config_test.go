package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/awsh/pkg/adapters/process"
	"github.com/aretw0/awsh/pkg/domain"
	"github.com/aretw0/awsh/pkg/namespace"
	"github.com/aretw0/awsh/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_BuildsAWSNamespace(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "aws", cfg.Root)
	assert.True(t, cfg.Identity.Enabled)

	tree, err := cfg.BuildTree(registry.NewRegistry(), process.NewRunner())
	require.NoError(t, err)

	names, err := tree.ChildrenOf([]string{"aws"})
	require.NoError(t, err)
	assert.Equal(t, []string{"ec2", "s3", "vpc", "route53", "ecr", "whoami"}, names)

	node, ok := tree.Lookup([]string{"aws", "ec2"})
	require.True(t, ok)
	assert.Equal(t, "Elastic Compute Cloud", node.Description())

	node, ok = tree.Lookup([]string{"aws", "whoami"})
	require.True(t, ok)
	assert.True(t, node.IsAction())
}

func TestLoad_MissingFileFallsBackToDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "aws", cfg.Root)
	assert.Empty(t, cfg.Path)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "awsh.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
root: cloud
confirm_actions: true
namespace:
  compute:
    list:
      command: echo
      args: [compute]
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cloud", cfg.Root)
	assert.True(t, cfg.ConfirmActions)
	assert.Equal(t, path, cfg.Path)
	// untouched keys keep their default
	assert.Equal(t, "reject", cfg.Collisions)

	tree, err := cfg.BuildTree(nil, process.NewRunner())
	require.NoError(t, err)
	names, err := tree.ChildrenOf([]string{"cloud"})
	require.NoError(t, err)
	assert.Equal(t, []string{"compute"}, names)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("root: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEntries_PreservesOrderAndKinds(t *testing.T) {
	cfg, err := Parse([]byte(`
namespace:
  zeta:
    description: last letter
    run:
      command: "true"
  alpha:
  mid:
    who:
      handler: named
      description: ask
`))
	require.NoError(t, err)

	entries, err := cfg.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "zeta", entries[0].Name)
	assert.Equal(t, "last letter", entries[0].Description)
	require.Len(t, entries[0].Children, 1)
	require.NotNil(t, entries[0].Children[0].Action)
	assert.Equal(t, "true", entries[0].Children[0].Action.Command)

	assert.Equal(t, "alpha", entries[1].Name)
	assert.Nil(t, entries[1].Action)
	assert.Empty(t, entries[1].Children)

	who := entries[2].Children[0]
	require.NotNil(t, who.Action)
	assert.Equal(t, "named", who.Action.Handler)
	assert.Equal(t, "ask", who.Description)
}

func TestEntries_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"scalar entry", "namespace:\n  ec2: yes\n"},
		{"sequence category", "namespace:\n  ec2: [a, b]\n"},
		{"command and handler", "namespace:\n  x:\n    command: echo\n    handler: h\n"},
		{"unknown action key", "namespace:\n  x:\n    command: echo\n    retries: 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			_, err = cfg.Entries()
			assert.Error(t, err)
		})
	}
}

func TestBuildTree_ResolvesHandlers(t *testing.T) {
	cfg, err := Parse([]byte(`
handlers:
  - name: proc
    command: echo
namespace:
  a:
    handler: fromRegistry
  b:
    handler: proc
`))
	require.NoError(t, err)

	reg := registry.NewRegistry()
	called := false
	reg.RegisterFunc("fromRegistry", func(ctx context.Context, call domain.ActionCall) error {
		called = true
		return nil
	})

	tree, err := cfg.BuildTree(reg, process.NewRunner())
	require.NoError(t, err)

	node, ok := tree.Lookup([]string{"aws", "a"})
	require.True(t, ok)
	require.NoError(t, node.Handler().Invoke(context.Background(), domain.ActionCall{}))
	assert.True(t, called)

	node, ok = tree.Lookup([]string{"aws", "b"})
	require.True(t, ok)
	assert.True(t, node.IsAction())
}

func TestBuildTree_UnknownHandler(t *testing.T) {
	cfg, err := Parse([]byte("namespace:\n  a:\n    handler: missing\n"))
	require.NoError(t, err)

	_, err = cfg.BuildTree(registry.NewRegistry(), process.NewRunner())
	assert.ErrorContains(t, err, "handler not found: missing")
}

func TestBuildTree_CollisionPolicy(t *testing.T) {
	doc := "namespace:\n  ls:\n    command: echo\n"

	cfg, err := Parse([]byte(doc))
	require.NoError(t, err)
	_, err = cfg.BuildTree(nil, process.NewRunner())
	var buildErr *namespace.BuildError
	assert.ErrorAs(t, err, &buildErr)

	cfg, err = Parse([]byte("collisions: shadow\n" + doc))
	require.NoError(t, err)
	_, err = cfg.BuildTree(nil, process.NewRunner())
	assert.NoError(t, err)

	cfg, err = Parse([]byte("collisions: sometimes\n" + doc))
	require.NoError(t, err)
	_, err = cfg.BuildTree(nil, process.NewRunner())
	assert.Error(t, err)
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvConfigPath, "/etc/awsh.yaml")
	assert.Equal(t, "/tmp/x.yaml", ResolvePath("/tmp/x.yaml"))
	assert.Equal(t, "/etc/awsh.yaml", ResolvePath(""))

	t.Setenv(EnvConfigPath, "")
	assert.Equal(t, DefaultFileName, filepath.Base(ResolvePath("")))
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".awsh_history"), ExpandHome("~/.awsh_history"))
	assert.Equal(t, "/abs/path", ExpandHome("/abs/path"))
	assert.Equal(t, "rel/~", ExpandHome("rel/~"))
}
