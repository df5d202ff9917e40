package runtime

import (
	"context"
	"testing"

	"github.com/aretw0/awsh/pkg/domain"
	"github.com/aretw0/awsh/pkg/dsl"
	"github.com/aretw0/awsh/pkg/namespace"
	"github.com/stretchr/testify/require"
)

func noop(context.Context, domain.ActionCall) error { return nil }

// newTestTree builds:
//
//	aws
//	├── ec2
//	│   ├── instances
//	│   │   ├── describe (action)
//	│   │   └── reboot (action)
//	│   └── volumes
//	├── s3
//	│   └── buckets
//	│       └── list (action)
//	└── whoami (action)
func newTestTree(t *testing.T, opts ...namespace.BuildOption) *namespace.Tree {
	t.Helper()
	b := dsl.New("aws", opts...)
	ec2 := b.Category("ec2")
	ec2.Category("instances").
		ActionFunc("describe", noop).
		ActionFunc("reboot", noop)
	ec2.Category("volumes")
	b.Category("s3").Category("buckets").ActionFunc("list", noop)
	b.Root().ActionFunc("whoami", noop)

	tree, err := b.Build()
	require.NoError(t, err)
	return tree
}

func pos(segments ...string) domain.Position {
	return domain.Position(segments)
}
