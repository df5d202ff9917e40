// Package identity shows who the console is talking to the cloud as.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aretw0/awsh/internal/presentation/tui"
	"github.com/aretw0/awsh/pkg/adapters/process"
	"github.com/aretw0/awsh/pkg/domain"
)

// PanelTitle heads the identity panel.
const PanelTitle = "Caller Identity"

// Caller is the decoded output of `aws sts get-caller-identity`.
type Caller struct {
	UserID  string `json:"UserId"`
	Account string `json:"Account"`
	Arn     string `json:"Arn"`
}

// Rows returns the panel rows in display order.
func (c Caller) Rows() [][2]string {
	return [][2]string{
		{"User ID", c.UserID},
		{"Account", c.Account},
		{"Caller ARN", c.Arn},
	}
}

// String is the plain three-line form.
func (c Caller) String() string {
	return fmt.Sprintf("User ID: %s\nAccount: %s\nCaller ARN: %s", c.UserID, c.Account, c.Arn)
}

// Provider looks up the caller identity.
type Provider interface {
	CallerIdentity(ctx context.Context) (Caller, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context) (Caller, error)

func (f ProviderFunc) CallerIdentity(ctx context.Context) (Caller, error) {
	return f(ctx)
}

// processName is the allow-list key used for the identity command.
const processName = "identity"

// CommandProvider runs an allow-listed command and decodes its JSON output.
type CommandProvider struct {
	runner *process.Runner
}

// NewCommandProvider registers command/args on a private process runner.
func NewCommandProvider(command string, args []string) *CommandProvider {
	r := process.NewRunner()
	r.Register(process.ProcessConfig{
		Name:    processName,
		Command: command,
		Args:    args,
	})
	return &CommandProvider{runner: r}
}

func (p *CommandProvider) CallerIdentity(ctx context.Context) (Caller, error) {
	out, err := p.runner.Capture(ctx, processName)
	if err != nil {
		return Caller{}, fmt.Errorf("failed to get caller identity: %w", err)
	}
	return Decode(out)
}

// ErrIncomplete is returned when the identity document lacks the account or ARN.
var ErrIncomplete = errors.New("caller identity is incomplete")

// Decode parses a get-caller-identity JSON document.
func Decode(data []byte) (Caller, error) {
	var c Caller
	if err := json.Unmarshal(data, &c); err != nil {
		return Caller{}, fmt.Errorf("failed to decode caller identity: %w", err)
	}
	if c.Account == "" || c.Arn == "" {
		return Caller{}, ErrIncomplete
	}
	return c, nil
}

// Render formats c as the identity panel. With a markdown renderer the panel
// is rendered through it; otherwise, or if rendering fails, it is plain text.
func Render(c Caller, markdown func(string) (string, error)) string {
	if markdown != nil {
		if out, err := markdown(tui.Panel(PanelTitle, c.Rows())); err == nil {
			return out
		}
	}
	return tui.PlainPanel(PanelTitle, c.Rows())
}

// HandlerName is the registry name of the in-process identity action.
// It shadows the process handler of the same name in the default config.
const HandlerName = "caller-identity"

// Handler is an action that prints the identity panel to the call's stdout.
func Handler(p Provider, markdown func(string) (string, error)) domain.ActionHandler {
	return domain.ActionFunc(func(ctx context.Context, call domain.ActionCall) error {
		c, err := p.CallerIdentity(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(call.Stdout, Render(c, markdown))
		return err
	})
}
