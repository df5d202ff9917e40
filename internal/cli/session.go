package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/awsh"
	"github.com/aretw0/awsh/internal/config"
	"github.com/aretw0/awsh/internal/identity"
	"github.com/aretw0/awsh/internal/presentation/tui"
	httpadapter "github.com/aretw0/awsh/pkg/adapters/http"
	"github.com/aretw0/awsh/pkg/domain"
	"github.com/aretw0/awsh/pkg/observability"
	"github.com/aretw0/awsh/pkg/registry"
	"github.com/aretw0/awsh/pkg/runner"
)

// RunSession runs one interactive console session on stdin/stdout.
func RunSession(opts RunOptions) error {
	logger := createLogger(opts.Debug)

	cfgPath := config.ResolvePath(opts.ConfigPath)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	applyOverrides(cfg, opts)
	logger.Debug("config loaded", "path", cfgPath, "from_file", cfg.Path != "")

	interactive := !opts.Plain && isTerminal(os.Stdin, os.Stdout)

	var markdown func(string) (string, error)
	if interactive {
		tui.PrintBanner(os.Stdout)
		markdown = tui.NewRenderer()
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	provider := identity.NewCommandProvider(cfg.Identity.Command, cfg.Identity.Args)
	if cfg.Identity.Enabled {
		caller, err := provider.CallerIdentity(sigCtx)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, identity.Render(caller, markdown))
	}

	reg := registry.NewRegistry()
	reg.Register(identity.HandlerName, identity.Handler(provider, markdown))

	metrics := observability.NewMetrics()
	hooks := metrics.Hooks()
	if opts.Debug {
		hooks = domain.MergeHooks(hooks, observability.LogHooks(logger))
	}

	console, err := awsh.New(cfgPath,
		awsh.WithConfig(cfg),
		awsh.WithRegistry(reg),
		awsh.WithLogger(logger),
		awsh.WithLifecycleHooks(hooks),
	)
	if err != nil {
		return err
	}

	if opts.MetricsAddr != "" {
		handler := httpadapter.NewHandler(console.Tree(), metrics.Registry)
		go func() {
			if err := httpadapter.ListenAndServe(sigCtx, opts.MetricsAddr, handler, logger); err != nil {
				logger.Error("metrics server stopped", "err", err)
			}
		}()
	}

	source, sink, err := createIO(interactive, cfg.HistoryFile)
	if err != nil {
		return err
	}
	defer source.Close()

	r := runner.NewRunner(
		runner.WithLineSource(source),
		runner.WithOutputSink(sink),
		runner.WithLogger(logger),
		runner.WithConfirmation(cfg.ConfirmActions),
	)

	pos, runErr := r.Run(sigCtx, console)
	logger.Debug("session finished", "position", pos.String(), "err", runErr)

	if sigCtx.Signal() != nil {
		printSystemMessage(os.Stdout, "Terminated at '%s'.", pos.String())
	}
	return handleExecutionError(runErr)
}

func applyOverrides(cfg *config.Config, opts RunOptions) {
	if opts.NoIdentity {
		cfg.Identity.Enabled = false
	}
	if opts.Confirm {
		cfg.ConfirmActions = true
	}
	if opts.HistoryFile != "" {
		cfg.HistoryFile = opts.HistoryFile
	}
}

// createIO picks readline and colors on a terminal, plain text otherwise.
func createIO(interactive bool, historyFile string) (runner.LineSource, runner.OutputSink, error) {
	if !interactive {
		return runner.NewTextSource(os.Stdin, os.Stdout), runner.NewPlainSink(os.Stdout), nil
	}

	source, err := runner.NewReadlineSource(runner.ReadlineOptions{
		HistoryFile: config.ExpandHome(historyFile),
	})
	if err != nil {
		return nil, nil, err
	}
	return source, tui.NewPrinter(os.Stdout), nil
}
