package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/awsh/pkg/domain"
)

// LogHooks writes every lifecycle event to logger at Info level.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNavigate: func(ctx context.Context, e *domain.NavigateEvent) {
			logger.InfoContext(ctx, "navigate", "from", e.From.String(), "to", e.To.String())
		},
		OnList: func(ctx context.Context, e *domain.ListEvent) {
			logger.InfoContext(ctx, "list", "position", e.Position.String(), "count", e.Count)
		},
		OnInvoke: func(ctx context.Context, e *domain.InvokeEvent) {
			logger.InfoContext(ctx, "invoke", "action", domain.Position(e.Path).String(), "args", e.Args)
		},
		OnInvokeReturn: func(ctx context.Context, e *domain.InvokeEvent) {
			attrs := []any{"action", domain.Position(e.Path).String(), "duration", e.Duration}
			if e.Err != nil {
				attrs = append(attrs, "err", e.Err)
			}
			logger.InfoContext(ctx, "invoke_return", attrs...)
		},
		OnCommandError: func(ctx context.Context, e *domain.CommandErrorEvent) {
			logger.InfoContext(ctx, "command_error", "position", e.Position.String(), "line", e.Line, "kind", ErrorKind(e.Err), "err", e.Err)
		},
	}
}
