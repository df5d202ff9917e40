package runner

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/awsh/pkg/domain"
)

// ActionInterceptor decides whether an action may run.
// Returning false skips the handler; an error is reported as a command error.
type ActionInterceptor func(ctx context.Context, call domain.ActionCall) (bool, error)

// MultiInterceptor chains interceptors; the first refusal wins.
func MultiInterceptor(interceptors ...ActionInterceptor) ActionInterceptor {
	return func(ctx context.Context, call domain.ActionCall) (bool, error) {
		for _, interceptor := range interceptors {
			allowed, err := interceptor(ctx, call)
			if err != nil {
				return false, err
			}
			if !allowed {
				return false, nil
			}
		}
		return true, nil
	}
}

// ConfirmationMiddleware asks the operator before every action, reading the
// answer from the same source as commands. Anything but y/yes declines,
// including Ctrl-C and end of input.
func ConfirmationMiddleware(source LineSource, sink OutputSink) ActionInterceptor {
	return func(ctx context.Context, call domain.ActionCall) (bool, error) {
		target := strings.Join(call.Path, domain.PathSeparator)
		if len(call.Args) > 1 {
			target += " " + strings.Join(call.Args[1:], " ")
		}
		sink.WriteStyled(fmt.Sprintf("Run %s?", target), StyleInfo)

		answer, err := source.ReadLine(ctx, "[y/N] ", "")
		if err != nil {
			return false, nil
		}

		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes", nil
	}
}

// AutoApproveMiddleware allows everything.
func AutoApproveMiddleware() ActionInterceptor {
	return func(ctx context.Context, call domain.ActionCall) (bool, error) {
		return true, nil
	}
}
