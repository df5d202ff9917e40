/*
Package observability turns console lifecycle events into Prometheus metrics
and structured log records.

Both are plain domain.LifecycleHooks values and compose with domain.MergeHooks:

	metrics := observability.NewMetrics()
	hooks := domain.MergeHooks(metrics.Hooks(), observability.LogHooks(logger))
	console, err := awsh.New(path, awsh.WithLifecycleHooks(hooks))
*/
package observability
