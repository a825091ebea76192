// Package async provides a small future type for fork-join concurrency.
//
// It exists so callers that fan out independent, short-lived work — like
// validating several request fields at once — can collect typed results
// without hand-rolling channels:
//
//	f := async.Go(ctx, func(ctx context.Context) (string, error) { ... })
//	results, err := async.All(f1, f2, f3)
package async
