// Package async provides a small Future pattern for error-only background
// work, used for fire-and-forget persistence where the caller may or may not
// wait for completion.
//
// # Usage
//
//	future := async.Exec(ctx, payload, persistFn)
//
//	// ... other work ...
//
//	if err := future.Await(); err != nil {
//		log.Error("persist failed", "error", err)
//	}
//
// Await blocks until the function returns; AwaitWithTimeout gives up after a
// deadline with ErrTimeout while the work keeps running; IsComplete polls
// without blocking. Futures whose result nobody awaits complete and release
// their goroutine normally.
//
// # Concurrency Safety
//
// All operations are safe for concurrent use. If the context is cancelled
// before the function begins execution, the future completes immediately with
// the context's error.
package async
