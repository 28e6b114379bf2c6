// Package throng provides bounded-concurrency collection operations for
// I/O-bound work: ordered transforms, unordered iteration, and
// short-circuiting predicates and searches that cancel outstanding work as
// soon as the answer is determined.
//
// The model is cooperative goroutine concurrency under a counting
// semaphore, built for hiding I/O latency rather than CPU parallelism.
//
// # Basic Usage
//
// Wrap any slice in an adapter and call operations on it:
//
//	hosts := throng.New([]string{"a", "b", "c"}, throng.WithLimit(8))
//
//	statuses, err := throng.Map(ctx, hosts,
//	    func(ctx context.Context, host string) (int, error) {
//	        return ping(ctx, host)
//	    })
//
// Map preserves source order no matter how the concurrent tasks interleave.
//
// # Short-Circuiting Predicates
//
// Any, All, None, One, Include, Find and FindIndex stop the remaining work
// the moment the final answer is known:
//
//	reachable, err := hosts.Any(ctx, func(ctx context.Context, h string) (bool, error) {
//	    return canConnect(ctx, h)
//	})
//
// Find returns whichever satisfying element's test completed fastest, not
// necessarily the lowest-index one; FindSeq is the ordered alternative.
//
// # Configuration Tiers
//
// The concurrency limit resolves through three tiers, most specific wins:
// options passed to the operation call, options passed at adapter
// construction, and the process-wide default (SetDefault, initially 1024).
// Invalid limits fall through to the next tier instead of failing.
//
// # Errors and Cancellation
//
// The first genuine error from a unit of work cancels its siblings and is
// returned; an operation never silently returns a partial result. Work
// stopped by early termination is not an error: those tasks simply
// contribute nothing to the answer.
package throng
