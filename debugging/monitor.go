package debugging

import (
	"context"
	"time"

	"github.com/Invicton-Labs/go-concurrency"
	"github.com/Invicton-Labs/go-stackerr"

	"github.com/duyanh-y4n/Collections-C/collections"
	"github.com/duyanh-y4n/Collections-C/lock"
	"github.com/duyanh-y4n/Collections-C/log"
)

// StartListMonitor periodically re-runs CheckList against the given
// list and reports violations through the default logger. Each check
// holds a context-aware mutex so a cancelled monitor never wedges on a
// check in progress. The list must be quiescent (or externally locked)
// while a check runs; the monitor is intended for test harnesses and
// debugging sessions, not for lists under concurrent mutation.
//
// The returned context ends when the monitor stops.
func StartListMonitor[T any](ctx context.Context, name string, l collections.List[T], interval time.Duration) context.Context {
	mu := lock.NewCtxMutex()
	executor := concurrency.ContinuousFinal(
		ctx, concurrency.ContinuousFinalInput{
			Name: name,
			Func: func(ctx context.Context, metadata *concurrency.RoutineFunctionMetadata) (err stackerr.Error) {
				return lock.Do(ctx, mu, func() stackerr.Error {
					if cerr := CheckList(l); cerr != nil {
						log.Warnw("list invariant violation", "monitor", name, "error", cerr)
					}
					return nil
				})
			},
		}, interval)
	return executor.Ctx()
}
