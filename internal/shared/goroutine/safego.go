// Package goroutine launches background work that must not take the process down.
package goroutine

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/cartonworks/stockline/internal/shared/logger"
)

// SafeGo runs fn in a goroutine and logs, rather than propagates, a panic.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer recoverAndLog(log, name)
		fn()
	}()
}

// Detached runs fn off the request path. The context passed to fn keeps the
// parent's values but not its cancellation, and is bounded by timeout.
func Detached(ctx context.Context, log logger.Interface, name string, timeout time.Duration, fn func(ctx context.Context)) {
	base := context.WithoutCancel(ctx)
	SafeGo(log, name, func() {
		runCtx, cancel := context.WithTimeout(base, timeout)
		defer cancel()
		fn(runCtx)
	})
}

func recoverAndLog(log logger.Interface, name string) {
	if r := recover(); r != nil {
		log.Errorw("goroutine panicked",
			"goroutine", name,
			"panic", fmt.Sprintf("%v", r),
			"stack", string(debug.Stack()),
		)
	}
}
