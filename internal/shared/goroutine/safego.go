// Package goroutine wraps goroutine launches with panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"gmao/internal/shared/logger"
)

// SafeGo runs fn on its own goroutine. A panic in fn is logged with its
// stack under the given name instead of taking the process down. Used for
// the long-lived background loops (HTTP listener, dispatch workers) where
// a crash must surface in the logs.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
