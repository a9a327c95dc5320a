package test

import (
	"go.uber.org/fx"
)

// LifecycleRecorder collects hooks registered during a test so they
// can be driven by hand.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append records the hook without scheduling it.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub signals on Called whenever a component requests
// application shutdown.
type ShutdownerStub struct {
	Called chan struct{}
}

// Shutdown records the request; it never blocks the caller.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
