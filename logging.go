package states

import "time"

// DispatchLogEvent is emitted once per resolver request, after the answer
// (or the failure) is known. State is empty for whole-entity requests such
// as Verify and for accessor names that failed to parse.
type DispatchLogEvent struct {
	Entity    string
	State     string
	Operation Operation
	Duration  time.Duration
	Err       error
}

// DispatchLogger receives one event per resolver request. Calls happen on the
// caller's goroutine, so implementations shared between goroutines must be
// safe for concurrent use.
type DispatchLogger interface {
	LogDispatch(DispatchLogEvent)
}

// DispatchLoggerFunc lets a plain function observe requests.
type DispatchLoggerFunc func(DispatchLogEvent)

func (f DispatchLoggerFunc) LogDispatch(event DispatchLogEvent) {
	if f != nil {
		f(event)
	}
}

type noopDispatchLogger struct{}

func (noopDispatchLogger) LogDispatch(DispatchLogEvent) {}

// WithDispatchLogger routes request events to logger; pkg/zapsink adapts them
// to zap. Passing nil turns event delivery off again.
func WithDispatchLogger(logger DispatchLogger) Option {
	return func(cfg *resolverConfig) {
		if logger == nil {
			cfg.logger = noopDispatchLogger{}
			return
		}
		cfg.logger = logger
	}
}
