package zapsink

import (
	"go.uber.org/zap"

	states "github.com/goliatone/go-states"
)

// Logger adapts dispatch events to a zap logger.
type Logger struct {
	Log *zap.Logger
}

// New returns a Logger writing to log; a nil log discards events.
func New(log *zap.Logger) Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return Logger{Log: log.Named("states")}
}

// LogDispatch implements states.DispatchLogger. Successful requests are
// logged at debug level, failures at warn level with the error attached.
func (l Logger) LogDispatch(event states.DispatchLogEvent) {
	if l.Log == nil {
		return
	}
	fields := []zap.Field{
		zap.String("entity", event.Entity),
		zap.String("operation", string(event.Operation)),
		zap.Duration("duration", event.Duration),
	}
	if event.State != "" {
		fields = append(fields, zap.String("state", event.State))
	}
	if event.Err != nil {
		l.Log.Warn("state request failed", append(fields, zap.Error(event.Err))...)
		return
	}
	l.Log.Debug("state request resolved", fields...)
}
