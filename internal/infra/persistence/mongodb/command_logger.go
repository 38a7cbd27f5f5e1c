package mongodb

import (
	"context"
	"log/slog"
	"time"

	"fittrack/config"
	deliverycontext "fittrack/internal/delivery/context"

	"go.mongodb.org/mongo-driver/event"
)

const defaultSlowCommandThreshold = 200 * time.Millisecond

// commandLogger forwards driver command and pool events to slog.
type commandLogger struct {
	logger        *slog.Logger
	debug         bool
	slowThreshold time.Duration
}

func newCommandLogger(baseLogger *slog.Logger, cfg *config.Config) *commandLogger {
	return &commandLogger{
		logger:        baseLogger,
		debug:         cfg != nil && cfg.Env.Debug,
		slowThreshold: defaultSlowCommandThreshold,
	}
}

func (l *commandLogger) commandMonitor() *event.CommandMonitor {
	return &event.CommandMonitor{
		Succeeded: l.succeeded,
		Failed:    l.failed,
	}
}

func (l *commandLogger) poolMonitor() *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: l.poolEvent,
	}
}

func (l *commandLogger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}

func (l *commandLogger) succeeded(ctx context.Context, evt *event.CommandSucceededEvent) {
	if l.logger == nil {
		return
	}

	attrs := l.commandAttrs(&evt.CommandFinishedEvent)
	switch {
	case l.slowThreshold > 0 && evt.Duration > l.slowThreshold:
		attrs = append(attrs, slog.Duration("slowThreshold", l.slowThreshold))
		l.log(ctx).LogAttrs(ctx, slog.LevelWarn, "MongoDB slow command", attrs...)
	case l.debug:
		l.log(ctx).LogAttrs(ctx, slog.LevelDebug, "MongoDB command", attrs...)
	}
}

func (l *commandLogger) failed(ctx context.Context, evt *event.CommandFailedEvent) {
	if l.logger == nil {
		return
	}

	attrs := append(l.commandAttrs(&evt.CommandFinishedEvent), slog.String("error", evt.Failure))
	l.log(ctx).LogAttrs(ctx, slog.LevelError, "MongoDB command failed", attrs...)
}

func (l *commandLogger) commandAttrs(evt *event.CommandFinishedEvent) []slog.Attr {
	return []slog.Attr{
		slog.String("command", evt.CommandName),
		slog.String("database", evt.DatabaseName),
		slog.Duration("elapsed", evt.Duration),
		slog.Int64("driverRequestID", evt.RequestID),
	}
}

// poolEvent only reports events that point at connectivity trouble.
func (l *commandLogger) poolEvent(evt *event.PoolEvent) {
	if l.logger == nil {
		return
	}

	switch evt.Type {
	case event.GetFailed, event.PoolCleared:
		l.logger.LogAttrs(context.Background(), slog.LevelWarn, "MongoDB pool event",
			slog.String("type", evt.Type),
			slog.String("address", evt.Address),
			slog.String("reason", evt.Reason),
		)
	}
}
