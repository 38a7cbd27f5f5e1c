package mongodb

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"fittrack/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/event"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func decodeLogLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var line map[string]any
		require.NoError(t, dec.Decode(&line))
		lines = append(lines, line)
	}

	return lines
}

func finishedEvent(name string, elapsed time.Duration) event.CommandFinishedEvent {
	return event.CommandFinishedEvent{
		CommandName:  name,
		DatabaseName: "fittrack",
		RequestID:    7,
		Duration:     elapsed,
	}
}

func TestCommandLogger_Succeeded(t *testing.T) {
	ctx := context.Background()

	t.Run("fast command is silent outside debug", func(t *testing.T) {
		var buf bytes.Buffer
		l := newCommandLogger(newBufferLogger(&buf), &config.Config{})

		l.commandMonitor().Succeeded(ctx, &event.CommandSucceededEvent{
			CommandFinishedEvent: finishedEvent("find", time.Millisecond),
		})
		assert.Zero(t, buf.Len())
	})

	t.Run("fast command logged in debug", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = true
		l := newCommandLogger(newBufferLogger(&buf), cfg)

		l.commandMonitor().Succeeded(ctx, &event.CommandSucceededEvent{
			CommandFinishedEvent: finishedEvent("find", time.Millisecond),
		})

		lines := decodeLogLines(t, &buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "DEBUG", lines[0]["level"])
		assert.Equal(t, "find", lines[0]["command"])
	})

	t.Run("slow command warns", func(t *testing.T) {
		var buf bytes.Buffer
		l := newCommandLogger(newBufferLogger(&buf), &config.Config{})

		l.commandMonitor().Succeeded(ctx, &event.CommandSucceededEvent{
			CommandFinishedEvent: finishedEvent("update", time.Second),
		})

		lines := decodeLogLines(t, &buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "WARN", lines[0]["level"])
		assert.Equal(t, "MongoDB slow command", lines[0]["msg"])
		assert.Equal(t, "fittrack", lines[0]["database"])
	})
}

func TestCommandLogger_Failed(t *testing.T) {
	var buf bytes.Buffer
	l := newCommandLogger(newBufferLogger(&buf), nil)

	l.commandMonitor().Failed(context.Background(), &event.CommandFailedEvent{
		CommandFinishedEvent: finishedEvent("insert", time.Millisecond),
		Failure:              "E11000 duplicate key error",
	})

	lines := decodeLogLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "ERROR", lines[0]["level"])
	assert.Equal(t, "insert", lines[0]["command"])
	assert.Equal(t, "E11000 duplicate key error", lines[0]["error"])
}

func TestCommandLogger_PoolEvent(t *testing.T) {
	var buf bytes.Buffer
	l := newCommandLogger(newBufferLogger(&buf), nil)
	monitor := l.poolMonitor()

	monitor.Event(&event.PoolEvent{Type: event.ConnectionCreated, Address: "localhost:27017"})
	assert.Zero(t, buf.Len())

	monitor.Event(&event.PoolEvent{Type: event.GetFailed, Address: "localhost:27017", Reason: event.ReasonTimedOut})

	lines := decodeLogLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "WARN", lines[0]["level"])
	assert.Equal(t, "localhost:27017", lines[0]["address"])
	assert.Equal(t, "timeout", lines[0]["reason"])
}

func TestCommandLogger_NilLogger(t *testing.T) {
	l := newCommandLogger(nil, nil)

	assert.NotPanics(t, func() {
		l.commandMonitor().Failed(context.Background(), &event.CommandFailedEvent{})
		l.poolMonitor().Event(&event.PoolEvent{Type: event.PoolCleared})
	})
}
