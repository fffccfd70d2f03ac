// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package collectionstest

import (
	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// A LogRecorder is a [logging.Logger] that keeps every entry at or above its
// level for inspection. Only the leveled methods record; everything else,
// With() included, is a no-op.
type LogRecorder struct {
	logging.NoLog
	level   logging.Level
	Records []*LogRecord
}

var _ logging.Logger = (*LogRecorder)(nil)

// NewLogRecorder returns an empty [LogRecorder] that drops entries below
// `level`.
func NewLogRecorder(level logging.Level) *LogRecorder {
	return &LogRecorder{level: level}
}

// A LogRecord is a single entry in a [LogRecorder].
type LogRecord struct {
	Level  logging.Level
	Msg    string
	Fields []zap.Field
}

// Ints returns the values of all [zap.Int] fields, keyed by name.
func (r *LogRecord) Ints() map[string]int64 {
	out := make(map[string]int64)
	for _, f := range r.Fields {
		if f.Type == zapcore.Int64Type {
			out[f.Key] = f.Integer
		}
	}
	return out
}

func (l *LogRecorder) record(lvl logging.Level, msg string, fields []zap.Field) {
	if lvl < l.level {
		return
	}
	l.Records = append(l.Records, &LogRecord{Level: lvl, Msg: msg, Fields: fields})
}

func (l *LogRecorder) Verbo(msg string, fs ...zap.Field) { l.record(logging.Verbo, msg, fs) }
func (l *LogRecorder) Trace(msg string, fs ...zap.Field) { l.record(logging.Trace, msg, fs) }
func (l *LogRecorder) Debug(msg string, fs ...zap.Field) { l.record(logging.Debug, msg, fs) }
func (l *LogRecorder) Info(msg string, fs ...zap.Field)  { l.record(logging.Info, msg, fs) }
func (l *LogRecorder) Warn(msg string, fs ...zap.Field)  { l.record(logging.Warn, msg, fs) }
func (l *LogRecorder) Error(msg string, fs ...zap.Field) { l.record(logging.Error, msg, fs) }
func (l *LogRecorder) Fatal(msg string, fs ...zap.Field) { l.record(logging.Fatal, msg, fs) }

// Filter returns the recorded logs for which `fn` returns true.
func (l *LogRecorder) Filter(fn func(*LogRecord) bool) []*LogRecord {
	var out []*LogRecord
	for _, r := range l.Records {
		if fn(r) {
			out = append(out, r)
		}
	}
	return out
}

// At returns all recorded logs at the specified [logging.Level].
func (l *LogRecorder) At(lvl logging.Level) []*LogRecord {
	return l.Filter(func(r *LogRecord) bool { return r.Level == lvl })
}
