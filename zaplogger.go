// zaplogger.go: zap adapter for the cyclefmt Logger interface
//
// Copyright (c) 2025 AGILira
// Series: an AGLIra fragment
// SPDX-License-Identifier: MPL-2.0

package cyclefmt

import "go.uber.org/zap"

// ZapLogger adapts a *zap.Logger to the Logger interface so pools can log
// through an application's existing zap setup. Fields are the usual
// alternating key/value pairs of zap's sugared API.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger wraps a zap logger for use as a pool Logger
func NewZapLogger(l *zap.Logger) *ZapLogger {
	return &ZapLogger{sugar: l.Sugar()}
}

// Debug logs a debug-level message with key/value fields
func (z *ZapLogger) Debug(msg string, fields ...interface{}) {
	z.sugar.Debugw(msg, fields...)
}

// Info logs an info-level message with key/value fields
func (z *ZapLogger) Info(msg string, fields ...interface{}) {
	z.sugar.Infow(msg, fields...)
}

// Warn logs a warning-level message with key/value fields
func (z *ZapLogger) Warn(msg string, fields ...interface{}) {
	z.sugar.Warnw(msg, fields...)
}

// Error logs an error-level message with key/value fields
func (z *ZapLogger) Error(msg string, fields ...interface{}) {
	z.sugar.Errorw(msg, fields...)
}
