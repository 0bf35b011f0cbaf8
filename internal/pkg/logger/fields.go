package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field is a structured log field
type Field = zap.Field

// Field constructors, re-exported so callers do not import zap directly
func String(key, value string) Field              { return zap.String(key, value) }
func Int(key string, value int) Field             { return zap.Int(key, value) }
func Int64(key string, value int64) Field         { return zap.Int64(key, value) }
func Float64(key string, value float64) Field     { return zap.Float64(key, value) }
func Bool(key string, value bool) Field           { return zap.Bool(key, value) }
func Any(key string, value interface{}) Field     { return zap.Any(key, value) }
func Duration(key string, d time.Duration) Field  { return zap.Duration(key, d) }
func Time(key string, t time.Time) Field          { return zap.Time(key, t) }
func Strings(key string, values []string) Field   { return zap.Strings(key, values) }
func ErrorField(err error) Field                  { return zap.Error(err) }
