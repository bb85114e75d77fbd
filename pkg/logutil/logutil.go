// Copyright 2022 The Vexflow Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logutil holds the process-global zap logger and thin helpers
// around it.
package logutil

import (
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig configures the global logger. An empty Filename logs to
// stderr; otherwise lumberjack rotates the target file.
type LogConfig struct {
	Level    string `toml:"level"`
	Format   string `toml:"format"`
	Filename string `toml:"filename"`

	MaxSize    int `toml:"max-size"`
	MaxDays    int `toml:"max-days"`
	MaxBackups int `toml:"max-backups"`
}

var (
	globalLogger atomic.Value // *zap.Logger
	setupOnce    sync.Once
)

// SetupLogger replaces the global logger according to cfg. Safe to call
// once at startup; later calls win over the lazy default.
func SetupLogger(cfg LogConfig) error {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return err
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if cfg.Format == "json" {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	var sink zapcore.WriteSyncer
	if cfg.Filename == "" {
		sink = zapcore.Lock(os.Stderr)
	} else {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxAge:     cfg.MaxDays,
			MaxBackups: cfg.MaxBackups,
		})
	}

	logger := zap.New(zapcore.NewCore(enc, sink, level), zap.AddCaller(), zap.AddCallerSkip(1))
	globalLogger.Store(logger)
	return nil
}

// GetGlobalLogger returns the configured logger, installing a default
// stderr logger on first use.
func GetGlobalLogger() *zap.Logger {
	if l, ok := globalLogger.Load().(*zap.Logger); ok {
		return l
	}
	setupOnce.Do(func() {
		if _, ok := globalLogger.Load().(*zap.Logger); !ok {
			_ = SetupLogger(LogConfig{})
		}
	})
	return globalLogger.Load().(*zap.Logger)
}

func Debug(msg string, fields ...zap.Field) {
	GetGlobalLogger().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	GetGlobalLogger().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	GetGlobalLogger().Error(msg, fields...)
}

func Debugf(msg string, args ...any) {
	GetGlobalLogger().Sugar().Debugf(msg, args...)
}

func Infof(msg string, args ...any) {
	GetGlobalLogger().Sugar().Infof(msg, args...)
}

func Warnf(msg string, args ...any) {
	GetGlobalLogger().Sugar().Warnf(msg, args...)
}

func Errorf(msg string, args ...any) {
	GetGlobalLogger().Sugar().Errorf(msg, args...)
}

func Fatalf(msg string, args ...any) {
	GetGlobalLogger().Sugar().Fatalf(msg, args...)
}
