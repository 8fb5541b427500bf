// Package logger holds the process-wide zap logger used by the keycast
// command. Library packages do not log.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger instance.
var Logger *zap.SugaredLogger

func init() {
	// No-op until Initialize so packages can log unconditionally.
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger writing to stderr. Stdout is
// reserved for command output.
func Initialize(jsonOutput, verbose bool) {
	Logger = New(os.Stderr, jsonOutput, verbose)
}

// New builds a logger writing to w: JSON lines for machine consumption,
// or a plain console format. Verbose enables debug entries.
func New(w io.Writer, jsonOutput, verbose bool) *zap.SugaredLogger {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	var enc zapcore.Encoder
	if jsonOutput {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		enc = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	return zap.New(core).Sugar()
}

// Sync flushes the global logger, ignoring errors from unsyncable
// terminals.
func Sync() {
	_ = Logger.Sync()
}
