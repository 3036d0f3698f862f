package zapoutlet

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/ereport"
)

// Config is an explicit, code-first configuration for a zap-backed outlet.
type Config struct {
	Writer        io.Writer // default: os.Stdout
	MinLevel      ereport.Level
	Console       bool                  // zapcore.NewConsoleEncoder instead of JSON
	EncoderConfig zapcore.EncoderConfig // if zero, a sensible default is used
	Formatter     ereport.FieldFormatter
}

// NewFromConfig builds a zap logger from cfg and wraps it.
func NewFromConfig(cfg Config) *Outlet {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	// ereport's date_time field carries the authoritative timestamp.
	encCfg := cfg.EncoderConfig
	if encCfg.LevelKey == "" && encCfg.MessageKey == "" {
		encCfg = zapcore.EncoderConfig{
			TimeKey:        "",
			LevelKey:       "level",
			MessageKey:     "message",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		}
	}

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(toZapLevel(cfg.MinLevel)))
	zl := zap.New(core, zap.AddStacktrace(zapcore.FatalLevel+1))
	return New(zl, cfg.Formatter)
}
