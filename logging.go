package wobble

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Log is the zap-backed logger resource. Systems take *Log as an argument;
// code holding only an *App can go through App.Logger().
type Log struct {
	*zap.SugaredLogger
}

type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

func NewLog(cfg LogConfig) *Log {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
	}

	encoding := "json"
	if cfg.Development {
		encoding = "console"
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg := zap.Config{
		Level:            getLogLevel(cfg.Level),
		Development:      cfg.Development,
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := zapCfg.Build()
	if err != nil {
		panic(err)
	}
	return &Log{SugaredLogger: logger.Sugar()}
}

// NewNopLog discards everything; used in tests that install modules which
// expect a *Log resource.
func NewNopLog() *Log {
	return &Log{SugaredLogger: zap.NewNop().Sugar()}
}

func getLogLevel(level string) zap.AtomicLevel {
	switch level {
	case "debug":
		return zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case "info":
		return zap.NewAtomicLevelAt(zapcore.InfoLevel)
	case "warn":
		return zap.NewAtomicLevelAt(zapcore.WarnLevel)
	case "error":
		return zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	default:
		return zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
}

// LoggingModule installs the *Log resource.
type LoggingModule struct {
	Level       string
	Development bool
}

func (m LoggingModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewLog(LogConfig{Level: m.Level, Development: m.Development}))
}

type nopLogger struct{}

func NewNopLogger() Logger { return &nopLogger{} }

func (n *nopLogger) Debugf(format string, args ...any) {}
func (n *nopLogger) Infof(format string, args ...any)  {}
func (n *nopLogger) Warnf(format string, args ...any)  {}
func (n *nopLogger) Errorf(format string, args ...any) {}
