package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// levelAliases maps alternate level spellings to the names zap understands
var levelAliases = map[string]string{
	"warning":  "warn",
	"critical": "fatal",
}

// New creates a production-ready structured logger configured for JSON output.
// The level is matched case-insensitively (debug, info, warn, warning, error,
// critical); an empty level means info.
func New(level string) (*zap.Logger, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	if name == "" {
		name = "info"
	}
	if alias, ok := levelAliases[name]; ok {
		name = alias
	}

	parsed, err := zapcore.ParseLevel(name)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	cfg.Encoding = "json"
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.StacktraceKey = "stacktrace"
	cfg.DisableStacktrace = false

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
