package logger

import (
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/corecord/corecord-backend/internal/config"
)

func TestNewLoggerService_WithoutLicenseKey(t *testing.T) {
	service := NewLoggerService(config.DefaultObservabilityConfig())

	assert.Nil(t, service.GetApplication())
	service.Shutdown()
}

func TestNewLoggerWithService_Level(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	logger := NewLoggerWithService(cfg, nil)

	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	assert.Equal(t, tracelog.LogLevelDebug, GetPgxTraceLogLevel(zerolog.DebugLevel))
	assert.Equal(t, tracelog.LogLevelInfo, GetPgxTraceLogLevel(zerolog.InfoLevel))
	assert.Equal(t, tracelog.LogLevelWarn, GetPgxTraceLogLevel(zerolog.WarnLevel))
	assert.Equal(t, tracelog.LogLevelError, GetPgxTraceLogLevel(zerolog.ErrorLevel))
	assert.Equal(t, tracelog.LogLevelNone, GetPgxTraceLogLevel(zerolog.Disabled))
}

func TestWithTraceContext_NilTransaction(t *testing.T) {
	base := zerolog.Nop()

	assert.Equal(t, base, WithTraceContext(base, nil))
}
