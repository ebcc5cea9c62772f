package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// AccessLogger records the HTTP request lifecycle, DBLogger the
// repository layer. Both carry the request_id field so a request can be
// traced across files.
var (
	AccessLogger *zap.Logger
	DBLogger     *zap.Logger
)

const (
	accessLogPath = "simulator_access.log"
	dbLogPath     = "simulator_db.log"
)

func newFileLogger(path string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{path}
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return config.Build()
}

func InitLoggers() error {
	var err error
	if AccessLogger, err = newFileLogger(accessLogPath); err != nil {
		return err
	}
	if DBLogger, err = newFileLogger(dbLogPath); err != nil {
		return err
	}
	return nil
}

func SyncLoggers() error {
	if err := AccessLogger.Sync(); err != nil {
		return err
	}
	return DBLogger.Sync()
}
