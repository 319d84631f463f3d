package log

import (
	"github.com/project/libraryapi/pkg/logger"
	"go.uber.org/zap"
)

func InfoStatus(l *zap.Logger, msg string, traceID, endpoint string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("endpoint", endpoint),
		zap.String("action", Status))
}

func WarnStatus(l *zap.Logger, msg string, traceID, endpoint string) {
	logger.MakeWarn(l, msg,
		zap.String("trace_id", traceID),
		zap.String("endpoint", endpoint),
		zap.String("action", Status))
}
