package log

import (
	"github.com/project/libraryapi/pkg/logger"
	"go.uber.org/zap"
)

func InfoEnroll(l *zap.Logger, msg string, traceID, class, student string, id ...string) {
	if len(id) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("trace_id", traceID),
			zap.String("class", class),
			zap.String("student", student),
			zap.String("action", Enroll))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("enrollment_id", id[0]),
		zap.String("class", class),
		zap.String("student", student),
		zap.String("action", Enroll))
}

func ErrorEnroll(l *zap.Logger, err error, msg string, traceID string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Error(err),
		zap.String("action", Enroll))
}
