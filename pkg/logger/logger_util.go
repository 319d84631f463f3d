package logger

import "go.uber.org/zap"

// CheckError logs msg when err is set and reports whether it was. A nil logger only reports.
func CheckError(err error, logger *zap.Logger, msg string, fields ...zap.Field) bool {
	if err != nil {
		if logger != nil {
			logger.Error(msg, fields...)
		}
		return true
	}
	return false
}

func MakeInfo(logger *zap.Logger, msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Info(msg, fields...)
	}
}

func MakeWarn(logger *zap.Logger, msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Warn(msg, fields...)
	}
}

// Pick returns l when enabled is set and nil otherwise, which silences a layer.
func Pick(l *zap.Logger, enabled bool) *zap.Logger {
	if enabled {
		return l
	}
	return nil
}
