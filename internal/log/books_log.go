package log

import (
	"github.com/project/libraryapi/pkg/logger"
	"go.uber.org/zap"
)

func InfoListBooks(l *zap.Logger, msg string, traceID, genre string, count ...int) {
	if len(count) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("trace_id", traceID),
			zap.String("genre", genre),
			zap.String("action", ListBooks))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.String("genre", genre),
		zap.Int("count", count[0]),
		zap.String("action", ListBooks))
}

func ErrorListBooks(l *zap.Logger, err error, msg string, traceID, genre string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("genre", genre),
		zap.Error(err),
		zap.String("action", ListBooks))
}

func InfoGetBook(l *zap.Logger, msg string, traceID string, bookID int64) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.String("action", GetBook))
}

func ErrorGetBook(l *zap.Logger, err error, msg string, traceID string, bookID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.Error(err),
		zap.String("action", GetBook))
}

func InfoAddBook(l *zap.Logger, msg string, traceID, title, author string, id ...int64) {
	if len(id) == 0 {
		logger.MakeInfo(l, msg,
			zap.String("trace_id", traceID),
			zap.String("book_title", title),
			zap.String("book_author", author),
			zap.String("action", AddBook))
		return
	}
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", id[0]),
		zap.String("book_title", title),
		zap.String("book_author", author),
		zap.String("action", AddBook))
}

func ErrorAddBook(l *zap.Logger, err error, msg string, traceID, title, author string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.String("book_title", title),
		zap.String("book_author", author),
		zap.Error(err),
		zap.String("action", AddBook))
}

func InfoUpdateBookGenre(l *zap.Logger, msg string, traceID string, bookID int64, genre string) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.String("genre", genre),
		zap.String("action", UpdateBookGenre))
}

func ErrorUpdateBookGenre(l *zap.Logger, err error, msg string, traceID string, bookID int64, genre string) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.String("genre", genre),
		zap.Error(err),
		zap.String("action", UpdateBookGenre))
}

func InfoRemoveBook(l *zap.Logger, msg string, traceID string, bookID int64) {
	logger.MakeInfo(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.String("action", RemoveBook))
}

func WarnRemoveBook(l *zap.Logger, msg string, traceID string, bookID int64) {
	logger.MakeWarn(l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.String("action", RemoveBook))
}

func ErrorRemoveBook(l *zap.Logger, err error, msg string, traceID string, bookID int64) bool {
	return logger.CheckError(err, l, msg,
		zap.String("trace_id", traceID),
		zap.Int64("book_id", bookID),
		zap.Error(err),
		zap.String("action", RemoveBook))
}
