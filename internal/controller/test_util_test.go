package controller

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/project/libraryapi/internal/controller/mocks"
	"github.com/project/libraryapi/internal/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var (
	errInternal  = errors.New("internal error")
	tooLongTitle = strings.Repeat("Too long name", 40)
	fixedNow     = time.Date(2020, time.June, 15, 10, 30, 0, 0, time.UTC)
)

var (
	walden        = entity.Book{ID: 1, Title: "Walden", Author: "Threau", Genre: "Philosophy", NumberOfPages: 322, InInventory: true}
	rhythmScience = entity.Book{ID: 2, Title: "Rhythm Science", Author: "DJ Spooky That Subliminal Kid", Genre: "Music", NumberOfPages: 180, InInventory: true}
	nature        = entity.Book{ID: 3, Title: "Nature", Author: "Emerson", Genre: "Philosophy", NumberOfPages: 182, InInventory: true}
)

func newHandler(t *testing.T, booksUseCase BooksUseCase, enrollmentUseCase EnrollmentUseCase) http.Handler {
	t.Helper()
	logger, err := zap.NewProduction()
	if err != nil {
		t.Fatal("assertion error: " + err.Error())
	}
	return newLoggedHandler(t, logger, booksUseCase, enrollmentUseCase)
}

func newLoggedHandler(t *testing.T, logger *zap.Logger, booksUseCase BooksUseCase, enrollmentUseCase EnrollmentUseCase) http.Handler {
	t.Helper()
	service := New(logger, booksUseCase, enrollmentUseCase)
	service.now = func() time.Time { return fixedNow }

	handler, err := service.Handler()
	require.NoError(t, err)
	return handler
}

func InitBooksTest(t *testing.T) (*mocks.MockBooksUseCase, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	booksUseCase := mocks.NewMockBooksUseCase(ctrl)
	return booksUseCase, newHandler(t, booksUseCase, nil)
}

func InitEnrollmentTest(t *testing.T) (*mocks.MockEnrollmentUseCase, http.Handler) {
	t.Helper()
	ctrl := gomock.NewController(t)
	enrollmentUseCase := mocks.NewMockEnrollmentUseCase(ctrl)
	return enrollmentUseCase, newHandler(t, nil, enrollmentUseCase)
}

// InitObservedBooksTest records every controller log entry.
func InitObservedBooksTest(t *testing.T) (*mocks.MockBooksUseCase, http.Handler, *observer.ObservedLogs) {
	t.Helper()
	ctrl := gomock.NewController(t)
	booksUseCase := mocks.NewMockBooksUseCase(ctrl)
	core, logs := observer.New(zapcore.InfoLevel)
	return booksUseCase, newLoggedHandler(t, zap.New(core), booksUseCase, nil), logs
}

func requireLogged(t *testing.T, logs *observer.ObservedLogs, level zapcore.Level, action string) {
	t.Helper()
	entries := logs.FilterField(zap.String("action", action)).All()
	require.NotEmpty(t, entries, "no %s entry", action)
	require.Equal(t, level, entries[0].Level)
}

func doRequest(h http.Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeResponse[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func convertBookCodeToError(code int) error {
	switch code {
	case http.StatusNotFound:
		return entity.ErrBookNotFound
	case http.StatusBadRequest:
		return entity.ErrInvalidBook
	case http.StatusInternalServerError:
		return errInternal
	default:
		return nil
	}
}
