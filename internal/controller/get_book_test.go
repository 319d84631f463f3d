package controller

import (
	"context"
	"net/http"
	"testing"

	"github.com/project/libraryapi/internal/entity"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetBook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		target       string
		id           int64
		callUseCase  bool
		codeResponse int
	}{
		{name: "Valid getting book",
			target:       "/books/1",
			id:           1,
			callUseCase:  true,
			codeResponse: http.StatusOK},

		{name: "Unknown book",
			target:       "/books/42",
			id:           42,
			callUseCase:  true,
			codeResponse: http.StatusNotFound},

		{name: "Negative id is looked up and not found",
			target:       "/books/-3",
			id:           -3,
			callUseCase:  true,
			codeResponse: http.StatusNotFound},

		{name: "Non integer id does not match the route",
			target:       "/books/abc",
			codeResponse: http.StatusNotFound},

		{name: "Internal error",
			target:       "/books/1",
			id:           1,
			callUseCase:  true,
			codeResponse: http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			mockBooksUseCase, h := InitBooksTest(t)
			code := test.codeResponse

			if test.callUseCase {
				mockBooksUseCase.EXPECT().GetBook(gomock.Any(), test.id).DoAndReturn(func(_ context.Context, _ int64) (entity.Book, error) {
					if code != http.StatusOK {
						return entity.Book{}, convertBookCodeToError(code)
					}
					return walden, nil
				})
			}

			rec := doRequest(h, http.MethodGet, test.target, "")
			require.Equal(t, code, rec.Code)
			if code != http.StatusOK {
				resp := decodeResponse[errorResponse](t, rec)
				require.Equal(t, code, resp.Code)
				return
			}

			require.Equal(t, GetBookDetailsResponse{
				ID:            1,
				Title:         "Walden",
				Author:        "Threau",
				Genre:         "Philosophy",
				NumberOfPages: 322,
			}, decodeResponse[GetBookDetailsResponse](t, rec))
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()

	_, h := InitBooksTest(t)
	rec := doRequest(h, http.MethodGet, "/magazines", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, http.StatusNotFound, decodeResponse[errorResponse](t, rec).Code)
}
