package controller

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRemoveBook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		target       string
		id           int64
		useCaseErr   error
		callUseCase  bool
		codeResponse int
	}{
		{name: "Remove existing book",
			target:       "/books/2",
			id:           2,
			callUseCase:  true,
			codeResponse: http.StatusNoContent},

		{name: "Remove unknown book is still no content",
			target:       "/books/4242",
			id:           4242,
			callUseCase:  true,
			codeResponse: http.StatusNoContent},

		{name: "Non integer id",
			target:       "/books/2.5",
			codeResponse: http.StatusNotFound},

		{name: "Internal error",
			target:       "/books/2",
			id:           2,
			useCaseErr:   errInternal,
			callUseCase:  true,
			codeResponse: http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			mockBooksUseCase, h := InitBooksTest(t)
			if test.callUseCase {
				mockBooksUseCase.EXPECT().RemoveBook(gomock.Any(), test.id).Return(test.useCaseErr)
			}

			rec := doRequest(h, http.MethodDelete, test.target, "")
			require.Equal(t, test.codeResponse, rec.Code)
		})
	}
}
