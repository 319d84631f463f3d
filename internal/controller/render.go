package controller

import (
	"context"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	gateway "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	jsoniter "github.com/json-iterator/go"
	"github.com/project/libraryapi/internal/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	contentType     = "application/json; charset=utf-8"
	msgNoBook       = "No book with that Id!"
	msgInternal     = "internal server error"
	msgInvalidBody  = "request body is not valid JSON"
	msgInvalidInput = "One or more validation errors occurred."
)

type (
	errorResponse struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}

	validationResponse struct {
		Message string            `json:"message"`
		Errors  validation.Errors `json:"errors"`
	}
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Code: code, Message: msg})
}

func writeValidation(w http.ResponseWriter, errs validation.Errors) {
	writeJSON(w, http.StatusBadRequest, validationResponse{Message: msgInvalidInput, Errors: errs})
}

func decodeBody(body io.Reader, v any) error {
	return json.NewDecoder(body).Decode(v)
}

// convertErr maps a use case error onto the HTTP response.
func (i *implementation) convertErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrBookNotFound):
		writeError(w, http.StatusNotFound, msgNoBook)
	case errors.Is(err, entity.ErrInvalidBook):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}

func routingErrorHandler(
	_ context.Context,
	_ *gateway.ServeMux,
	_ gateway.Marshaler,
	w http.ResponseWriter,
	_ *http.Request,
	httpStatus int,
) {
	writeError(w, httpStatus, http.StatusText(httpStatus))
}

func routeNotMatched(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}
