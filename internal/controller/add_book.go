package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/project/libraryapi/internal/log"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var AddBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_add_book_duration_ms",
	Help:    "Duration of AddBook in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(AddBookDuration)
}

func (i *implementation) AddBook(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	start := time.Now()

	defer func() {
		AddBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx := r.Context()
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	var req PostBookRequest
	if err := decodeBody(r.Body, &req); log.ErrorAddBook(i.logger, err, "Got unreadable request", traceID, "", "") {
		span.RecordError(err)
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if err := req.Validate(); log.ErrorAddBook(i.logger, err, "Got invalid request", traceID, req.Title, req.Author) {
		span.SetAttributes(attribute.String("book_title", req.Title))
		span.RecordError(err)

		var errs validation.Errors
		if errors.As(err, &errs) {
			writeValidation(w, errs)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	book, err := i.booksUseCase.AddBook(ctx, req.toEntity())
	if err != nil {
		i.convertErr(w, err)
		return
	}

	w.Header().Set("Location", "/books/"+strconv.FormatInt(book.ID, 10))
	writeJSON(w, http.StatusCreated, toDetails(book))
}
