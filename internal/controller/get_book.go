package controller

import (
	"net/http"
	"time"

	"github.com/project/libraryapi/internal/log"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

var GetBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_get_book_duration_ms",
	Help:    "Duration of GetBook in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(GetBookDuration)
}

func (i *implementation) GetBook(w http.ResponseWriter, r *http.Request, params map[string]string) {
	start := time.Now()

	defer func() {
		GetBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	id, err := parseBookID(params)
	if err != nil {
		routeNotMatched(w)
		return
	}

	ctx := r.Context()
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	book, err := i.booksUseCase.GetBook(ctx, id)
	if log.ErrorGetBook(i.logger, err, "Can not get book", traceID, id) {
		span.RecordError(err)
		i.convertErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDetails(book))
}
