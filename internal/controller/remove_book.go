package controller

import (
	"net/http"
	"time"

	"github.com/project/libraryapi/internal/log"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

var RemoveBookDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_remove_book_duration_ms",
	Help:    "Duration of RemoveBook in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(RemoveBookDuration)
}

// RemoveBook answers 204 whether or not the book was in inventory.
func (i *implementation) RemoveBook(w http.ResponseWriter, r *http.Request, params map[string]string) {
	start := time.Now()

	defer func() {
		RemoveBookDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	id, err := parseBookID(params)
	if err != nil {
		routeNotMatched(w)
		return
	}

	ctx := r.Context()
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	err = i.booksUseCase.RemoveBook(ctx, id)
	if log.ErrorRemoveBook(i.logger, err, "Can not remove book", traceID, id) {
		span.RecordError(err)
		i.convertErr(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
