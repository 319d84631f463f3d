package controller

import (
	"net/http"
	"time"

	"github.com/project/libraryapi/internal/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/trace"
)

var GetBooksDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_get_books_duration_ms",
	Help:    "Duration of GetBooks in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(GetBooksDuration)
}

func (i *implementation) GetBooks(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	start := time.Now()

	defer func() {
		GetBooksDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx := r.Context()
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	genre := r.URL.Query().Get("genre")
	list, err := i.booksUseCase.ListBooks(ctx, genre)

	if log.ErrorListBooks(i.logger, err, "Can not list books", traceID, genre) {
		i.convertErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, GetBooksResponse{
		Data:  lo.Map(list.Books, toSummary),
		Genre: list.Genre,
		Count: list.Count,
	})
}
