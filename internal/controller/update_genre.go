package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/project/libraryapi/internal/log"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

var UpdateGenreDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_update_genre_duration_ms",
	Help:    "Duration of UpdateGenre in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(UpdateGenreDuration)
}

var errGenreNotString = errors.New("genre must be a JSON string")

// UpdateGenre expects the new genre as a bare JSON string body.
func (i *implementation) UpdateGenre(w http.ResponseWriter, r *http.Request, params map[string]string) {
	start := time.Now()

	defer func() {
		UpdateGenreDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	id, err := parseBookID(params)
	if err != nil {
		routeNotMatched(w)
		return
	}

	ctx := r.Context()
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	var genre *string
	err = decodeBody(r.Body, &genre)
	if err == nil && genre == nil {
		err = errGenreNotString
	}
	if log.ErrorUpdateBookGenre(i.logger, err, "Got invalid request", traceID, id, "") {
		span.RecordError(err)
		writeError(w, http.StatusBadRequest, errGenreNotString.Error())
		return
	}

	if err = i.booksUseCase.UpdateGenre(ctx, id, *genre); err != nil {
		i.convertErr(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
