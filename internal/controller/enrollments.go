package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/project/libraryapi/internal/log"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

var AddEnrollmentDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Name:    "library_add_enrollment_duration_ms",
	Help:    "Duration of AddEnrollment in ms",
	Buckets: prometheus.DefBuckets,
})

func init() {
	prometheus.MustRegister(AddEnrollmentDuration)
}

func (i *implementation) AddEnrollment(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	start := time.Now()

	defer func() {
		AddEnrollmentDuration.Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx := r.Context()
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	var req EnrollmentRequest
	if err := decodeBody(r.Body, &req); log.ErrorEnroll(i.logger, err, "Got unreadable request", traceID) {
		span.RecordError(err)
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	enrollment, err := i.enrollmentUseCase.Enroll(ctx, req.Class, req.Student, req.NumberOfDays.value)
	if log.ErrorEnroll(i.logger, err, "Can not enroll", traceID) {
		i.convertErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, fmt.Sprintf("[%s]: You are enrolled in %s for %d days, %s",
		enrollment.ID, enrollment.Class, enrollment.NumberOfDays, enrollment.Student))
}
