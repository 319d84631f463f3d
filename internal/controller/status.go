package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/project/libraryapi/internal/entity"
	"github.com/project/libraryapi/internal/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	statusID      = 99
	statusMessage = "Cool"
	allEmployees  = "all"
)

var DemoDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "library_demo_duration_ms",
	Help:    "Duration of the demonstration endpoints in ms",
	Buckets: prometheus.DefBuckets,
}, []string{"endpoint"})

func init() {
	prometheus.MustRegister(DemoDuration)
}

func observeDemo(endpoint string, start time.Time) {
	DemoDuration.WithLabelValues(endpoint).Observe(float64(time.Since(start).Milliseconds()))
}

func demoTraceID(r *http.Request, endpoint string) string {
	span := trace.SpanFromContext(r.Context())
	span.SetAttributes(attribute.String("endpoint", endpoint))
	return span.SpanContext().TraceID().String()
}

func (i *implementation) GetStatus(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	defer observeDemo("status", time.Now())

	log.InfoStatus(i.logger, "Reported the status", demoTraceID(r, "status"), "status")

	writeJSON(w, http.StatusOK, entity.ServerStatus{
		ID:            statusID,
		StatusMessage: statusMessage,
		CheckedAt:     i.now(),
	})
}

func (i *implementation) GetBlogPosts(w http.ResponseWriter, r *http.Request, params map[string]string) {
	defer observeDemo("blogs", time.Now())

	traceID := demoTraceID(r, "blogs")
	date, err := parseBlogDate(params)
	if err != nil {
		log.WarnStatus(i.logger, "Got a date outside of the blog range", traceID, "blogs")
		routeNotMatched(w)
		return
	}

	log.InfoStatus(i.logger, "Gave the blog posts", traceID, "blogs")

	writeJSON(w, http.StatusOK, fmt.Sprintf("Giving the block posts for %d/%d/%d", date.day, date.month, date.year))
}

func (i *implementation) GetEmployees(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	defer observeDemo("employees", time.Now())

	dept := r.URL.Query().Get("dept")
	dept = lo.Ternary(dept == "", allEmployees, dept)
	log.InfoStatus(i.logger, "Gave the employees", demoTraceID(r, "employees"), "employees")

	writeJSON(w, http.StatusOK, "Getting employees for department "+dept)
}

func (i *implementation) WhoAmI(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	defer observeDemo("whoami", time.Now())

	log.InfoStatus(i.logger, "Echoed the user agent", demoTraceID(r, "whoami"), "whoami")

	writeJSON(w, http.StatusOK, "I see you are running "+r.UserAgent())
}
