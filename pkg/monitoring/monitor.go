package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// Ingestion pipeline counters, labeled per-file outcome where it matters.
	IngestFilesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_files_processed_total",
			Help: "Exam files processed, by outcome",
		},
		[]string{"status"},
	)

	IngestQuestionsImported = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ingest_questions_imported_total",
			Help: "Questions persisted by the importer",
		},
	)

	IngestAnswersImported = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ingest_answers_imported_total",
			Help: "Answers persisted by the importer",
		},
	)

	IngestDuplicatesSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ingest_duplicates_skipped_total",
			Help: "Exams and questions skipped as duplicates",
		},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(IngestFilesProcessed)
	prometheus.MustRegister(IngestQuestionsImported)
	prometheus.MustRegister(IngestAnswersImported)
	prometheus.MustRegister(IngestDuplicatesSkipped)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
