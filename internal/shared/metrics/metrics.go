package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	analysisStartedTotal   atomic.Uint64
	analysisCompletedTotal atomic.Uint64
	analysisFailedTotal    atomic.Uint64

	jobSearchRequestsTotal  atomic.Uint64
	jobSearchCacheHitTotal  atomic.Uint64
	jobSearchCacheMissTotal atomic.Uint64

	analysisDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})

	startedAt = time.Now()
)

// IncAnalysisStarted increments the started counter.
func IncAnalysisStarted() {
	analysisStartedTotal.Add(1)
}

// IncAnalysisCompleted increments the completed counter.
func IncAnalysisCompleted() {
	analysisCompletedTotal.Add(1)
}

// IncAnalysisFailed increments the failed counter.
func IncAnalysisFailed() {
	analysisFailedTotal.Add(1)
}

// IncJobSearchRequest increments the upstream request counter.
func IncJobSearchRequest() {
	jobSearchRequestsTotal.Add(1)
}

// IncJobSearchCacheHit increments the cache hit counter.
func IncJobSearchCacheHit() {
	jobSearchCacheHitTotal.Add(1)
}

// IncJobSearchCacheMiss increments the cache miss counter.
func IncJobSearchCacheMiss() {
	jobSearchCacheMissTotal.Add(1)
}

// ObserveAnalysisDurationMs records a dual-analysis duration in milliseconds.
func ObserveAnalysisDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	analysisDuration.Observe(value)
}

// Snapshot captures counter values for the JSON stats endpoint.
type Snapshot struct {
	AnalysesStarted   uint64
	AnalysesCompleted uint64
	AnalysesFailed    uint64
	JobSearchRequests uint64
	CacheHits         uint64
	CacheMisses       uint64
	UptimeSeconds     float64
}

// Snap returns current counter values.
func Snap() Snapshot {
	return Snapshot{
		AnalysesStarted:   analysisStartedTotal.Load(),
		AnalysesCompleted: analysisCompletedTotal.Load(),
		AnalysesFailed:    analysisFailedTotal.Load(),
		JobSearchRequests: jobSearchRequestsTotal.Load(),
		CacheHits:         jobSearchCacheHitTotal.Load(),
		CacheMisses:       jobSearchCacheMissTotal.Load(),
		UptimeSeconds:     time.Since(startedAt).Seconds(),
	}
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "analysis_started_total", "Total dual analyses started", analysisStartedTotal.Load())
	writeCounter(&buf, "analysis_completed_total", "Total dual analyses completed", analysisCompletedTotal.Load())
	writeCounter(&buf, "analysis_failed_total", "Total dual analyses failed", analysisFailedTotal.Load())
	writeCounter(&buf, "jobsearch_requests_total", "Total upstream job-search requests", jobSearchRequestsTotal.Load())
	writeCounter(&buf, "jobsearch_cache_hits_total", "Total job-search cache hits", jobSearchCacheHitTotal.Load())
	writeCounter(&buf, "jobsearch_cache_misses_total", "Total job-search cache misses", jobSearchCacheMissTotal.Load())
	writeHistogram(&buf, "analysis_duration_ms", "Dual analysis duration in milliseconds", analysisDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
