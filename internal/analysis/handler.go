package analysis

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pathwise-backend/internal/jobsearch"
	"pathwise-backend/internal/match"
	"pathwise-backend/internal/shared/metrics"
	"pathwise-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc   *Service
	Cache *jobsearch.CachingClient
}

// NewHandler constructs a Handler. cache may be nil when the job-search
// client is unwrapped (tests, degraded dev mode).
func NewHandler(svc *Service, cache *jobsearch.CachingClient) *Handler {
	return &Handler{Svc: svc, Cache: cache}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze-resume-dual", h.analyzeDual)
	rg.GET("/jobs/search", h.searchJobs)
	rg.GET("/stats", h.stats)
}

type analyzeRequest struct {
	FileContent string `json:"file_content"`
}

func (h *Handler) analyzeDual(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.FileContent) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file_content is required", nil)
		return
	}

	dual, err := h.Svc.AnalyzeDual(c.Request.Context(), req.FileContent)
	if err != nil {
		metrics.IncAnalysisFailed()
		switch {
		case errors.Is(err, ErrInvalidDocument):
			respond.Error(c, http.StatusBadRequest, "invalid_document", err.Error(), nil)
		case errors.Is(err, ErrNoSkills):
			respond.Error(c, http.StatusUnprocessableEntity, "no_skills_found", "No skills found.", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze resume", nil)
		}
		return
	}

	respond.OK(c, dual)
}

func (h *Handler) searchJobs(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "query is required", nil)
		return
	}
	roleType, err := parseRoleType(c.DefaultQuery("roleType", string(match.RoleFullTime)))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	paths := h.Svc.SearchJobs(c.Request.Context(), query, roleType)
	respond.OK(c, gin.H{"jobs": paths})
}

func (h *Handler) stats(c *gin.Context) {
	snap := metrics.Snap()
	hitRate := "0%"
	if lookups := snap.CacheHits + snap.CacheMisses; lookups > 0 {
		hitRate = fmt.Sprintf("%.2f%%", float64(snap.CacheHits)/float64(lookups)*100)
	}
	cacheSize := 0
	if h.Cache != nil {
		cacheSize = h.Cache.Size()
	}
	respond.OK(c, gin.H{
		"analysesStarted":   snap.AnalysesStarted,
		"analysesCompleted": snap.AnalysesCompleted,
		"analysesFailed":    snap.AnalysesFailed,
		"apiCalls":          snap.JobSearchRequests,
		"cacheHits":         snap.CacheHits,
		"cacheMisses":       snap.CacheMisses,
		"cacheHitRate":      hitRate,
		"cacheSize":         cacheSize,
		"uptime":            snap.UptimeSeconds,
	})
}

func parseRoleType(raw string) (match.RoleType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(match.RoleFullTime), "fulltime", "":
		return match.RoleFullTime, nil
	case string(match.RoleInternship), "intern":
		return match.RoleInternship, nil
	default:
		return "", fmt.Errorf("unknown roleType %q", raw)
	}
}
