package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"pathwise-backend/internal/analysis"
	"pathwise-backend/internal/jobsearch"
	"pathwise-backend/internal/llm"
	"pathwise-backend/internal/llm/gemini"
	"pathwise-backend/internal/shared/config"
	"pathwise-backend/internal/shared/metrics"
	"pathwise-backend/internal/shared/server/middleware"
	"pathwise-backend/internal/shared/server/respond"
	"pathwise-backend/internal/shared/telemetry"
	"pathwise-backend/internal/skills"
)

const analyzeRateGroup = "ANALYZE"

// NewRouter constructs the Gin engine with middleware, dependencies, and
// routes registered. Missing provider credentials degrade features instead
// of failing startup: no RAPIDAPI_KEY means fallback listings, no
// GEMINI_API_KEY means templated summaries.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(ginMode(cfg.Env))
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	extractor := skills.NewExtractor()

	var jobs jobsearch.Client
	var cache *jobsearch.CachingClient
	if cfg.RapidAPIKey != "" {
		httpClient, err := jobsearch.NewHTTPClient(cfg.JSearchBaseURL, cfg.RapidAPIKey, cfg.JSearchCountry)
		if err != nil {
			telemetry.Warn("jobsearch.init_failed", map[string]any{"error": err.Error()})
		} else {
			cache = jobsearch.NewCachingClient(httpClient, cfg.JobsCacheTTL)
			jobs = cache
		}
	} else {
		telemetry.Warn("jobsearch.disabled", map[string]any{
			"reason": "RAPIDAPI_KEY not set, serving fallback listings",
		})
	}

	var llmClient llm.Client = llm.PlaceholderClient{}
	if cfg.GeminiAPIKey != "" {
		geminiClient, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			telemetry.Warn("llm.init_failed", map[string]any{"error": err.Error()})
		} else {
			llmClient = geminiClient
		}
	} else {
		telemetry.Warn("llm.disabled", map[string]any{
			"reason": "GEMINI_API_KEY not set, serving templated summaries",
		})
	}

	svc := analysis.NewService(extractor, jobs, llmClient)
	handler := analysis.NewHandler(svc, cache)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/analyze-resume-dual" {
				return analyzeRateGroup
			}
			return ""
		},
		Rules: map[string]middleware.RateLimitRule{
			// 10 analyses per 15 minutes per client.
			analyzeRateGroup: {Rate: 10.0 / 900.0, Burst: 10},
		},
	}))
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	handler.RegisterRoutes(api)

	r.GET("/metrics", metrics.Handler())

	return r
}

func ginMode(env string) string {
	switch env {
	case "production", "staging":
		return gin.ReleaseMode
	default:
		return gin.DebugMode
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
