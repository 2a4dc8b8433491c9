package analysis

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathwise-backend/internal/jobsearch"
)

func newTestRouter(jobs jobsearch.Client, cache *jobsearch.CachingClient) *gin.Engine {
	return newTestRouterWithText(jobs, cache, nil)
}

func newTestRouterWithText(jobs jobsearch.Client, cache *jobsearch.CachingClient, text DocumentText) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := newTestService(jobs)
	if text != nil {
		svc.Text = text
	}
	h := NewHandler(svc, cache)
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func fixedText(resume string) DocumentText {
	return func(string) (string, error) { return resume, nil }
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func errorCode(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload.Error.Code
}

func TestAnalyzeDualRejectsBadBody(t *testing.T) {
	r := newTestRouter(nil, nil)

	resp := doJSON(t, r, http.MethodPost, "/api/v1/analyze-resume-dual", "{not json")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "validation_error", errorCode(t, resp))

	resp = doJSON(t, r, http.MethodPost, "/api/v1/analyze-resume-dual", `{"file_content":"  "}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "validation_error", errorCode(t, resp))
}

func TestAnalyzeDualRejectsBadDocument(t *testing.T) {
	r := newTestRouter(nil, nil)

	resp := doJSON(t, r, http.MethodPost, "/api/v1/analyze-resume-dual", `{"file_content":"!!!not-base64!!!"}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "invalid_document", errorCode(t, resp))

	// Valid base64, but not a parseable document.
	garbage := base64.StdEncoding.EncodeToString([]byte("plain text, not a pdf"))
	resp = doJSON(t, r, http.MethodPost, "/api/v1/analyze-resume-dual", `{"file_content":"`+garbage+`"}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "invalid_document", errorCode(t, resp))
}

func TestAnalyzeDualNoSkills(t *testing.T) {
	r := newTestRouterWithText(nil, nil, fixedText("Jane Doe\n\nI enjoy gardening and hiking."))

	resp := doJSON(t, r, http.MethodPost, "/api/v1/analyze-resume-dual", `{"file_content":"ZG9jdW1lbnQ="}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Equal(t, "no_skills_found", errorCode(t, resp))
}

func TestAnalyzeDualSuccess(t *testing.T) {
	r := newTestRouterWithText(nil, nil, fixedText(profileResume))

	resp := doJSON(t, r, http.MethodPost, "/api/v1/analyze-resume-dual", `{"file_content":"ZG9jdW1lbnQ="}`)
	require.Equal(t, http.StatusOK, resp.Code)

	var dual DualResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&dual))
	assert.Equal(t, "Jane Doe", dual.FullTime.Name)
	assert.Equal(t, "Jane Doe", dual.Internship.Name)
	assert.Contains(t, dual.Internship.Summary, "aspiring professional")
	assert.NotEmpty(t, dual.FullTime.CareerPaths, "fallback dataset feeds career paths")
	assert.NotEmpty(t, dual.FullTime.ExtractedSkills)
}

func TestSearchJobsEndpoint(t *testing.T) {
	fake := &fakeJobsClient{
		responses: map[string][]jobsearch.Listing{
			"python developer": {{Title: "Backend Engineer", EmployerName: "Acme", Description: "Python work."}},
		},
	}
	r := newTestRouter(fake, nil)

	resp := doJSON(t, r, http.MethodGet, "/api/v1/jobs/search?query=python+developer", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var payload struct {
		Jobs []CareerPath `json:"jobs"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Jobs, 1)
	assert.Equal(t, "Backend Engineer", payload.Jobs[0].Role)
	assert.Zero(t, payload.Jobs[0].MatchPercentage)
}

func TestSearchJobsRequiresQuery(t *testing.T) {
	r := newTestRouter(nil, nil)
	resp := doJSON(t, r, http.MethodGet, "/api/v1/jobs/search", "")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "validation_error", errorCode(t, resp))
}

func TestSearchJobsRejectsUnknownRoleType(t *testing.T) {
	r := newTestRouter(nil, nil)
	resp := doJSON(t, r, http.MethodGet, "/api/v1/jobs/search?query=python&roleType=contract", "")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestStatsEndpoint(t *testing.T) {
	cache := jobsearch.NewCachingClient(&fakeJobsClient{}, 0)
	r := newTestRouter(nil, cache)

	resp := doJSON(t, r, http.MethodGet, "/api/v1/stats", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	for _, key := range []string{
		"analysesStarted", "analysesCompleted", "analysesFailed",
		"apiCalls", "cacheHits", "cacheMisses", "cacheHitRate", "cacheSize", "uptime",
	} {
		assert.Contains(t, payload, key)
	}
	assert.Equal(t, float64(0), payload["cacheSize"])
}

func TestParseRoleType(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"full-time", "full-time", false},
		{"fulltime", "full-time", false},
		{"", "full-time", false},
		{"internship", "internship", false},
		{"intern", "internship", false},
		{"INTERN", "internship", false},
		{"contract", "", true},
	}
	for _, tt := range tests {
		got, err := parseRoleType(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "parseRoleType(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "parseRoleType(%q)", tt.in)
		assert.Equal(t, tt.want, string(got))
	}
}
