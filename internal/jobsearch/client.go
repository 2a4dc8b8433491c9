package jobsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pathwise-backend/internal/match"
	"pathwise-backend/internal/shared/metrics"
	"pathwise-backend/internal/shared/telemetry"
)

// Listing is one job posting as returned by the JSearch provider. Only
// Description feeds the matching core; the rest is display metadata.
type Listing struct {
	Title        string `json:"job_title"`
	EmployerName string `json:"employer_name"`
	EmployerLogo string `json:"employer_logo"`
	ApplyLink    string `json:"job_apply_link"`
	Description  string `json:"job_description"`
}

// Client fetches job listings for a query and role type. A non-nil error
// means the provider was unavailable; an empty slice with a nil error means
// the provider was reachable but found nothing. Callers must not conflate
// the two: only provider failure triggers the static fallback dataset.
type Client interface {
	Search(ctx context.Context, query string, roleType match.RoleType) ([]Listing, error)
}

// EmploymentType maps a role type onto the provider's employment_types value.
func EmploymentType(roleType match.RoleType) string {
	if roleType == match.RoleInternship {
		return "INTERN"
	}
	return "FULLTIME"
}

// HTTPClient talks to the JSearch API on RapidAPI.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	country    string
	httpClient *http.Client
}

// NewHTTPClient constructs an HTTPClient. baseURL defaults to the public
// JSearch endpoint; country narrows results the way the provider expects.
func NewHTTPClient(baseURL, apiKey, country string) (*HTTPClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("RAPIDAPI_KEY is required for the JSearch client")
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://jsearch.p.rapidapi.com/search"
	}
	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		country: country,
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
	}, nil
}

type searchResponse struct {
	Data []Listing `json:"data"`
}

// Search queries the provider for one page of listings.
func (c *HTTPClient) Search(ctx context.Context, query string, roleType match.RoleType) ([]Listing, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("jsearch base url: %w", err)
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", "1")
	params.Set("num_pages", "1")
	if c.country != "" {
		params.Set("country", c.country)
	}
	params.Set("employment_types", EmploymentType(roleType))
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("jsearch request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", u.Host)

	metrics.IncJobSearchRequest()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jsearch query %q: %w", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jsearch query %q: status %d", query, resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("jsearch query %q: decode: %w", query, err)
	}

	if len(parsed.Data) == 0 {
		telemetry.Warn("jobsearch.empty", map[string]any{
			"query":           query,
			"employment_type": EmploymentType(roleType),
		})
		return []Listing{}, nil
	}
	return parsed.Data, nil
}
