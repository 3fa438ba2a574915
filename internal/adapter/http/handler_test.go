package httpadapter

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfcore/internal/adapter/memory"
	"perfcore/internal/adapter/usecase"
	"perfcore/internal/generator"
)

func newTestServer(t *testing.T) (*httptest.Server, *memory.AnalyticsRepository) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := memory.NewAnalyticsRepository()
	gen := generator.New(11).WithClock(func() time.Time { return time.Now().UTC() })
	h := NewHandler(usecase.NewAnalyticsUseCase(repo, gen, logger), logger)
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return srv, repo
}

func createCampaign(t *testing.T, base, body string) campaignDTO {
	t.Helper()
	resp, err := http.Post(base+"/api/v1/campaigns", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var c campaignDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&c))
	return c
}

func TestCampaignEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	c := createCampaign(t, srv.URL, `{"name":"Website Analytics - Q1 2025","description":"GA4 property"}`)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Website Analytics - Q1 2025", c.Name)

	resp, err := http.Get(srv.URL + "/api/v1/campaigns")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []campaignDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, c.ID, list[0].ID)
}

func TestCreateCampaignRejectsBadInput(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/v1/campaigns", "application/json", strings.NewReader(`{`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/api/v1/campaigns", "application/json", strings.NewReader(`{"name":" "}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSeedGA4Endpoint(t *testing.T) {
	srv, repo := newTestServer(t)
	c := createCampaign(t, srv.URL, `{"name":"Website Analytics"}`)

	resp, err := http.Post(srv.URL+"/api/v1/ga4/seed-data/"+c.ID, "application/json",
		strings.NewReader(`{"days":14,"websiteType":"saas"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out seedResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	assert.Equal(t, c.ID, out.Summary.CampaignID)
	assert.Equal(t, "saas", out.Summary.WebsiteType)
	assert.Equal(t, 14, out.Summary.TotalRecords)
	assert.Equal(t, "Last 14 days", out.Summary.TimeRange)
	assert.True(t, strings.HasPrefix(out.Summary.Totals.AdSpend, "$"))
	assert.True(t, strings.HasSuffix(out.Summary.Totals.AvgCTR, "%"))
	assert.Positive(t, out.Summary.Totals.Sessions)
	assert.Equal(t, 14, repo.Counts()["performance_data"])

	// The seeded rows show up in the overview.
	statsResp, err := http.Get(srv.URL + "/api/v1/stats/overview?campaign_id=" + c.ID)
	require.NoError(t, err)
	defer statsResp.Body.Close()
	require.Equal(t, http.StatusOK, statsResp.StatusCode)

	var stats struct {
		Days        int64 `json:"days"`
		Impressions int64 `json:"impressions"`
	}
	require.NoError(t, json.NewDecoder(statsResp.Body).Decode(&stats))
	assert.Equal(t, int64(14), stats.Days)
	assert.Equal(t, out.Summary.Totals.AdImpressions, stats.Impressions)
}

func TestUnversionedAPIRoutes(t *testing.T) {
	srv, repo := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/campaigns", "application/json",
		strings.NewReader(`{"name":"Website Analytics - Q1 2025"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var c campaignDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&c))

	seedResp, err := http.Post(srv.URL+"/api/ga4/seed-data/"+c.ID, "application/json",
		strings.NewReader(`{"days":3}`))
	require.NoError(t, err)
	defer seedResp.Body.Close()
	require.Equal(t, http.StatusOK, seedResp.StatusCode)

	var out seedResponse
	require.NoError(t, json.NewDecoder(seedResp.Body).Decode(&out))
	assert.True(t, out.Success)
	assert.Equal(t, 3, repo.Counts()["performance_data"])

	listResp, err := http.Get(srv.URL + "/api/v1/campaigns")
	require.NoError(t, err)
	defer listResp.Body.Close()
	var list []campaignDTO
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, c.ID, list[0].ID)
}

func TestStatsOverviewDefaultWindowStartsAtMidnight(t *testing.T) {
	srv, _ := newTestServer(t)
	c := createCampaign(t, srv.URL, `{"name":"Window"}`)

	resp, err := http.Post(srv.URL+"/api/v1/ga4/seed-data/"+c.ID, "application/json",
		strings.NewReader(`{"days":40}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	statsResp, err := http.Get(srv.URL + "/api/v1/stats/overview?campaign_id=" + c.ID)
	require.NoError(t, err)
	defer statsResp.Body.Close()
	require.Equal(t, http.StatusOK, statsResp.StatusCode)

	var stats struct {
		Days int64 `json:"days"`
	}
	require.NoError(t, json.NewDecoder(statsResp.Body).Decode(&stats))
	// Today plus the 30 whole days before it.
	assert.Equal(t, int64(31), stats.Days)
}

func TestSeedGA4EndpointErrors(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/v1/ga4/seed-data/unknown", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	c := createCampaign(t, srv.URL, `{"name":"x"}`)
	resp, err = http.Post(srv.URL+"/api/v1/ga4/seed-data/"+c.ID, "application/json",
		strings.NewReader(`{"websiteType":"podcast"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/api/v1/ga4/seed-data/"+c.ID, "application/json",
		strings.NewReader(`{"days":-3}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStatsOverviewValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, q := range []string{"from=yesterday", "to=2025-13-01", "from=2025-02-01&to=2025-01-01"} {
		resp, err := http.Get(srv.URL + "/api/v1/stats/overview?" + q)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}

	resp, err := http.Get(srv.URL + "/api/v1/stats/overview?from=2025-01-01&to=2025-01-31T23:59:59Z")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealthAndMetrics(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "http_requests_total")
}
