// Package memory implements port.AnalyticsRepository in process memory. It
// backs the server when no database is configured and serves as a fake in
// tests. Nothing survives a restart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"perfcore/internal/core/domain"
	"perfcore/internal/core/port"
)

// AnalyticsRepository keeps every row in slices guarded by a RWMutex.
type AnalyticsRepository struct {
	mu sync.RWMutex

	campaigns           []domain.Campaign
	ga4Connections      []domain.GA4Connection
	linkedInConnections []domain.LinkedInConnection
	performance         []domain.PerformanceData
	importMetrics       []domain.LinkedInImportMetric
	adPerformance       []domain.LinkedInAdPerformance
}

// NewAnalyticsRepository returns an empty repository.
func NewAnalyticsRepository() *AnalyticsRepository {
	return &AnalyticsRepository{}
}

// ListCampaigns returns campaigns ordered by creation time.
func (r *AnalyticsRepository) ListCampaigns(_ context.Context) ([]domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Campaign, len(r.campaigns))
	copy(out, r.campaigns)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// GetCampaign returns a campaign by id.
func (r *AnalyticsRepository) GetCampaign(_ context.Context, id string) (*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.campaigns {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *AnalyticsRepository) CreateCampaign(_ context.Context, c *domain.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.campaigns = append(r.campaigns, *c)
	return nil
}

func (r *AnalyticsRepository) FindGA4Connection(_ context.Context, campaignID string) (*domain.GA4Connection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.ga4Connections {
		if c.CampaignID == campaignID {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *AnalyticsRepository) CreateGA4Connection(_ context.Context, conn *domain.GA4Connection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ga4Connections = append(r.ga4Connections, *conn)
	return nil
}

func (r *AnalyticsRepository) FindLinkedInConnection(_ context.Context, campaignID string) (*domain.LinkedInConnection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.linkedInConnections {
		if c.CampaignID == campaignID {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *AnalyticsRepository) CreateLinkedInConnection(_ context.Context, conn *domain.LinkedInConnection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.linkedInConnections = append(r.linkedInConnections, *conn)
	return nil
}

func (r *AnalyticsRepository) InsertPerformanceData(_ context.Context, row *domain.PerformanceData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.performance = append(r.performance, *row)
	return nil
}

func (r *AnalyticsRepository) InsertLinkedInImportMetric(_ context.Context, row *domain.LinkedInImportMetric) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.importMetrics = append(r.importMetrics, *row)
	return nil
}

func (r *AnalyticsRepository) InsertLinkedInAdPerformance(_ context.Context, row *domain.LinkedInAdPerformance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adPerformance = append(r.adPerformance, *row)
	return nil
}

// GetStats aggregates performance rows whose date falls within the
// inclusive window.
func (r *AnalyticsRepository) GetStats(_ context.Context, req port.StatsReq) (*port.StatsResp, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	resp := &port.StatsResp{Spend: decimal.Zero}
	days := make(map[string]struct{})
	from, to := req.Bounds()
	first, last := from.Format(time.DateOnly), to.Format(time.DateOnly)
	for _, p := range r.performance {
		day := p.Date.UTC().Format(time.DateOnly)
		if day < first || day > last {
			continue
		}
		if req.CampaignID != nil && p.CampaignID != *req.CampaignID {
			continue
		}
		days[day] = struct{}{}
		resp.Impressions += p.Impressions
		resp.Clicks += p.Clicks
		resp.Conversions += p.Conversions
		resp.Reach += p.Reach
		resp.Engagement += p.Engagement
		resp.Spend = resp.Spend.Add(p.Spend)
	}
	resp.Days = int64(len(days))
	return resp, nil
}

// Counts reports how many rows each table holds.
func (r *AnalyticsRepository) Counts() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return map[string]int{
		"campaigns":               len(r.campaigns),
		"ga4_connections":         len(r.ga4Connections),
		"linkedin_connections":    len(r.linkedInConnections),
		"performance_data":        len(r.performance),
		"linkedin_import_metrics": len(r.importMetrics),
		"linkedin_ad_performance": len(r.adPerformance),
	}
}
