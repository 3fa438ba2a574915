package port

import (
	"context"

	"perfcore/internal/core/domain"
)

// AnalyticsRepository defines the persistence layer for campaigns,
// platform connections and daily metric rows. It is an outbound port in
// hexagonal architecture. Implementations must be safe for concurrent use.
//
// Lookups return (nil, nil) when nothing matches.
type AnalyticsRepository interface {
	// ListCampaigns returns all campaigns ordered by creation time.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// CreateCampaign stores a new campaign.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error

	// FindGA4Connection returns the first GA4 connection of a campaign.
	FindGA4Connection(ctx context.Context, campaignID string) (*domain.GA4Connection, error)
	// CreateGA4Connection stores a new GA4 connection.
	CreateGA4Connection(ctx context.Context, conn *domain.GA4Connection) error
	// FindLinkedInConnection returns the first LinkedIn connection of a campaign.
	FindLinkedInConnection(ctx context.Context, campaignID string) (*domain.LinkedInConnection, error)
	// CreateLinkedInConnection stores a new LinkedIn connection.
	CreateLinkedInConnection(ctx context.Context, conn *domain.LinkedInConnection) error

	// InsertPerformanceData stores one day of generic campaign metrics.
	InsertPerformanceData(ctx context.Context, row *domain.PerformanceData) error
	// InsertLinkedInImportMetric stores a LinkedIn import record.
	InsertLinkedInImportMetric(ctx context.Context, row *domain.LinkedInImportMetric) error
	// InsertLinkedInAdPerformance stores one day of LinkedIn ad metrics.
	InsertLinkedInAdPerformance(ctx context.Context, row *domain.LinkedInAdPerformance) error

	// GetStats aggregates performance data for a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}
