package port

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"perfcore/internal/core/domain"
)

var (
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrUnknownWebsiteType = errors.New("unknown website type")
	ErrInvalidDays        = errors.New("days out of range")
	ErrInvalidCampaign    = errors.New("campaign name is required")
)

// MaxSeedDays bounds how much history a single seed run may generate.
const MaxSeedDays = 365

// AnalyticsUseCase defines the business operations of the analytics
// backend: campaign management, stats and synthetic data seeding.
type AnalyticsUseCase interface {
	// ListCampaigns returns all campaigns.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// CreateCampaign creates a campaign with the given name and description.
	CreateCampaign(ctx context.Context, name, description string) (*domain.Campaign, error)
	// GetStats returns aggregated performance for a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)

	// EnsureCampaign returns the first existing campaign or creates the
	// demo campaign. The bool reports whether a campaign was created.
	EnsureCampaign(ctx context.Context) (*domain.Campaign, bool, error)
	// SeedGA4 inserts one performance row per day for a website profile.
	SeedGA4(ctx context.Context, req SeedGA4Req) (*GA4Summary, error)
	// SeedLinkedIn inserts an import record and an ad performance row per
	// day for every LinkedIn campaign profile.
	SeedLinkedIn(ctx context.Context, req SeedLinkedInReq) (*LinkedInSummary, error)
}

// StatsReq selects the performance rows to aggregate. Both bounds are
// inclusive calendar days. A nil CampaignID aggregates all campaigns.
type StatsReq struct {
	From       time.Time
	To         time.Time
	CampaignID *string
}

// Bounds returns From and To truncated to their UTC calendar days.
func (r StatsReq) Bounds() (from, to time.Time) {
	return utcDay(r.From), utcDay(r.To)
}

func utcDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StatsResp contains aggregated performance data.
type StatsResp struct {
	Days        int64           `json:"days"`
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
	Conversions int64           `json:"conversions"`
	Reach       int64           `json:"reach"`
	Engagement  int64           `json:"engagement"`
	Spend       decimal.Decimal `json:"spend"`
}

// SeedGA4Req configures a GA4 seed run. An empty CampaignID uses the first
// existing campaign, creating the demo campaign when there is none.
type SeedGA4Req struct {
	CampaignID  string
	WebsiteType string
	Days        int
}

// SeedLinkedInReq configures a LinkedIn seed run.
type SeedLinkedInReq struct {
	Days int
}

// GA4Summary reports the totals of a GA4 seed run.
type GA4Summary struct {
	CampaignID   string
	CampaignName string
	PropertyName string
	WebsiteType  string
	WebsiteName  string
	Days         int
	Records      int
	Sessions     int64
	Users        int64
	Pageviews    int64
	Conversions  int64
	Impressions  int64
	Clicks       int64
	Spend        decimal.Decimal
}

// AvgCTR is clicks over impressions in percent.
func (s GA4Summary) AvgCTR() decimal.Decimal {
	return percent(s.Clicks, s.Impressions)
}

// AvgConversionRate is conversions over sessions in percent.
func (s GA4Summary) AvgConversionRate() decimal.Decimal {
	return percent(s.Conversions, s.Sessions)
}

// AvgCPC is spend over clicks.
func (s GA4Summary) AvgCPC() decimal.Decimal {
	if s.Clicks == 0 {
		return decimal.Zero
	}
	return s.Spend.Div(decimal.NewFromInt(s.Clicks)).Round(2)
}

// LinkedInSummary reports the totals of a LinkedIn seed run.
type LinkedInSummary struct {
	CampaignID   string
	CampaignName string
	ConnectionID string
	Days         int
	Records      int
	Campaigns    []LinkedInCampaignTotals
}

// LinkedInCampaignTotals are the totals of one seeded LinkedIn campaign.
type LinkedInCampaignTotals struct {
	CampaignID  string
	Name        string
	Objective   string
	Budget      decimal.Decimal
	Impressions int64
	Clicks      int64
	Spend       decimal.Decimal
	Conversions int64
	Leads       int64
}

func percent(num, den int64) decimal.Decimal {
	if den == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(num).Mul(decimal.NewFromInt(100)).Div(decimal.NewFromInt(den)).Round(2)
}
