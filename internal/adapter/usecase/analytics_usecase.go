package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"perfcore/internal/core/domain"
	"perfcore/internal/core/port"
	"perfcore/internal/generator"
	"perfcore/internal/observability/metrics"
)

const (
	demoCampaignName = "Q1 2025 Digital Marketing Campaign"

	ga4CampaignDescription      = "Website analytics and paid advertising performance"
	linkedInCampaignDescription = "Integrated campaign across LinkedIn, Google Ads, and Meta platforms"

	demoTokenLifetime = 60 * 24 * time.Hour
	linkedInStatus    = "ACTIVE"
)

// AnalyticsUseCase provides campaign management, stats and synthetic
// metrics seeding. Seeding is sequential: the first failing insert aborts
// the run and nothing already written is rolled back.
type AnalyticsUseCase struct {
	repo   port.AnalyticsRepository
	gen    *generator.Generator
	logger *slog.Logger
}

var _ port.AnalyticsUseCase = (*AnalyticsUseCase)(nil)

// NewAnalyticsUseCase creates a usecase over repo drawing metrics from gen.
func NewAnalyticsUseCase(repo port.AnalyticsRepository, gen *generator.Generator, logger *slog.Logger) *AnalyticsUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyticsUseCase{repo: repo, gen: gen, logger: logger}
}

// ListCampaigns returns all campaigns.
func (u *AnalyticsUseCase) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return u.repo.ListCampaigns(ctx)
}

// CreateCampaign validates and stores a new campaign.
func (u *AnalyticsUseCase) CreateCampaign(ctx context.Context, name, description string) (*domain.Campaign, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, port.ErrInvalidCampaign
	}
	c := &domain.Campaign{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   u.gen.Now().UTC(),
	}
	if err := u.repo.CreateCampaign(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetStats returns aggregated performance data for a period.
func (u *AnalyticsUseCase) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	return u.repo.GetStats(ctx, req)
}

// EnsureCampaign returns the oldest campaign, creating the demo campaign
// when none exists.
func (u *AnalyticsUseCase) EnsureCampaign(ctx context.Context) (*domain.Campaign, bool, error) {
	return u.ensureCampaign(ctx, linkedInCampaignDescription)
}

func (u *AnalyticsUseCase) ensureCampaign(ctx context.Context, description string) (*domain.Campaign, bool, error) {
	campaigns, err := u.repo.ListCampaigns(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("list campaigns: %w", err)
	}
	if len(campaigns) > 0 {
		return &campaigns[0], false, nil
	}

	u.logger.Warn("no campaigns found, creating a demo campaign")
	c := &domain.Campaign{
		ID:          uuid.NewString(),
		Name:        demoCampaignName,
		Description: description,
		CreatedAt:   u.gen.Now().UTC(),
	}
	if err = u.repo.CreateCampaign(ctx, c); err != nil {
		return nil, false, fmt.Errorf("create demo campaign: %w", err)
	}
	u.logger.Info("created demo campaign", slog.String("campaign_id", c.ID), slog.String("name", c.Name))
	return c, true, nil
}

func (u *AnalyticsUseCase) resolveCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	if id == "" {
		c, _, err := u.ensureCampaign(ctx, ga4CampaignDescription)
		return c, err
	}
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: %s", port.ErrCampaignNotFound, id)
	}
	return c, nil
}

func (u *AnalyticsUseCase) ensureGA4Connection(ctx context.Context, campaignID string) (*domain.GA4Connection, error) {
	existing, err := u.repo.FindGA4Connection(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("find GA4 connection: %w", err)
	}
	if existing != nil {
		u.logger.Info("using existing GA4 connection", slog.String("property", existing.PropertyName))
		return existing, nil
	}

	now := u.gen.Now().UTC()
	stamp := strconv.FormatInt(now.UnixMilli(), 10)
	conn := &domain.GA4Connection{
		ID:           uuid.NewString(),
		CampaignID:   campaignID,
		PropertyID:   "properties/" + strconv.Itoa(u.gen.Intn(999999999)),
		PropertyName: "Demo Website Analytics",
		WebsiteURL:   "https://www.demo-website.com",
		DisplayName:  "Main Website Property",
		Method:       domain.MethodAccessToken,
		AccessToken:  "demo_access_token_" + stamp,
		RefreshToken: "demo_refresh_token_" + stamp,
		IsPrimary:    true,
		IsActive:     true,
		ExpiresAt:    now.Add(demoTokenLifetime),
		ConnectedAt:  now,
		CreatedAt:    now,
	}
	if err = u.repo.CreateGA4Connection(ctx, conn); err != nil {
		return nil, fmt.Errorf("create GA4 connection: %w", err)
	}
	u.logger.Info("created GA4 connection", slog.String("property", conn.PropertyName))
	return conn, nil
}

func (u *AnalyticsUseCase) ensureLinkedInConnection(ctx context.Context, campaignID string) (*domain.LinkedInConnection, error) {
	existing, err := u.repo.FindLinkedInConnection(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("find LinkedIn connection: %w", err)
	}
	if existing != nil {
		u.logger.Info("using existing LinkedIn connection", slog.String("account", existing.AdAccountName))
		return existing, nil
	}

	now := u.gen.Now().UTC()
	stamp := strconv.FormatInt(now.UnixMilli(), 10)
	conn := &domain.LinkedInConnection{
		ID:            uuid.NewString(),
		CampaignID:    campaignID,
		AdAccountID:   "li-ad-account-" + u.gen.Token(6),
		AdAccountName: "Performance Core Demo Account",
		AccessToken:   "demo_access_token_" + stamp,
		RefreshToken:  "demo_refresh_token_" + stamp,
		Method:        domain.MethodOAuth,
		ExpiresAt:     now.Add(demoTokenLifetime),
		ConnectedAt:   now,
		CreatedAt:     now,
	}
	if err = u.repo.CreateLinkedInConnection(ctx, conn); err != nil {
		return nil, fmt.Errorf("create LinkedIn connection: %w", err)
	}
	u.logger.Info("created LinkedIn connection", slog.String("account", conn.AdAccountName))
	return conn, nil
}

func validateDays(days int) error {
	if days < 1 || days > port.MaxSeedDays {
		return fmt.Errorf("%w: %d (want 1..%d)", port.ErrInvalidDays, days, port.MaxSeedDays)
	}
	return nil
}

// SeedGA4 writes one performance_data row per day for the selected website
// profile. Reach is the day's users and engagement its engaged sessions.
func (u *AnalyticsUseCase) SeedGA4(ctx context.Context, req port.SeedGA4Req) (summary *port.GA4Summary, err error) {
	defer func() { metrics.RecordSeedRun("ga4", err) }()

	if err = validateDays(req.Days); err != nil {
		return nil, err
	}
	profile, ok := generator.WebsiteProfileFor(req.WebsiteType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", port.ErrUnknownWebsiteType, req.WebsiteType)
	}

	campaign, err := u.resolveCampaign(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}
	conn, err := u.ensureGA4Connection(ctx, campaign.ID)
	if err != nil {
		return nil, err
	}

	u.logger.Info("generating GA4 metrics",
		slog.String("campaign_id", campaign.ID),
		slog.String("website", profile.Name),
		slog.String("type", string(profile.Type)),
		slog.Int("days", req.Days),
	)

	summary = &port.GA4Summary{
		CampaignID:   campaign.ID,
		CampaignName: campaign.Name,
		PropertyName: conn.PropertyName,
		WebsiteType:  string(profile.Type),
		WebsiteName:  profile.Name,
		Days:         req.Days,
		Spend:        decimal.Zero,
	}
	for day := 0; day < req.Days; day++ {
		m := u.gen.GA4Daily(profile, day)
		spend := decimal.NewFromFloat(m.Spend()).Round(2)

		row := &domain.PerformanceData{
			ID:          uuid.NewString(),
			CampaignID:  campaign.ID,
			Date:        m.Date,
			Impressions: m.Impressions,
			Clicks:      m.Clicks,
			Spend:       spend,
			Conversions: m.Conversions,
			Reach:       m.Users,
			Engagement:  m.EngagedSessions,
			CreatedAt:   u.gen.Now().UTC(),
		}
		if err = u.repo.InsertPerformanceData(ctx, row); err != nil {
			return nil, fmt.Errorf("insert performance data for %s: %w", generator.FormatDay(m.Date), err)
		}
		metrics.RecordInsert("performance_data")

		summary.Records++
		summary.Sessions += m.Sessions
		summary.Users += m.Users
		summary.Pageviews += m.Pageviews
		summary.Conversions += m.Conversions
		summary.Impressions += m.Impressions
		summary.Clicks += m.Clicks
		summary.Spend = summary.Spend.Add(spend)
	}

	u.logger.Info("seeded GA4 metrics",
		slog.Int("records", summary.Records),
		slog.Int64("sessions", summary.Sessions),
		slog.Int64("conversions", summary.Conversions),
		slog.String("spend", summary.Spend.StringFixed(2)),
	)
	return summary, nil
}

// SeedLinkedIn writes, for every LinkedIn profile and day, an import record
// and an ad performance row under a freshly generated platform campaign id.
func (u *AnalyticsUseCase) SeedLinkedIn(ctx context.Context, req port.SeedLinkedInReq) (summary *port.LinkedInSummary, err error) {
	defer func() { metrics.RecordSeedRun("linkedin", err) }()

	if err = validateDays(req.Days); err != nil {
		return nil, err
	}
	campaign, _, err := u.ensureCampaign(ctx, linkedInCampaignDescription)
	if err != nil {
		return nil, err
	}
	conn, err := u.ensureLinkedInConnection(ctx, campaign.ID)
	if err != nil {
		return nil, err
	}

	summary = &port.LinkedInSummary{
		CampaignID:   campaign.ID,
		CampaignName: campaign.Name,
		ConnectionID: conn.ID,
		Days:         req.Days,
	}
	for _, profile := range generator.LinkedInProfiles {
		totals, err := u.seedLinkedInCampaign(ctx, conn.ID, profile, req.Days)
		if err != nil {
			return nil, err
		}
		summary.Records += req.Days
		summary.Campaigns = append(summary.Campaigns, *totals)
	}
	return summary, nil
}

func (u *AnalyticsUseCase) seedLinkedInCampaign(ctx context.Context, sessionID string, p generator.LinkedInCampaignProfile, days int) (*port.LinkedInCampaignTotals, error) {
	totals := &port.LinkedInCampaignTotals{
		CampaignID: "lc_" + u.gen.Token(13),
		Name:       p.Name,
		Objective:  string(p.Objective),
		Budget:     decimal.NewFromFloat(p.Budget),
		Spend:      decimal.Zero,
	}
	u.logger.Info("generating LinkedIn metrics",
		slog.String("campaign", p.Name),
		slog.String("objective", string(p.Objective)),
		slog.String("budget", totals.Budget.StringFixed(2)),
	)

	for day := 0; day < days; day++ {
		m := u.gen.LinkedInDaily(p, day)
		now := u.gen.Now().UTC()
		start := now.Add(-time.Duration(day) * 24 * time.Hour)

		imp := &domain.LinkedInImportMetric{
			ID:           uuid.NewString(),
			SessionID:    sessionID,
			CampaignID:   totals.CampaignID,
			CampaignName: p.Name,
			Status:       linkedInStatus,
			StartDate:    start,
			EndDate:      start.Add(24 * time.Hour),
			ImportedAt:   now,
		}
		if err := u.repo.InsertLinkedInImportMetric(ctx, imp); err != nil {
			return nil, fmt.Errorf("insert LinkedIn import metric for %s: %w", p.Name, err)
		}
		metrics.RecordInsert("linkedin_import_metrics")

		row := linkedInRow(sessionID, totals.CampaignID, m, now)
		if err := u.repo.InsertLinkedInAdPerformance(ctx, row); err != nil {
			return nil, fmt.Errorf("insert LinkedIn ad performance for %s on %s: %w", p.Name, generator.FormatDay(m.Date), err)
		}
		metrics.RecordInsert("linkedin_ad_performance")

		totals.Impressions += m.Impressions
		totals.Clicks += m.Clicks
		totals.Spend = totals.Spend.Add(row.Spend)
		totals.Conversions += m.Conversions
		totals.Leads += m.Leads
	}

	u.logger.Info("seeded LinkedIn campaign",
		slog.String("campaign_id", totals.CampaignID),
		slog.Int64("impressions", totals.Impressions),
		slog.Int64("clicks", totals.Clicks),
		slog.String("spend", totals.Spend.StringFixed(2)),
		slog.Int64("conversions", totals.Conversions),
		slog.Int64("leads", totals.Leads),
	)
	return totals, nil
}

func linkedInRow(sessionID, campaignID string, m generator.LinkedInDailyMetrics, now time.Time) *domain.LinkedInAdPerformance {
	money := func(v float64) decimal.Decimal { return decimal.NewFromFloat(v).Round(2) }
	return &domain.LinkedInAdPerformance{
		ID:               uuid.NewString(),
		SessionID:        sessionID,
		CampaignID:       campaignID,
		Date:             m.Date,
		Impressions:      m.Impressions,
		Reach:            m.Reach,
		Clicks:           m.Clicks,
		Engagements:      m.Engagements,
		Spend:            money(m.Spend),
		Conversions:      m.Conversions,
		Leads:            m.Leads,
		VideoViews:       m.VideoViews,
		ViralImpressions: m.ViralImpressions,
		CTR:              money(m.CTR),
		CPC:              money(m.CPC),
		CPM:              money(m.CPM),
		CVR:              money(m.CVR),
		CPA:              money(m.CPA),
		CPL:              money(m.CPL),
		ER:               money(m.ER),
		ROI:              money(m.ROI),
		ROAS:             money(m.ROAS),
		Revenue:          money(m.Revenue),
		ConversionRate:   money(m.ConversionRate),
		CreatedAt:        now,
	}
}
