package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"perfcore/internal/core/domain"
	"perfcore/internal/core/port"
)

// AnalyticsRepository implements port.AnalyticsRepository using pgxpool for PostgreSQL.
type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository returns a new repository instance.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}

// ListCampaigns returns all campaigns, oldest first.
func (r *AnalyticsRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, description, created_at FROM campaigns ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err := row.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
		return c, err
	})
}

// GetCampaign returns a campaign by id.
func (r *AnalyticsRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx, `SELECT id, name, description, created_at FROM campaigns WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCampaign inserts a campaign.
func (r *AnalyticsRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO campaigns (id, name, description, created_at) VALUES ($1,$2,$3,$4)`,
		c.ID, c.Name, c.Description, c.CreatedAt)
	return err
}

// FindGA4Connection returns the oldest GA4 connection of a campaign.
func (r *AnalyticsRepository) FindGA4Connection(ctx context.Context, campaignID string) (*domain.GA4Connection, error) {
	var c domain.GA4Connection
	err := r.pool.QueryRow(ctx, `
        SELECT id, campaign_id, property_id, property_name, website_url, display_name, method,
               access_token, refresh_token, is_primary, is_active, expires_at, connected_at, created_at
        FROM ga4_connections
        WHERE campaign_id = $1
        ORDER BY created_at
        LIMIT 1`, campaignID).
		Scan(&c.ID, &c.CampaignID, &c.PropertyID, &c.PropertyName, &c.WebsiteURL, &c.DisplayName, &c.Method,
			&c.AccessToken, &c.RefreshToken, &c.IsPrimary, &c.IsActive, &c.ExpiresAt, &c.ConnectedAt, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateGA4Connection inserts a GA4 connection.
func (r *AnalyticsRepository) CreateGA4Connection(ctx context.Context, c *domain.GA4Connection) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO ga4_connections
    (id, campaign_id, property_id, property_name, website_url, display_name, method,
     access_token, refresh_token, is_primary, is_active, expires_at, connected_at, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		c.ID, c.CampaignID, c.PropertyID, c.PropertyName, c.WebsiteURL, c.DisplayName, c.Method,
		c.AccessToken, c.RefreshToken, c.IsPrimary, c.IsActive, c.ExpiresAt, c.ConnectedAt, c.CreatedAt)
	return err
}

// FindLinkedInConnection returns the oldest LinkedIn connection of a campaign.
func (r *AnalyticsRepository) FindLinkedInConnection(ctx context.Context, campaignID string) (*domain.LinkedInConnection, error) {
	var c domain.LinkedInConnection
	err := r.pool.QueryRow(ctx, `
        SELECT id, campaign_id, ad_account_id, ad_account_name, access_token, refresh_token,
               method, expires_at, connected_at, created_at
        FROM linkedin_connections
        WHERE campaign_id = $1
        ORDER BY created_at
        LIMIT 1`, campaignID).
		Scan(&c.ID, &c.CampaignID, &c.AdAccountID, &c.AdAccountName, &c.AccessToken, &c.RefreshToken,
			&c.Method, &c.ExpiresAt, &c.ConnectedAt, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateLinkedInConnection inserts a LinkedIn connection.
func (r *AnalyticsRepository) CreateLinkedInConnection(ctx context.Context, c *domain.LinkedInConnection) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO linkedin_connections
    (id, campaign_id, ad_account_id, ad_account_name, access_token, refresh_token,
     method, expires_at, connected_at, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		c.ID, c.CampaignID, c.AdAccountID, c.AdAccountName, c.AccessToken, c.RefreshToken,
		c.Method, c.ExpiresAt, c.ConnectedAt, c.CreatedAt)
	return err
}

// InsertPerformanceData inserts one day of campaign metrics.
func (r *AnalyticsRepository) InsertPerformanceData(ctx context.Context, p *domain.PerformanceData) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO performance_data
    (id, campaign_id, date, impressions, clicks, spend, conversions, reach, engagement, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		p.ID, p.CampaignID, p.Date, p.Impressions, p.Clicks, p.Spend, p.Conversions, p.Reach, p.Engagement, p.CreatedAt)
	return err
}

// InsertLinkedInImportMetric inserts a LinkedIn import record.
func (r *AnalyticsRepository) InsertLinkedInImportMetric(ctx context.Context, m *domain.LinkedInImportMetric) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO linkedin_import_metrics
    (id, session_id, campaign_id, campaign_name, status, start_date, end_date, imported_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		m.ID, m.SessionID, m.CampaignID, m.CampaignName, m.Status, m.StartDate, m.EndDate, m.ImportedAt)
	return err
}

// InsertLinkedInAdPerformance inserts one day of LinkedIn ad metrics.
func (r *AnalyticsRepository) InsertLinkedInAdPerformance(ctx context.Context, p *domain.LinkedInAdPerformance) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO linkedin_ad_performance
    (id, session_id, campaign_id, date, impressions, reach, clicks, engagements, spend, conversions,
     leads, video_views, viral_impressions, ctr, cpc, cpm, cvr, cpa, cpl, er, roi, roas, revenue,
     conversion_rate, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25)`,
		p.ID, p.SessionID, p.CampaignID, p.Date, p.Impressions, p.Reach, p.Clicks, p.Engagements, p.Spend, p.Conversions,
		p.Leads, p.VideoViews, p.ViralImpressions, p.CTR, p.CPC, p.CPM, p.CVR, p.CPA, p.CPL, p.ER, p.ROI, p.ROAS, p.Revenue,
		p.ConversionRate, p.CreatedAt)
	return err
}

// GetStats returns aggregated performance data for campaigns.
func (r *AnalyticsRepository) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	from, to := req.Bounds()
	args := []interface{}{from.Format(time.DateOnly), to.Format(time.DateOnly)}
	whereCampaign := ""
	if req.CampaignID != nil {
		whereCampaign = "AND campaign_id = $3"
		args = append(args, *req.CampaignID)
	}
	query := fmt.Sprintf(`
        SELECT count(DISTINCT date),
               COALESCE(sum(impressions),0),
               COALESCE(sum(clicks),0),
               COALESCE(sum(conversions),0),
               COALESCE(sum(reach),0),
               COALESCE(sum(engagement),0),
               COALESCE(sum(spend),0)
        FROM performance_data
        WHERE date >= $1::date AND date <= $2::date %s`, whereCampaign)
	var s port.StatsResp
	err := r.pool.QueryRow(ctx, query, args...).
		Scan(&s.Days, &s.Impressions, &s.Clicks, &s.Conversions, &s.Reach, &s.Engagement, &s.Spend)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
