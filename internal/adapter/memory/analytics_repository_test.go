package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfcore/internal/core/domain"
	"perfcore/internal/core/port"
)

func day(d int) time.Time {
	return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
}

func TestCampaignLookups(t *testing.T) {
	ctx := context.Background()
	repo := NewAnalyticsRepository()

	got, err := repo.GetCampaign(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	later := domain.Campaign{ID: "b", Name: "later", CreatedAt: day(2)}
	earlier := domain.Campaign{ID: "a", Name: "earlier", CreatedAt: day(1)}
	require.NoError(t, repo.CreateCampaign(ctx, &later))
	require.NoError(t, repo.CreateCampaign(ctx, &earlier))

	list, err := repo.ListCampaigns(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)

	got, err = repo.GetCampaign(ctx, "b")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "later", got.Name)
}

func TestConnectionLookups(t *testing.T) {
	ctx := context.Background()
	repo := NewAnalyticsRepository()

	ga4, err := repo.FindGA4Connection(ctx, "c1")
	require.NoError(t, err)
	assert.Nil(t, ga4)

	require.NoError(t, repo.CreateGA4Connection(ctx, &domain.GA4Connection{ID: "g1", CampaignID: "c1"}))
	require.NoError(t, repo.CreateLinkedInConnection(ctx, &domain.LinkedInConnection{ID: "l1", CampaignID: "c1"}))

	ga4, err = repo.FindGA4Connection(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, ga4)
	assert.Equal(t, "g1", ga4.ID)

	li, err := repo.FindLinkedInConnection(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, li)
	assert.Equal(t, "l1", li.ID)

	li, err = repo.FindLinkedInConnection(ctx, "c2")
	require.NoError(t, err)
	assert.Nil(t, li)
}

func TestGetStats(t *testing.T) {
	ctx := context.Background()
	repo := NewAnalyticsRepository()

	rows := []domain.PerformanceData{
		{CampaignID: "a", Date: day(1), Impressions: 100, Clicks: 2, Spend: decimal.RequireFromString("10.50"), Conversions: 1, Reach: 80, Engagement: 40},
		{CampaignID: "a", Date: day(2), Impressions: 200, Clicks: 4, Spend: decimal.RequireFromString("21.00"), Conversions: 2, Reach: 90, Engagement: 50},
		{CampaignID: "b", Date: day(2), Impressions: 50, Clicks: 1, Spend: decimal.RequireFromString("5.25"), Reach: 10, Engagement: 5},
		{CampaignID: "a", Date: day(5), Impressions: 999, Clicks: 9, Spend: decimal.RequireFromString("99")},
	}
	for i := range rows {
		require.NoError(t, repo.InsertPerformanceData(ctx, &rows[i]))
	}

	all, err := repo.GetStats(ctx, port.StatsReq{From: day(1), To: day(2)})
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Days)
	assert.Equal(t, int64(350), all.Impressions)
	assert.Equal(t, int64(7), all.Clicks)
	assert.Equal(t, int64(3), all.Conversions)
	assert.Equal(t, int64(180), all.Reach)
	assert.Equal(t, int64(95), all.Engagement)
	assert.True(t, decimal.RequireFromString("36.75").Equal(all.Spend), all.Spend.String())

	id := "a"
	one, err := repo.GetStats(ctx, port.StatsReq{From: day(1), To: day(31), CampaignID: &id})
	require.NoError(t, err)
	assert.Equal(t, int64(3), one.Days)
	assert.Equal(t, int64(1299), one.Impressions)

	none, err := repo.GetStats(ctx, port.StatsReq{From: day(10), To: day(20)})
	require.NoError(t, err)
	assert.Zero(t, none.Impressions)
	assert.True(t, none.Spend.IsZero())
}

func TestGetStatsComparesCalendarDays(t *testing.T) {
	ctx := context.Background()
	repo := NewAnalyticsRepository()
	require.NoError(t, repo.InsertPerformanceData(ctx, &domain.PerformanceData{
		ID: "p1", CampaignID: "c", Date: day(1), Impressions: 100, Spend: decimal.NewFromInt(5),
	}))
	require.NoError(t, repo.InsertPerformanceData(ctx, &domain.PerformanceData{
		ID: "p2", CampaignID: "c", Date: day(6), Impressions: 50, Spend: decimal.NewFromInt(1),
	}))

	stats, err := repo.GetStats(ctx, port.StatsReq{
		From: day(1).Add(10 * time.Hour),
		To:   day(6).Add(-time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Days)
	assert.Equal(t, int64(100), stats.Impressions)

	stats, err = repo.GetStats(ctx, port.StatsReq{
		From: day(1).Add(23 * time.Hour),
		To:   day(6).Add(8 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Days)
	assert.Equal(t, int64(150), stats.Impressions)
}

func TestCounts(t *testing.T) {
	ctx := context.Background()
	repo := NewAnalyticsRepository()
	require.NoError(t, repo.InsertLinkedInImportMetric(ctx, &domain.LinkedInImportMetric{ID: "1"}))
	require.NoError(t, repo.InsertLinkedInAdPerformance(ctx, &domain.LinkedInAdPerformance{ID: "1"}))
	require.NoError(t, repo.InsertLinkedInAdPerformance(ctx, &domain.LinkedInAdPerformance{ID: "2"}))

	counts := repo.Counts()
	assert.Equal(t, 1, counts["linkedin_import_metrics"])
	assert.Equal(t, 2, counts["linkedin_ad_performance"])
	assert.Equal(t, 0, counts["campaigns"])
}
