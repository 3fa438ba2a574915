package generator

import "time"

const (
	ga4WeekendDampening = 0.75
	ga4TrendPerDay      = 0.008
	adSessionShare      = 0.03 // share of sessions arriving from ads
	adClickThrough      = 0.02
)

// GA4DailyMetrics is one day of website analytics.
type GA4DailyMetrics struct {
	Date time.Time

	Sessions        int64
	Users           int64
	NewUsers        int64
	ActiveUsers     int64
	Pageviews       int64
	ScreenPageViews int64

	BounceRate                float64 // fraction
	EngagementRate            float64 // fraction
	AverageSessionDuration    int64   // seconds
	UserEngagementDuration    int64   // seconds
	EngagedSessions           int64
	EventsPerSession          float64
	ScreenPageViewsPerSession float64

	Conversions int64
	EventCount  int64

	Impressions int64
	Clicks      int64
	CTR         float64 // percent
	CPC         float64 // USD
}

// GA4Daily generates website metrics for the day dayOffset days ago.
func (g *Generator) GA4Daily(p WebsiteProfile, dayOffset int) GA4DailyMetrics {
	date := g.Date(dayOffset)
	total := p.PerformanceMultiplier *
		weekendFactor(date, ga4WeekendDampening) *
		trendFactor(dayOffset, ga4TrendPerDay) *
		g.noise()

	m := GA4DailyMetrics{Date: date}

	m.Sessions = count(p.AvgDailySessions * total)
	returning := g.uniform(0.3, 0.2)
	m.Users = count(float64(m.Sessions) * g.uniform(0.85, 0.1))
	m.NewUsers = count(float64(m.Users) * (1 - returning))
	m.ActiveUsers = count(float64(m.Users) * g.uniform(0.7, 0.2))

	m.Pageviews = count(float64(m.Sessions) * g.uniform(2.5, 2.5))
	m.ScreenPageViews = m.Pageviews
	m.ScreenPageViewsPerSession = roundTo(ratio(float64(m.Pageviews), float64(m.Sessions)), 2)

	m.BounceRate = roundTo(p.BounceRate*g.uniform(0.9, 0.2)/100, 4)
	m.EngagementRate = roundTo(1-m.BounceRate, 4)
	m.EngagedSessions = count(float64(m.Sessions) * m.EngagementRate)
	m.AverageSessionDuration = count(p.AvgSessionDuration * g.uniform(0.8, 0.4))
	m.UserEngagementDuration = m.AverageSessionDuration * m.Sessions

	m.EventsPerSession = roundTo(g.uniform(4, 6), 2)
	m.EventCount = count(float64(m.Sessions) * m.EventsPerSession)

	m.Conversions = count(float64(m.Sessions) * (p.ConversionRate / 100) * g.uniform(0.8, 0.4))

	adSessions := count(float64(m.Sessions) * adSessionShare)
	m.Impressions = count(float64(adSessions) / adClickThrough)
	m.Clicks = adSessions
	m.CTR = roundTo(ratio(float64(m.Clicks), float64(m.Impressions))*100, 2)
	m.CPC = roundTo(g.uniform(5, 10), 2)

	return m
}

// Spend is the ad spend implied by clicks and cost per click.
func (m GA4DailyMetrics) Spend() float64 {
	return float64(m.Clicks) * m.CPC
}
