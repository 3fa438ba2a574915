package generator

import "time"

const (
	linkedInWeekendDampening = 0.7
	linkedInTrendPerDay      = 0.01
	closeRate                = 0.3
)

// LinkedInDailyMetrics is one day of LinkedIn ad performance. Rates named
// CTR, CVR, ER, ROI and ConversionRate are percentages.
type LinkedInDailyMetrics struct {
	Date time.Time

	Impressions      int64
	Reach            int64
	Clicks           int64
	Engagements      int64
	Spend            float64
	Conversions      int64
	Leads            int64
	VideoViews       int64
	ViralImpressions int64

	CTR            float64
	CPC            float64
	CPM            float64
	CVR            float64
	CPA            float64
	CPL            float64
	ER             float64
	ROI            float64
	ROAS           float64
	Revenue        float64
	ConversionRate float64
}

// LinkedInDaily generates ad metrics for the day dayOffset days ago.
func (g *Generator) LinkedInDaily(p LinkedInCampaignProfile, dayOffset int) LinkedInDailyMetrics {
	date := g.Date(dayOffset)
	total := p.PerformanceMultiplier *
		weekendFactor(date, linkedInWeekendDampening) *
		trendFactor(dayOffset, linkedInTrendPerDay) *
		g.noise()
	base := baselineFor(p.Objective)

	spend := p.Budget * g.uniform(0.85, 0.3)
	cpm := g.uniform(25, 45) * total

	impressions := count(ratio(spend, cpm) * 1000)
	reach := count(float64(impressions) * g.uniform(0.6, 0.2))

	ctr := base.ctr * total
	clicks := count(float64(impressions) * ctr / 100)

	cpc := base.cpc * total
	if clicks > 0 {
		cpc = spend / float64(clicks)
	}

	engagementRate := g.uniform(2, 4) * total
	engagements := count(float64(impressions) * engagementRate / 100)

	cvr := base.conversionRate * total
	conversions := count(float64(clicks) * cvr)
	leads := count(float64(conversions) * g.uniform(0.6, 0.2))

	videoViews := count(float64(impressions) * g.uniform(0.3, 0.2))
	viral := count(float64(impressions) * g.uniform(0.05, 0.1))

	revenue := float64(conversions) * g.uniform(2000, 3000) * closeRate

	var cpa, cpl, roi, roas float64
	if conversions > 0 {
		cpa = spend / float64(conversions)
	}
	if leads > 0 {
		cpl = spend / float64(leads)
	}
	if revenue > 0 {
		roi = (revenue - spend) / spend * 100
	}
	if spend > 0 {
		roas = revenue / spend
	}

	return LinkedInDailyMetrics{
		Date:             date,
		Impressions:      impressions,
		Reach:            reach,
		Clicks:           clicks,
		Engagements:      engagements,
		Spend:            roundTo(spend, 2),
		Conversions:      conversions,
		Leads:            leads,
		VideoViews:       videoViews,
		ViralImpressions: viral,
		CTR:              roundTo(ctr, 2),
		CPC:              roundTo(cpc, 2),
		CPM:              roundTo(cpm, 2),
		CVR:              roundTo(cvr*100, 2),
		CPA:              roundTo(cpa, 2),
		CPL:              roundTo(cpl, 2),
		ER:               roundTo(engagementRate, 2),
		ROI:              roundTo(roi, 2),
		ROAS:             roundTo(roas, 2),
		Revenue:          roundTo(revenue, 2),
		ConversionRate:   roundTo(cvr*100, 2),
	}
}
