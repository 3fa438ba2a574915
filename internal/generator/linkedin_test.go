package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkedInDailyBounds(t *testing.T) {
	g := New(42).WithClock(fixedClock(wednesday))

	for _, p := range LinkedInProfiles {
		for day := 0; day < 30; day++ {
			m := g.LinkedInDaily(p, day)

			require.Positive(t, m.Impressions, "%s day %d", p.Name, day)
			assert.GreaterOrEqual(t, m.Spend, p.Budget*0.85-0.01)
			assert.LessOrEqual(t, m.Spend, p.Budget*1.15+0.01)

			assert.LessOrEqual(t, m.Reach, m.Impressions)
			assert.LessOrEqual(t, m.Clicks, m.Impressions)
			assert.LessOrEqual(t, m.Engagements, m.Impressions)
			assert.LessOrEqual(t, m.VideoViews, m.Impressions)
			assert.LessOrEqual(t, m.ViralImpressions, m.Impressions)
			assert.LessOrEqual(t, m.Conversions, m.Clicks)
			assert.LessOrEqual(t, m.Leads, m.Conversions)

			assert.GreaterOrEqual(t, m.CTR, 0.0)
			assert.Positive(t, m.CPC)
			assert.Positive(t, m.CPM)
			assert.GreaterOrEqual(t, m.CPA, 0.0)
			assert.GreaterOrEqual(t, m.CPL, 0.0)
			assert.GreaterOrEqual(t, m.ROAS, 0.0)
			assert.GreaterOrEqual(t, m.Revenue, 0.0)
			assert.Equal(t, m.CVR, m.ConversionRate)
		}
	}
}

func TestLinkedInDailyDerivedRatios(t *testing.T) {
	g := New(1234).WithClock(fixedClock(wednesday))

	for _, p := range LinkedInProfiles {
		for day := 0; day < 30; day++ {
			m := g.LinkedInDaily(p, day)

			if m.Clicks > 0 {
				tolerance := 0.005*float64(m.Clicks) + 0.01
				assert.InDelta(t, m.Spend, m.CPC*float64(m.Clicks), tolerance, "cpc x clicks")
			}
			if m.Conversions > 0 {
				tolerance := 0.005*float64(m.Conversions) + 0.01
				assert.InDelta(t, m.Spend, m.CPA*float64(m.Conversions), tolerance, "cpa x conversions")
			}
			assert.InDelta(t, m.Revenue, m.ROAS*m.Spend, 0.005*m.Spend+0.005*m.ROAS+0.02, "roas x spend")
			if m.Revenue > 0 {
				assert.InDelta(t, (m.Revenue-m.Spend)/m.Spend*100, m.ROI, 0.25)
			} else {
				assert.Zero(t, m.ROI)
				assert.Zero(t, m.CPA)
			}
		}
	}
}

func TestLinkedInDailyIsReproducible(t *testing.T) {
	a := New(77).WithClock(fixedClock(wednesday))
	b := New(77).WithClock(fixedClock(wednesday))

	for _, p := range LinkedInProfiles {
		assert.Equal(t, a.LinkedInDaily(p, 4), b.LinkedInDaily(p, 4))
	}
}

func TestBaselineFor(t *testing.T) {
	assert.Equal(t, 0.45, baselineFor(ObjectiveAwareness).ctr)
	assert.Equal(t, 0.75, baselineFor(ObjectiveEngagement).ctr)
	assert.Equal(t, 8.5, baselineFor(ObjectiveConversion).cpc)
}
