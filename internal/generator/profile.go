package generator

import "strings"

// WebsiteType names a website archetype.
type WebsiteType string

const (
	WebsiteEcommerce WebsiteType = "ecommerce"
	WebsiteSaaS      WebsiteType = "saas"
	WebsiteBlog      WebsiteType = "blog"
	WebsiteCorporate WebsiteType = "corporate"
	WebsiteLeadGen   WebsiteType = "leadgen"
)

// WebsiteProfile holds the baseline rates of a website archetype.
type WebsiteProfile struct {
	Name                  string
	Type                  WebsiteType
	AvgDailySessions      float64
	ConversionRate        float64 // percent
	AvgSessionDuration    float64 // seconds
	BounceRate            float64 // percent
	PerformanceMultiplier float64
}

// WebsiteProfiles lists the supported website archetypes. The first entry
// is the default.
var WebsiteProfiles = []WebsiteProfile{
	{Name: "E-commerce Store", Type: WebsiteEcommerce, AvgDailySessions: 2500, ConversionRate: 2.5, AvgSessionDuration: 180, BounceRate: 45, PerformanceMultiplier: 1.3},
	{Name: "SaaS Product", Type: WebsiteSaaS, AvgDailySessions: 1800, ConversionRate: 4.2, AvgSessionDuration: 240, BounceRate: 38, PerformanceMultiplier: 1.5},
	{Name: "Content Blog", Type: WebsiteBlog, AvgDailySessions: 3500, ConversionRate: 0.8, AvgSessionDuration: 150, BounceRate: 58, PerformanceMultiplier: 1.1},
	{Name: "Corporate Website", Type: WebsiteCorporate, AvgDailySessions: 1200, ConversionRate: 3.8, AvgSessionDuration: 200, BounceRate: 42, PerformanceMultiplier: 1.0},
	{Name: "Lead Generation Site", Type: WebsiteLeadGen, AvgDailySessions: 1500, ConversionRate: 5.5, AvgSessionDuration: 220, BounceRate: 35, PerformanceMultiplier: 1.4},
}

// WebsiteProfileFor looks a profile up by type, case-insensitively. An empty
// type selects the default profile.
func WebsiteProfileFor(t string) (WebsiteProfile, bool) {
	if t == "" {
		return WebsiteProfiles[0], true
	}
	for _, p := range WebsiteProfiles {
		if strings.EqualFold(string(p.Type), t) {
			return p, true
		}
	}
	return WebsiteProfile{}, false
}

// Objective is the optimisation goal of a LinkedIn campaign.
type Objective string

const (
	ObjectiveAwareness  Objective = "awareness"
	ObjectiveEngagement Objective = "engagement"
	ObjectiveConversion Objective = "conversion"
)

// LinkedInCampaignProfile holds the baseline of a LinkedIn campaign.
type LinkedInCampaignProfile struct {
	Name                  string
	Objective             Objective
	Budget                float64 // daily budget, USD
	PerformanceMultiplier float64
}

// LinkedInProfiles lists the campaigns seeded into the LinkedIn tables.
var LinkedInProfiles = []LinkedInCampaignProfile{
	{Name: "Brand Awareness - Tech Leaders", Objective: ObjectiveAwareness, Budget: 150, PerformanceMultiplier: 1.2},
	{Name: "Lead Generation - Enterprise Sales", Objective: ObjectiveConversion, Budget: 300, PerformanceMultiplier: 1.5},
	{Name: "Engagement - Thought Leadership", Objective: ObjectiveEngagement, Budget: 100, PerformanceMultiplier: 0.9},
	{Name: "Product Launch - Innovation Series", Objective: ObjectiveAwareness, Budget: 250, PerformanceMultiplier: 1.8},
	{Name: "Webinar Promotion - Q1 Summit", Objective: ObjectiveConversion, Budget: 200, PerformanceMultiplier: 1.3},
}

// objectiveBaseline holds benchmark rates per objective. CTR is in percent,
// conversion rate is a fraction of clicks, CPC is in USD.
type objectiveBaseline struct {
	ctr            float64
	conversionRate float64
	cpc            float64
}

func baselineFor(o Objective) objectiveBaseline {
	switch o {
	case ObjectiveAwareness:
		return objectiveBaseline{ctr: 0.45, conversionRate: 0.015, cpc: 6.5}
	case ObjectiveEngagement:
		return objectiveBaseline{ctr: 0.75, conversionRate: 0.025, cpc: 5.5}
	default:
		return objectiveBaseline{ctr: 0.38, conversionRate: 0.035, cpc: 8.5}
	}
}
