package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PerformanceData is one day of generic campaign metrics.
// Date carries only the calendar day (UTC midnight).
type PerformanceData struct {
	ID          string
	CampaignID  string
	Date        time.Time
	Impressions int64
	Clicks      int64
	Spend       decimal.Decimal
	Conversions int64
	Reach       int64
	Engagement  int64
	CreatedAt   time.Time
}

// LinkedInImportMetric records that a LinkedIn campaign was imported for a
// given day window.
type LinkedInImportMetric struct {
	ID           string
	SessionID    string // LinkedInConnection.ID
	CampaignID   string // platform campaign id, e.g. lc_xxx
	CampaignName string
	Status       string
	StartDate    time.Time
	EndDate      time.Time
	ImportedAt   time.Time
}

// LinkedInAdPerformance is one day of LinkedIn ad metrics. Percentages
// (CTR, CVR, ER, ROI, ConversionRate) are expressed in percent.
type LinkedInAdPerformance struct {
	ID               string
	SessionID        string
	CampaignID       string
	Date             time.Time
	Impressions      int64
	Reach            int64
	Clicks           int64
	Engagements      int64
	Spend            decimal.Decimal
	Conversions      int64
	Leads            int64
	VideoViews       int64
	ViralImpressions int64
	CTR              decimal.Decimal
	CPC              decimal.Decimal
	CPM              decimal.Decimal
	CVR              decimal.Decimal
	CPA              decimal.Decimal
	CPL              decimal.Decimal
	ER               decimal.Decimal
	ROI              decimal.Decimal
	ROAS             decimal.Decimal
	Revenue          decimal.Decimal
	ConversionRate   decimal.Decimal
	CreatedAt        time.Time
}
