package httpadapter

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"perfcore/internal/core/port"
)

const defaultSeedDays = 30

type seedGA4Request struct {
	Days        int    `json:"days"`
	WebsiteType string `json:"websiteType"`
}

type ga4Totals struct {
	Sessions          int64  `json:"sessions"`
	Users             int64  `json:"users"`
	Pageviews         int64  `json:"pageviews"`
	Conversions       int64  `json:"conversions"`
	AdImpressions     int64  `json:"adImpressions"`
	AdClicks          int64  `json:"adClicks"`
	AdSpend           string `json:"adSpend"`
	AvgCTR            string `json:"avgCTR"`
	AvgConversionRate string `json:"avgConversionRate"`
	AvgCPC            string `json:"avgCPC"`
}

type ga4SeedSummary struct {
	CampaignID   string    `json:"campaignId"`
	PropertyName string    `json:"propertyName"`
	WebsiteType  string    `json:"websiteType"`
	TimeRange    string    `json:"timeRange"`
	TotalRecords int       `json:"totalRecords"`
	Totals       ga4Totals `json:"totals"`
}

type seedResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Summary ga4SeedSummary `json:"summary"`
}

// handleSeedGA4 generates GA4 history for the campaign in the path. The
// optional body {days, websiteType} defaults to 30 days of the default
// website profile. Unknown campaigns result in HTTP 404.
func (h *Handler) handleSeedGA4(w http.ResponseWriter, r *http.Request) {
	var req seedGA4Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Days == 0 {
		req.Days = defaultSeedDays
	}

	s, err := h.svc.SeedGA4(r.Context(), port.SeedGA4Req{
		CampaignID:  chi.URLParam(r, "campaignID"),
		WebsiteType: req.WebsiteType,
		Days:        req.Days,
	})
	if err != nil {
		h.writeError(w, "seed GA4", err)
		return
	}

	h.writeJSON(w, http.StatusOK, seedResponse{
		Success: true,
		Message: fmt.Sprintf("seeded %d days of GA4 metrics", s.Records),
		Summary: ga4SeedSummary{
			CampaignID:   s.CampaignID,
			PropertyName: s.PropertyName,
			WebsiteType:  s.WebsiteType,
			TimeRange:    fmt.Sprintf("Last %d days", s.Days),
			TotalRecords: s.Records,
			Totals: ga4Totals{
				Sessions:          s.Sessions,
				Users:             s.Users,
				Pageviews:         s.Pageviews,
				Conversions:       s.Conversions,
				AdImpressions:     s.Impressions,
				AdClicks:          s.Clicks,
				AdSpend:           "$" + s.Spend.StringFixed(2),
				AvgCTR:            s.AvgCTR().StringFixed(2) + "%",
				AvgConversionRate: s.AvgConversionRate().StringFixed(2) + "%",
				AvgCPC:            "$" + s.AvgCPC().StringFixed(2),
			},
		},
	})
}
