package httpadapter

import (
	"net/http"
	"time"

	"perfcore/internal/core/port"
)

const defaultStatsWindow = 30

// parseDay accepts RFC3339 timestamps and plain YYYY-MM-DD dates.
func parseDay(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// handleStatsOverview returns aggregated performance data over a period.
// It accepts optional `from`, `to` and `campaign_id` query parameters. If
// no period is provided, it defaults to the last 30 days. Invalid
// parameters result in HTTP 400. Internal errors produce HTTP 500.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		req     port.StatsReq
		err     error
	)

	if toStr != "" {
		req.To, err = parseDay(toStr)
		if err != nil {
			http.Error(w, "invalid 'to' date", http.StatusBadRequest)
			return
		}
	} else {
		req.To = time.Now().UTC()
	}

	if fromStr != "" {
		req.From, err = parseDay(fromStr)
		if err != nil {
			http.Error(w, "invalid 'from' date", http.StatusBadRequest)
			return
		}
	} else {
		y, m, d := req.To.UTC().Date()
		req.From = time.Date(y, m, d-defaultStatsWindow, 0, 0, 0, 0, time.UTC)
	}

	if req.From.After(req.To) {
		http.Error(w, "'from' must not be after 'to'", http.StatusBadRequest)
		return
	}

	if cid := q.Get("campaign_id"); cid != "" {
		req.CampaignID = &cid
	}

	stats, err := h.svc.GetStats(r.Context(), req)
	if err != nil {
		h.writeError(w, "stats", err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}
