package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"perfcore/internal/core/domain"
)

type campaignDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toCampaignDTO(c domain.Campaign) campaignDTO {
	return campaignDTO{ID: c.ID, Name: c.Name, Description: c.Description, CreatedAt: c.CreatedAt}
}

// handleListCampaigns returns every campaign as a JSON array.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, "list campaigns", err)
		return
	}
	out := make([]campaignDTO, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, toCampaignDTO(c))
	}
	h.writeJSON(w, http.StatusOK, out)
}

// handleCreateCampaign decodes {name, description} and responds with the
// created campaign and HTTP 201. A missing name results in HTTP 400.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), req.Name, req.Description)
	if err != nil {
		h.writeError(w, "create campaign", err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignDTO(*c))
}
