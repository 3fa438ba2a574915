package domain

import "time"

// Connection methods as stored in the method column.
const (
	MethodAccessToken = "access_token"
	MethodOAuth       = "oauth"
)

// GA4Connection links a campaign to a Google Analytics 4 property.
type GA4Connection struct {
	ID           string
	CampaignID   string
	PropertyID   string
	PropertyName string
	WebsiteURL   string
	DisplayName  string
	Method       string
	AccessToken  string
	RefreshToken string
	IsPrimary    bool
	IsActive     bool
	ExpiresAt    time.Time
	ConnectedAt  time.Time
	CreatedAt    time.Time
}

// LinkedInConnection links a campaign to a LinkedIn ad account. Its ID is
// used as the session id of imported LinkedIn metrics.
type LinkedInConnection struct {
	ID            string
	CampaignID    string
	AdAccountID   string
	AdAccountName string
	AccessToken   string
	RefreshToken  string
	Method        string
	ExpiresAt     time.Time
	ConnectedAt   time.Time
	CreatedAt     time.Time
}
