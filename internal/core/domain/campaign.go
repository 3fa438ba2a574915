package domain

import "time"

// Campaign is the parent record every connection and metric row hangs off.
type Campaign struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}
