package entities

import "time"

type CalendarFeedRequest struct {
	Name     string `json:"name"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Active   *bool  `json:"active"`
}

type CalendarFeedResponse struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Platform     string     `json:"platform"`
	URL          string     `json:"url"`
	Active       bool       `json:"active"`
	SyncStatus   string     `json:"sync_status"`
	LastSync     *time.Time `json:"last_sync,omitempty"`
	ErrorMessage string     `json:"error_message,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type CalendarFeedList struct {
	Success   bool                   `json:"success"`
	Calendars []CalendarFeedResponse `json:"calendars"`
	Total     int                    `json:"total"`
	Active    int                    `json:"active"`
}

type SyncResult struct {
	Success     bool   `json:"success"`
	Platform    string `json:"platform"`
	EventsSeen  int    `json:"events_seen"`
	DatesAdded  int    `json:"dates_added"`
	SyncedAt    string `json:"synced_at"`
	ErrorDetail string `json:"error_detail,omitempty"`
}
