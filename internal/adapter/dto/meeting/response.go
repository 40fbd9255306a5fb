package meeting

import "time"

// MeetingResponse represents a meeting in responses
type MeetingResponse struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Status      string    `json:"status"`
	StartTime   time.Time `json:"start_time"`
	MeetingLink *string   `json:"meeting_link,omitempty"`
	CompanyID   *string   `json:"company_id,omitempty"`
	Company     string    `json:"company,omitempty"`
	UpdatedBy   string    `json:"updated_by,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MeetingListResponse represents a list of meetings
type MeetingListResponse struct {
	Meetings []*MeetingResponse `json:"meetings"`
	Total    int                `json:"total"`
}
