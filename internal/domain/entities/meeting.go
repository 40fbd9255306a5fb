package entities

import (
	"time"

	"github.com/google/uuid"
)

// MeetingStatus represents the current status of a meeting
type MeetingStatus string

const (
	MeetingStatusScheduled MeetingStatus = "Scheduled"
	MeetingStatusPostponed MeetingStatus = "Postponed"
	MeetingStatusCancelled MeetingStatus = "Cancelled"
	MeetingStatusCompleted MeetingStatus = "Completed"
)

// IsValid checks if the meeting status is valid
func (s MeetingStatus) IsValid() bool {
	switch s {
	case MeetingStatusScheduled, MeetingStatusPostponed, MeetingStatusCancelled, MeetingStatusCompleted:
		return true
	}
	return false
}

// Meeting represents a meeting record owned by the upstream API
type Meeting struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Status      MeetingStatus `json:"status"`
	StartTime   time.Time     `json:"start_time"`
	MeetingLink *string       `json:"meeting_link,omitempty"`
	CompanyID   *uuid.UUID    `json:"company_id,omitempty"`
	UpdatedBy   string        `json:"updated_by,omitempty"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// NewMeeting creates a meeting draft with upstream defaults.
func NewMeeting(title string, startTime time.Time) *Meeting {
	return &Meeting{
		Title:     title,
		Status:    MeetingStatusScheduled,
		StartTime: startTime,
		UpdatedAt: time.Now(),
	}
}

// IsPersisted reports whether the meeting already exists upstream.
func (m *Meeting) IsPersisted() bool {
	return m.ID != uuid.Nil
}

// StampAudit records the last editor before a write is sent upstream.
func (m *Meeting) StampAudit(editor string, at time.Time) {
	m.UpdatedBy = editor
	m.UpdatedAt = at
}

// Validate validates meeting data
func (m *Meeting) Validate() error {
	if m.Title == "" {
		return ErrInvalidTitle
	}
	if !m.Status.IsValid() {
		return ErrInvalidStatus
	}
	if m.StartTime.IsZero() {
		return ErrInvalidStartTime
	}
	return nil
}
