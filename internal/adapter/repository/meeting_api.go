package repository

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/incial/Incial/internal/domain/entities"
	"github.com/incial/Incial/internal/domain/repositories"
)

// MeetingAPI implements repositories.MeetingRepository against the upstream REST API
type MeetingAPI struct {
	client *Client
}

// NewMeetingAPI creates a new upstream meeting repository
func NewMeetingAPI(client *Client) *MeetingAPI {
	return &MeetingAPI{client: client}
}

// GetAll retrieves every meeting record
func (r *MeetingAPI) GetAll(ctx context.Context) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	req := r.client.http.R().
		SetContext(ctx).
		SetResult(&meetings)

	if _, err := r.client.execute(req, http.MethodGet, "/meetings", "meetings"); err != nil {
		return nil, err
	}
	return meetings, nil
}

// Create creates a new meeting and returns the stored record
func (r *MeetingAPI) Create(ctx context.Context, meeting *entities.Meeting) (*entities.Meeting, error) {
	var created entities.Meeting
	req := r.client.http.R().
		SetContext(ctx).
		SetBody(meeting).
		SetResult(&created)

	if _, err := r.client.execute(req, http.MethodPost, "/meetings", "meetings"); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update applies a partial update to an existing meeting
func (r *MeetingAPI) Update(ctx context.Context, id uuid.UUID, update repositories.MeetingUpdate) (*entities.Meeting, error) {
	body := map[string]interface{}{}
	if update.Title != nil {
		body["title"] = *update.Title
	}
	if update.Status != nil {
		body["status"] = *update.Status
	}
	if update.StartTime != nil {
		body["start_time"] = update.StartTime.Format(time.RFC3339)
	}
	if update.MeetingLink != nil {
		body["meeting_link"] = *update.MeetingLink
	}
	if update.CompanyID != nil {
		body["company_id"] = update.CompanyID.String()
	}
	if update.UpdatedBy != "" {
		body["updated_by"] = update.UpdatedBy
	}

	var updated entities.Meeting
	req := r.client.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&updated)

	if _, err := r.client.execute(req, http.MethodPatch, "/meetings/"+id.String(), "meetings"); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a meeting
func (r *MeetingAPI) Delete(ctx context.Context, id uuid.UUID) error {
	req := r.client.http.R().SetContext(ctx)
	_, err := r.client.execute(req, http.MethodDelete, "/meetings/"+id.String(), "meetings")
	return err
}
