package presenter

import (
	"github.com/google/uuid"

	"github.com/incial/Incial/internal/adapter/dto/meeting"
	"github.com/incial/Incial/internal/domain/entities"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting, companies entities.CompanyMap) *meeting.MeetingResponse {
	if m == nil {
		return nil
	}

	response := &meeting.MeetingResponse{
		Title:       m.Title,
		Status:      string(m.Status),
		StartTime:   m.StartTime,
		MeetingLink: m.MeetingLink,
		Company:     companies.NameFor(m.CompanyID),
		UpdatedBy:   m.UpdatedBy,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.ID != uuid.Nil {
		response.ID = m.ID.String()
	}
	if m.CompanyID != nil {
		id := m.CompanyID.String()
		response.CompanyID = &id
	}
	return response
}

// ToMeetingListResponse converts a meeting collection
func ToMeetingListResponse(meetings []*entities.Meeting, companies entities.CompanyMap) *meeting.MeetingListResponse {
	out := make([]*meeting.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, ToMeetingResponse(m, companies))
	}
	return &meeting.MeetingListResponse{Meetings: out, Total: len(out)}
}
