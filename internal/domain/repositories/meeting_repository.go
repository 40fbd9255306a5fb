package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/incial/Incial/internal/domain/entities"
)

// MeetingUpdate carries the partial fields of a meeting update. Nil fields
// are left untouched upstream.
type MeetingUpdate struct {
	Title       *string
	Status      *entities.MeetingStatus
	StartTime   *time.Time
	MeetingLink *string
	CompanyID   *uuid.UUID
	UpdatedBy   string
}

// MeetingRepository defines the interface for meeting data access on the upstream API
type MeetingRepository interface {
	// GetAll retrieves every meeting record
	GetAll(ctx context.Context) ([]*entities.Meeting, error)

	// Create creates a new meeting and returns the stored record
	Create(ctx context.Context, meeting *entities.Meeting) (*entities.Meeting, error)

	// Update applies a partial update to an existing meeting
	Update(ctx context.Context, id uuid.UUID, update MeetingUpdate) (*entities.Meeting, error)

	// Delete removes a meeting
	Delete(ctx context.Context, id uuid.UUID) error
}
