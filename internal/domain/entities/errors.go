package entities

import "errors"

// Domain errors
var (
	// Record errors
	ErrInvalidTitle     = errors.New("invalid title")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrInvalidStartTime = errors.New("invalid start time")
	ErrTaskNotFound     = errors.New("task not found")
	ErrMeetingNotFound  = errors.New("meeting not found")

	// Calendar errors
	ErrInvalidItemID = errors.New("invalid calendar item id")
)
