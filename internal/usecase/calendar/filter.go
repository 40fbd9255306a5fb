package calendar

import (
	"strings"

	"github.com/incial/Incial/internal/domain/entities"
)

// Filter selects which calendar items a view renders
type Filter struct {
	ShowTasks    bool
	ShowMeetings bool
	Status       string
	Search       string
}

// DefaultFilter shows everything
func DefaultFilter() Filter {
	return Filter{ShowTasks: true, ShowMeetings: true}
}

// Allows reports whether an item passes the type toggles, the status filter
// and the search text.
func (f Filter) Allows(item *entities.CalendarItem) bool {
	switch item.Type {
	case entities.ItemTypeTask:
		if !f.ShowTasks {
			return false
		}
	case entities.ItemTypeMeeting:
		if !f.ShowMeetings {
			return false
		}
	}

	if f.Status != "" && item.Status != f.Status {
		return false
	}

	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(item.Title), needle) &&
			!strings.Contains(strings.ToLower(item.Company), needle) {
			return false
		}
	}

	return true
}
