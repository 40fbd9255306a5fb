package calendarview

import (
	"time"

	"github.com/incial/Incial/internal/adapter/dto/meeting"
	"github.com/incial/Incial/internal/adapter/dto/task"
)

// ItemResponse represents a calendar item in responses
type ItemResponse struct {
	ID       string                   `json:"id"`
	DateKey  string                   `json:"date_key"`
	SortKey  int64                    `json:"sort_key"`
	Title    string                   `json:"title"`
	Type     string                   `json:"type"`
	Status   string                   `json:"status"`
	Priority *string                  `json:"priority,omitempty"`
	Company  string                   `json:"company,omitempty"`
	Task     *task.TaskResponse       `json:"task,omitempty"`
	Meeting  *meeting.MeetingResponse `json:"meeting,omitempty"`
}

// DayCellResponse represents one day cell of the month grid
type DayCellResponse struct {
	Day        int             `json:"day"`
	DateKey    string          `json:"date_key"`
	IsToday    bool            `json:"is_today"`
	IsSelected bool            `json:"is_selected"`
	Items      []*ItemResponse `json:"items"`
	MoreCount  int             `json:"more_count,omitempty"`
}

// StatsResponse represents month-local header statistics
type StatsResponse struct {
	Total    int `json:"total"`
	Tasks    int `json:"tasks"`
	Meetings int `json:"meetings"`
}

// MonthResponse represents the computed month grid
type MonthResponse struct {
	Year          int                `json:"year"`
	Month         int                `json:"month"`
	LeadingBlanks int                `json:"leading_blanks"`
	Cells         []*DayCellResponse `json:"cells"`
	Stats         StatsResponse      `json:"stats"`
	RefreshedAt   *time.Time         `json:"refreshed_at,omitempty"`
}

// AgendaResponse represents a day agenda
type AgendaResponse struct {
	DateKey string          `json:"date_key"`
	Items   []*ItemResponse `json:"items"`
}

// QuickAddResponse carries the pre-filled draft for the edit form
type QuickAddResponse struct {
	Kind    string                   `json:"kind"`
	Task    *task.TaskResponse       `json:"task,omitempty"`
	Meeting *meeting.MeetingResponse `json:"meeting,omitempty"`
}

// RescheduleResponse reports the outcome of a drag-reschedule
type RescheduleResponse struct {
	Moved bool          `json:"moved"`
	Item  *ItemResponse `json:"item"`
}
