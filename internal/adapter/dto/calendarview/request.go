package calendarview

// MonthRequest represents query parameters for the month grid
type MonthRequest struct {
	Year         int    `query:"year" validate:"required,min=1970,max=9999"`
	Month        int    `query:"month" validate:"required,min=1,max=12"`
	ShowTasks    *bool  `query:"show_tasks"`
	ShowMeetings *bool  `query:"show_meetings"`
	Selected     string `query:"selected" validate:"omitempty,datekey"`
}

// DayRequest represents query parameters for a day agenda
type DayRequest struct {
	ShowTasks    *bool  `query:"show_tasks"`
	ShowMeetings *bool  `query:"show_meetings"`
	Status       string `query:"status"`
	Search       string `query:"search"`
}

// StatsRequest represents query parameters for month statistics
type StatsRequest struct {
	Year  int `query:"year" validate:"required,min=1970,max=9999"`
	Month int `query:"month" validate:"required,min=1,max=12"`
}

// RescheduleRequest represents a drag-and-drop reschedule
type RescheduleRequest struct {
	ItemID     string `json:"item_id" validate:"required"`
	TargetDate string `json:"target_date" validate:"required,datekey"`
}

// QuickAddRequest represents a day quick-add affordance click
type QuickAddRequest struct {
	Kind string `json:"kind" validate:"required,oneof=task meeting"`
	Date string `json:"date" validate:"required,datekey"`
}

// PopoverRequest represents query parameters for popover placement
type PopoverRequest struct {
	AnchorX   int `query:"anchor_x" validate:"min=0"`
	AnchorY   int `query:"anchor_y" validate:"min=0"`
	Width     int `query:"width" validate:"required,min=1"`
	Height    int `query:"height" validate:"required,min=1"`
	ViewportW int `query:"viewport_w" validate:"required,min=1"`
	ViewportH int `query:"viewport_h" validate:"required,min=1"`
}
