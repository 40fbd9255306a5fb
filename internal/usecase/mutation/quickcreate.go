package mutation

import (
	"time"

	"github.com/incial/Incial/errors"
	"github.com/incial/Incial/internal/domain/entities"
)

// DraftTask pre-fills the task a day's quick-add affordance opens: status
// "Not Started", priority "Medium", assignee set to the current user, due
// date set to the clicked day.
func (c *Coordinator) DraftTask(user, dateKey string) (*entities.Task, error) {
	if _, err := time.ParseInLocation("2006-01-02", dateKey, c.loc); err != nil {
		return nil, errors.ErrInvalidDate(dateKey)
	}
	return entities.NewTask("", dateKey, user), nil
}

// DraftMeeting pre-fills the meeting a day's quick-add affordance opens:
// the clicked day, time-of-day one hour from now, status "Scheduled".
func (c *Coordinator) DraftMeeting(dateKey string) (*entities.Meeting, error) {
	day, err := time.ParseInLocation("2006-01-02", dateKey, c.loc)
	if err != nil {
		return nil, errors.ErrInvalidDate(dateKey)
	}

	at := c.now().Add(time.Hour).In(c.loc)
	start := time.Date(day.Year(), day.Month(), day.Day(), at.Hour(), at.Minute(), 0, 0, c.loc)
	return entities.NewMeeting("", start), nil
}
