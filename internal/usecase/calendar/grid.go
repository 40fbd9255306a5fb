package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/incial/Incial/internal/domain/entities"
)

// MaxVisiblePerCell is how many items a month cell renders before the
// remainder collapses into an overflow count.
const MaxVisiblePerCell = 4

// DayCell is one day of the month grid
type DayCell struct {
	Day        int
	DateKey    string
	IsToday    bool
	IsSelected bool
	Items      []*entities.CalendarItem
	MoreCount  int
}

// MonthView is the computed month grid
type MonthView struct {
	Year          int
	Month         time.Month
	LeadingBlanks int
	Cells         []DayCell
	Stats         MonthStats
}

// MonthStats counts the items of the displayed month for the header
type MonthStats struct {
	Total    int
	Tasks    int
	Meetings int
}

// DateKeyFor formats a civil date as a grouping key.
func DateKeyFor(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// MonthPrefix formats the YYYY-MM prefix used for month-local statistics.
func MonthPrefix(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// BuildMonthGrid buckets items into the month grid. Leading blanks come from
// the weekday of day 1 (Sunday-first, matching a Sunday-led calendar row);
// each cell holds the items whose date key equals that day, filtered and
// sorted ascending by sort key, capped at MaxVisiblePerCell.
func BuildMonthGrid(
	items []*entities.CalendarItem,
	year int,
	month time.Month,
	filter Filter,
	today time.Time,
	selectedKey string,
	loc *time.Location,
) *MonthView {
	byKey := make(map[string][]*entities.CalendarItem)
	for _, item := range items {
		if !filter.Allows(item) {
			continue
		}
		byKey[item.DateKey] = append(byKey[item.DateKey], item)
	}

	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := firstDay.AddDate(0, 1, -1).Day()
	todayKey := today.In(loc).Format(dateKeyLayout)

	view := &MonthView{
		Year:          year,
		Month:         month,
		LeadingBlanks: int(firstDay.Weekday()),
		Cells:         make([]DayCell, 0, daysInMonth),
		Stats:         ComputeMonthStats(items, year, month),
	}

	for day := 1; day <= daysInMonth; day++ {
		key := DateKeyFor(year, month, day)
		dayItems := byKey[key]
		// Stable keeps equal sort keys (all tasks) in list order.
		sort.SliceStable(dayItems, func(i, j int) bool {
			return dayItems[i].SortKey < dayItems[j].SortKey
		})

		cell := DayCell{
			Day:        day,
			DateKey:    key,
			IsToday:    key == todayKey,
			IsSelected: key == selectedKey,
			Items:      dayItems,
		}
		if len(dayItems) > MaxVisiblePerCell {
			cell.Items = dayItems[:MaxVisiblePerCell]
			cell.MoreCount = len(dayItems) - MaxVisiblePerCell
		}
		view.Cells = append(view.Cells, cell)
	}

	return view
}

// BuildDayAgenda returns one day's items sorted ascending by sort key.
func BuildDayAgenda(items []*entities.CalendarItem, dateKey string, filter Filter) []*entities.CalendarItem {
	agenda := make([]*entities.CalendarItem, 0, 8)
	for _, item := range items {
		if item.DateKey != dateKey || !filter.Allows(item) {
			continue
		}
		agenda = append(agenda, item)
	}
	sort.SliceStable(agenda, func(i, j int) bool {
		return agenda[i].SortKey < agenda[j].SortKey
	})
	return agenda
}

// ComputeMonthStats counts items whose date key carries the month's YYYY-MM
// prefix. The invalid-date bucket never matches a real prefix, so malformed
// records stay out of the header counts.
func ComputeMonthStats(items []*entities.CalendarItem, year int, month time.Month) MonthStats {
	prefix := MonthPrefix(year, month)

	var stats MonthStats
	for _, item := range items {
		if !item.InMonth(prefix) {
			continue
		}
		stats.Total++
		switch item.Type {
		case entities.ItemTypeTask:
			stats.Tasks++
		case entities.ItemTypeMeeting:
			stats.Meetings++
		}
	}
	return stats
}
