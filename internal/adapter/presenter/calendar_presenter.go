package presenter

import (
	"time"

	"github.com/incial/Incial/internal/adapter/dto/calendarview"
	"github.com/incial/Incial/internal/adapter/dto/company"
	"github.com/incial/Incial/internal/domain/entities"
	"github.com/incial/Incial/internal/usecase/calendar"
)

// ToItemResponse converts a CalendarItem to its response DTO
func ToItemResponse(item *entities.CalendarItem, companies entities.CompanyMap) *calendarview.ItemResponse {
	if item == nil {
		return nil
	}

	return &calendarview.ItemResponse{
		ID:       item.ID,
		DateKey:  item.DateKey,
		SortKey:  item.SortKey,
		Title:    item.Title,
		Type:     string(item.Type),
		Status:   item.Status,
		Priority: item.Priority,
		Company:  item.Company,
		Task:     ToTaskResponse(item.Task, companies),
		Meeting:  ToMeetingResponse(item.Meeting, companies),
	}
}

// ToItemListResponse converts a calendar item collection
func ToItemListResponse(items []*entities.CalendarItem, companies entities.CompanyMap) []*calendarview.ItemResponse {
	out := make([]*calendarview.ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ToItemResponse(item, companies))
	}
	return out
}

// ToMonthResponse converts a computed MonthView to its response DTO
func ToMonthResponse(view *calendar.MonthView, companies entities.CompanyMap, refreshedAt time.Time) *calendarview.MonthResponse {
	cells := make([]*calendarview.DayCellResponse, 0, len(view.Cells))
	for i := range view.Cells {
		cell := &view.Cells[i]
		cells = append(cells, &calendarview.DayCellResponse{
			Day:        cell.Day,
			DateKey:    cell.DateKey,
			IsToday:    cell.IsToday,
			IsSelected: cell.IsSelected,
			Items:      ToItemListResponse(cell.Items, companies),
			MoreCount:  cell.MoreCount,
		})
	}

	response := &calendarview.MonthResponse{
		Year:          view.Year,
		Month:         int(view.Month),
		LeadingBlanks: view.LeadingBlanks,
		Cells:         cells,
		Stats:         ToStatsResponse(view.Stats),
	}
	if !refreshedAt.IsZero() {
		response.RefreshedAt = &refreshedAt
	}
	return response
}

// ToStatsResponse converts month statistics
func ToStatsResponse(stats calendar.MonthStats) calendarview.StatsResponse {
	return calendarview.StatsResponse{
		Total:    stats.Total,
		Tasks:    stats.Tasks,
		Meetings: stats.Meetings,
	}
}

// ToCompanyListResponse converts CRM records to the lookup response
func ToCompanyListResponse(companies []*entities.Company) *company.CompanyListResponse {
	out := make([]*company.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, &company.CompanyResponse{ID: c.ID.String(), Name: c.Name})
	}
	return &company.CompanyListResponse{Companies: out, Total: len(out)}
}
