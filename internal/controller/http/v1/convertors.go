package httpv1

import (
	"github.com/Egor213/dblogger/internal/controller/http/validators"
	"github.com/Egor213/dblogger/internal/domain"
	"github.com/Egor213/dblogger/internal/service"
)

type LogItem struct {
	Id         int64          `json:"id"`
	Level      domain.Level   `json:"level"`
	LevelLabel string         `json:"level_label"`
	Message    string         `json:"message"`
	Group      string         `json:"group"`
	Time       string         `json:"time"`
	IP         string         `json:"ip"`
	User       *int64         `json:"user"`
	Exception  string         `json:"exception"`
	Trace      string         `json:"trace"`
	Context    domain.Context `json:"context"`
	Columns    map[string]any `json:"columns,omitempty"`
}

type ListResponse struct {
	Items      []LogItem `json:"items"`
	TotalItems int       `json:"total_items"`
	PerPage    int       `json:"per_page"`
	TotalPages int       `json:"total_pages"`
	Page       int       `json:"page"`
}

type LevelItem struct {
	Level domain.Level `json:"level"`
	Label string       `json:"label"`
}

type ColumnsResponse struct {
	Sortable []string `json:"sortable"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewFilterFromParams(p validators.ListParams) service.Filter {
	return service.Filter{
		Page:    p.Page,
		PerPage: p.PerPage,
		Message: p.Search,
		Level:   domain.Level(p.Level),
		OrderBy: p.OrderBy,
		Desc:    p.Desc,
	}
}

func ToLogItem(r domain.LogRecord) LogItem {
	item := LogItem{
		Id:         r.Id,
		Level:      r.Level,
		LevelLabel: r.Level.Label(),
		Message:    r.Message,
		Group:      r.Group,
		IP:         r.IP,
		User:       r.User,
		Exception:  r.Exception,
		Trace:      r.Trace,
		Context:    r.Context,
		Columns:    r.Columns,
	}
	if r.Time != nil {
		item.Time = domain.FormatTime(*r.Time)
	}
	return item
}

func ToListResponse(records []domain.LogRecord, total int, f service.Filter) ListResponse {
	items := make([]LogItem, 0, len(records))
	for _, r := range records {
		items = append(items, ToLogItem(r))
	}
	return ListResponse{
		Items:      items,
		TotalItems: total,
		PerPage:    f.PerPage,
		TotalPages: service.TotalPages(total, f.PerPage),
		Page:       f.Page,
	}
}

func ToLevelItems(levels []domain.Level) []LevelItem {
	items := make([]LevelItem, 0, len(levels))
	for _, l := range levels {
		items = append(items, LevelItem{Level: l, Label: l.Label()})
	}
	return items
}
