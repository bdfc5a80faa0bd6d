package domain

import "time"

// Context is the structured payload of a log call.
type Context map[string]any

type LogRecord struct {
	Id        int64          `json:"id"`
	Level     Level          `json:"level"`
	Message   string         `json:"message"`
	Group     string         `json:"group"`
	Time      *time.Time     `json:"time"`
	IP        string         `json:"ip"`
	User      *int64         `json:"user"`
	Exception string         `json:"exception"`
	Trace     string         `json:"trace"`
	Context   Context        `json:"context"`
	Columns   map[string]any `json:"columns,omitempty"`
}

// Column returns the value of a fixed or extension column by its storage name.
func (r LogRecord) Column(name string) (any, bool) {
	switch name {
	case ColumnId:
		return r.Id, true
	case ColumnLevel:
		return r.Level, true
	case ColumnMessage:
		return r.Message, true
	case ColumnGroup:
		return r.Group, true
	case ColumnTime:
		return r.Time, true
	case ColumnIP:
		return r.IP, true
	case ColumnUser:
		return r.User, true
	case ColumnException:
		return r.Exception, true
	case ColumnTrace:
		return r.Trace, true
	case ColumnContext:
		return r.Context, true
	}
	v, ok := r.Columns[name]
	return v, ok
}
