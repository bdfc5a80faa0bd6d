package repotypes

// Fields is one row to insert, keyed by column name.
type Fields map[string]any

// Row is one stored row, keyed by column name.
type Row map[string]any

type LogFilter struct {
	Message string
	Level   string
	OrderBy string
	Desc    bool
	Limit   uint64
	Offset  uint64
}
