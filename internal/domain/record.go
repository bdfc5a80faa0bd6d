package domain

import "strconv"

// RecordFromRow rebuilds a LogRecord from a storage row keyed by column name.
// Columns listed in extensions are copied into LogRecord.Columns, decoded by their declared type.
func RecordFromRow(row map[string]any, extensions Columns) LogRecord {
	rec := LogRecord{
		Level:     Level(asString(row[ColumnLevel])),
		Message:   asString(row[ColumnMessage]),
		Group:     asString(row[ColumnGroup]),
		Time:      ParseTime(row[ColumnTime]),
		IP:        UnpackIP(row[ColumnIP]),
		Exception: asString(row[ColumnException]),
		Trace:     asString(row[ColumnTrace]),
		Context:   DecodeContext(row[ColumnContext]),
	}
	if id, ok := asInt(row[ColumnId]); ok {
		rec.Id = id
	}
	if user, ok := ActorID(row[ColumnUser]); ok {
		rec.User = &user
	}

	for name, typ := range extensions {
		if isFixedColumn(name) {
			continue
		}
		v, ok := row[name]
		if !ok {
			continue
		}
		if rec.Columns == nil {
			rec.Columns = make(map[string]any)
		}
		rec.Columns[name] = decodeColumn(v, typ)
	}
	return rec
}

func decodeColumn(v any, typ ColumnType) any {
	if v == nil {
		return nil
	}
	switch typ {
	case ColumnTypeString, ColumnTypeText:
		return asString(v)
	case ColumnTypeInteger, ColumnTypeForeign:
		if n, ok := asInt(v); ok {
			return n
		}
	case ColumnTypeFloat:
		switch t := v.(type) {
		case float64:
			return t
		case float32:
			return float64(t)
		case int64:
			return float64(t)
		case string:
			if f, err := strconv.ParseFloat(t, 64); err == nil {
				return f
			}
		case []byte:
			if f, err := strconv.ParseFloat(string(t), 64); err == nil {
				return f
			}
		}
	case ColumnTypeBoolean:
		switch t := v.(type) {
		case bool:
			return t
		case int64:
			return t != 0
		}
	case ColumnTypeDatetime:
		if t := ParseTime(v); t != nil {
			return FormatTime(*t)
		}
		return nil
	}
	return v
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(t, 10)
	}
	return ""
}

func asInt(v any) (int64, bool) {
	switch t := v.(type) {
	case int64:
		return t, true
	case int32:
		return int64(t), true
	case int:
		return int64(t), true
	case float64:
		return int64(t), true
	case string:
		n, err := strconv.ParseInt(t, 10, 64)
		return n, err == nil
	case []byte:
		n, err := strconv.ParseInt(string(t), 10, 64)
		return n, err == nil
	}
	return 0, false
}
