package domain

// Level is one of the eight syslog severities, stored as lowercase text.
type Level string

const (
	LevelEmergency Level = "emergency"
	LevelAlert     Level = "alert"
	LevelCritical  Level = "critical"
	LevelError     Level = "error"
	LevelWarning   Level = "warning"
	LevelNotice    Level = "notice"
	LevelInfo      Level = "info"
	LevelDebug     Level = "debug"
)

var levelLabels = map[Level]string{
	LevelEmergency: "Emergency",
	LevelAlert:     "Alert",
	LevelCritical:  "Critical",
	LevelError:     "Error",
	LevelWarning:   "Warning",
	LevelNotice:    "Notice",
	LevelInfo:      "Info",
	LevelDebug:     "Debug",
}

// Levels returns every level from the most to the least severe.
func Levels() []Level {
	return []Level{
		LevelEmergency,
		LevelAlert,
		LevelCritical,
		LevelError,
		LevelWarning,
		LevelNotice,
		LevelInfo,
		LevelDebug,
	}
}

func (l Level) IsValid() bool {
	_, ok := levelLabels[l]
	return ok
}

func (l Level) String() string {
	return string(l)
}

// Label is the human readable name, empty for unknown levels.
func (l Level) Label() string {
	return levelLabels[l]
}
