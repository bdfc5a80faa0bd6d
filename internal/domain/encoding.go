package domain

import (
	"encoding/json"
	"fmt"
	"net/netip"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	TimeLayout = "2006-01-02 15:04:05"

	MaxGroupLength = 20

	zeroDatetime = "0000-00-00 00:00:00"
)

func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseTime decodes a stored timestamp. Empty and zero values mean "no timestamp".
func ParseTime(v any) *time.Time {
	var s string
	switch t := v.(type) {
	case nil:
		return nil
	case time.Time:
		if t.IsZero() {
			return nil
		}
		return &t
	case *time.Time:
		if t == nil || t.IsZero() {
			return nil
		}
		return t
	case string:
		s = t
	case []byte:
		s = string(t)
	default:
		return nil
	}

	s = strings.TrimSpace(s)
	if s == "" || s == zeroDatetime {
		return nil
	}
	for _, layout := range []string{TimeLayout, time.RFC3339Nano, "2006-01-02T15:04:05"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return &t
		}
	}
	return nil
}

// TruncateGroup keeps the first MaxGroupLength characters of a group label.
func TruncateGroup(s string) string {
	if utf8.RuneCountInString(s) <= MaxGroupLength {
		return s
	}
	n := 0
	for i := range s {
		if n == MaxGroupLength {
			return s[:i]
		}
		n++
	}
	return s
}

// PackIP encodes a textual IPv4 or IPv6 address in 16 bytes, IPv4 mapped into IPv6.
// Unparseable input packs to an empty slice.
func PackIP(addr string) []byte {
	ip, err := netip.ParseAddr(strings.TrimSpace(addr))
	if err != nil {
		return []byte{}
	}
	b := ip.As16()
	return b[:]
}

// UnpackIP renders a packed address back to its canonical text form.
func UnpackIP(v any) string {
	var b []byte
	switch t := v.(type) {
	case []byte:
		b = t
	case string:
		b = []byte(t)
	default:
		return ""
	}

	switch len(b) {
	case 16:
		return netip.AddrFrom16([16]byte(b)).Unmap().String()
	case 4:
		return netip.AddrFrom4([4]byte(b)).String()
	}
	return ""
}

// EncodeContext serializes a context as a JSON object. Values JSON cannot
// represent are replaced by their string form so encoding never fails.
func EncodeContext(c Context) string {
	if c == nil {
		c = Context{}
	}
	if b, err := json.Marshal(c); err == nil {
		return string(b)
	}

	safe := make(map[string]json.RawMessage, len(c))
	for k, v := range c {
		b, err := json.Marshal(v)
		if err != nil {
			b, _ = json.Marshal(fmt.Sprintf("%v", v))
		}
		safe[k] = b
	}
	b, _ := json.Marshal(safe)
	return string(b)
}

func DecodeContext(v any) Context {
	var raw []byte
	switch t := v.(type) {
	case string:
		raw = []byte(t)
	case []byte:
		raw = t
	default:
		return Context{}
	}

	c := Context{}
	if len(raw) == 0 {
		return c
	}
	if err := json.Unmarshal(raw, &c); err != nil {
		return Context{}
	}
	return c
}

// ActorID maps the value of the user field to a stored foreign id.
// Sentinels meaning "no actor" (false, nil, empty, zero) and unparseable values yield false.
func ActorID(v any) (int64, bool) {
	var id int64
	switch t := v.(type) {
	case int:
		id = int64(t)
	case int32:
		id = int64(t)
	case int64:
		id = t
	case uint:
		id = int64(t)
	case uint32:
		id = int64(t)
	case uint64:
		id = int64(t)
	case float64:
		id = int64(t)
	case *int64:
		if t == nil {
			return 0, false
		}
		id = *t
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, false
		}
		id = n
	case []byte:
		return ActorID(string(t))
	default:
		return 0, false
	}
	if id <= 0 {
		return 0, false
	}
	return id, true
}
