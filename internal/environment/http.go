package environment

import (
	"net"
	"net/http"
	"strconv"
	"strings"
)

const DefaultActorHeader = "X-Actor-ID"

// clientIPHeaders are consulted in order before falling back to the connection address.
var clientIPHeaders = []string{
	"Client-IP",
	"X-Forwarded-For",
	"X-Forwarded",
	"Forwarded-For",
	"Forwarded",
}

// Request resolves ambient values from an incoming HTTP request.
type Request struct {
	req         *http.Request
	actorHeader string
}

func FromRequest(r *http.Request, actorHeader string) *Request {
	if actorHeader == "" {
		actorHeader = DefaultActorHeader
	}
	return &Request{req: r, actorHeader: actorHeader}
}

func (e *Request) ClientAddress() string {
	for _, h := range clientIPHeaders {
		v := strings.TrimSpace(e.req.Header.Get(h))
		if v == "" {
			continue
		}
		if h == "Forwarded" {
			v = forwardedFor(v)
		} else {
			v = firstHop(v)
		}
		if v != "" {
			return v
		}
	}

	host, _, err := net.SplitHostPort(e.req.RemoteAddr)
	if err != nil {
		return e.req.RemoteAddr
	}
	return host
}

func (e *Request) CurrentActor() (int64, bool) {
	v := strings.TrimSpace(e.req.Header.Get(e.actorHeader))
	if v == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func firstHop(v string) string {
	if i := strings.IndexByte(v, ','); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}

// forwardedFor extracts the first for= node of an RFC 7239 Forwarded header.
func forwardedFor(v string) string {
	for _, part := range strings.Split(firstHop(v), ";") {
		k, val, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok || !strings.EqualFold(k, "for") {
			continue
		}
		val = strings.Trim(val, `"`)
		if strings.HasPrefix(val, "[") {
			if end := strings.IndexByte(val, ']'); end > 0 {
				return val[1:end]
			}
		}
		if host, _, err := net.SplitHostPort(val); err == nil {
			return host
		}
		return val
	}
	return ""
}
