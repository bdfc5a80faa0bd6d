package environment_test

import (
	"net/http/httptest"
	"testing"

	"github.com/Egor213/dblogger/internal/environment"
	"github.com/stretchr/testify/assert"
)

func TestRequest_ClientAddress(t *testing.T) {
	testCases := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{
			name:   "remote addr",
			remote: "10.0.0.5:4312",
			want:   "10.0.0.5",
		},
		{
			name:    "client ip wins",
			headers: map[string]string{"Client-IP": "1.1.1.1", "X-Forwarded-For": "2.2.2.2"},
			want:    "1.1.1.1",
		},
		{
			name:    "forwarded for first hop",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"},
			want:    "203.0.113.7",
		},
		{
			name:    "rfc forwarded ipv6",
			headers: map[string]string{"Forwarded": `for="[2001:db8::17]:4711";proto=https`},
			want:    "2001:db8::17",
		},
		{
			name:    "rfc forwarded ipv4",
			headers: map[string]string{"Forwarded": "for=192.0.2.60;proto=http, for=198.51.100.17"},
			want:    "192.0.2.60",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tc.remote != "" {
				req.RemoteAddr = tc.remote
			}
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			env := environment.FromRequest(req, "")

			assert.Equal(t, tc.want, env.ClientAddress())
		})
	}
}

func TestRequest_CurrentActor(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	env := environment.FromRequest(req, "X-User")

	_, ok := env.CurrentActor()
	assert.False(t, ok)

	req.Header.Set("X-User", "12")
	id, ok := env.CurrentActor()
	assert.True(t, ok)
	assert.Equal(t, int64(12), id)

	req.Header.Set("X-User", "bob")
	_, ok = env.CurrentActor()
	assert.False(t, ok)
}

func TestStatic(t *testing.T) {
	_, ok := environment.None.CurrentActor()
	assert.False(t, ok)
	assert.Empty(t, environment.None.ClientAddress())

	id, ok := environment.Static{Address: "::1", Actor: 4}.CurrentActor()
	assert.True(t, ok)
	assert.Equal(t, int64(4), id)
}
