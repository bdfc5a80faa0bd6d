package domain_test

import (
	"testing"
	"time"

	"github.com/Egor213/dblogger/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackIP(t *testing.T) {
	testCases := []struct {
		name string
		addr string
		want string
		size int
	}{
		{name: "ipv4", addr: "192.168.1.10", want: "192.168.1.10", size: 16},
		{name: "ipv6", addr: "2001:db8::1", want: "2001:db8::1", size: 16},
		{name: "ipv6 non canonical", addr: "2001:0db8:0000::0001", want: "2001:db8::1", size: 16},
		{name: "empty", addr: "", want: "", size: 0},
		{name: "garbage", addr: "not-an-ip", want: "", size: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			packed := domain.PackIP(tc.addr)

			assert.Len(t, packed, tc.size)
			assert.Equal(t, tc.want, domain.UnpackIP(packed))
		})
	}
}

func TestUnpackIP_FourBytes(t *testing.T) {
	assert.Equal(t, "10.0.0.1", domain.UnpackIP([]byte{10, 0, 0, 1}))
	assert.Equal(t, "", domain.UnpackIP(nil))
}

func TestTruncateGroup(t *testing.T) {
	assert.Equal(t, "my-group", domain.TruncateGroup("my-group"))
	assert.Equal(t, "abcdefghijklmnopqrst", domain.TruncateGroup("abcdefghijklmnopqrstuvwxyz"))
	assert.Equal(t, "ääääääääääääääääääää", domain.TruncateGroup("äääääääääääääääääääääää"))
}

func TestParseTime(t *testing.T) {
	got := domain.ParseTime("2024-03-05 10:11:12")
	require.NotNil(t, got)
	assert.Equal(t, "2024-03-05 10:11:12", domain.FormatTime(*got))

	assert.Nil(t, domain.ParseTime(""))
	assert.Nil(t, domain.ParseTime(nil))
	assert.Nil(t, domain.ParseTime("0000-00-00 00:00:00"))
	assert.Nil(t, domain.ParseTime(time.Time{}))

	now := time.Now()
	assert.Equal(t, &now, domain.ParseTime(now))
}

func TestContextCodec(t *testing.T) {
	ctx := domain.Context{
		"this": "that",
		"list": []string{"a", "b", "c"},
	}

	encoded := domain.EncodeContext(ctx)
	assert.JSONEq(t, `{"this":"that","list":["a","b","c"]}`, encoded)

	decoded := domain.DecodeContext(encoded)
	assert.Equal(t, "that", decoded["this"])
	assert.Equal(t, []any{"a", "b", "c"}, decoded["list"])

	assert.Equal(t, "{}", domain.EncodeContext(nil))
	assert.Equal(t, domain.Context{}, domain.DecodeContext("not json"))
}

func TestEncodeContext_UnsupportedValue(t *testing.T) {
	encoded := domain.EncodeContext(domain.Context{
		"ch":  make(chan int),
		"key": "value",
	})

	decoded := domain.DecodeContext(encoded)
	assert.Equal(t, "value", decoded["key"])
	assert.IsType(t, "", decoded["ch"])
}

func TestActorID(t *testing.T) {
	testCases := []struct {
		name   string
		value  any
		want   int64
		wantOk bool
	}{
		{name: "int", value: 2, want: 2, wantOk: true},
		{name: "int64", value: int64(7), want: 7, wantOk: true},
		{name: "numeric string", value: "15", want: 15, wantOk: true},
		{name: "false", value: false},
		{name: "nil", value: nil},
		{name: "zero", value: 0},
		{name: "empty string", value: ""},
		{name: "word", value: "admin"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := domain.ActorID(tc.value)

			assert.Equal(t, tc.wantOk, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
