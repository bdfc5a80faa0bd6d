package app

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Egor213/dblogger/internal/domain"
	"github.com/Egor213/dblogger/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContext(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		want    domain.Context
		wantErr bool
	}{
		{name: "empty", raw: "", want: domain.Context{}},
		{name: "object", raw: `{"a":"b","_group":"cli"}`, want: domain.Context{"a": "b", "_group": "cli"}},
		{name: "not an object", raw: `[1,2]`, wantErr: true},
		{name: "broken", raw: `{`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseContext(tc.raw)

			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPrintRecords(t *testing.T) {
	ts := time.Date(2024, 3, 5, 10, 11, 12, 0, time.Local)
	user := int64(4)
	records := []domain.LogRecord{
		{Id: 1, Level: domain.LevelError, Message: "boom", Group: "ops", Time: &ts, User: &user, IP: "10.0.0.1"},
		{Id: 2, Level: domain.LevelDebug, Message: "quiet"},
	}

	var buf bytes.Buffer
	require.NoError(t, printRecords(&buf, records, 45, service.Filter{Page: 2, PerPage: 20}))

	out := buf.String()
	assert.Contains(t, out, "2024-03-05 10:11:12")
	assert.Contains(t, out, "Error")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "page 2/3 (45 records)")
}

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestCLI_WriteThenList(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	configBody := `
app:
  name: dblogger
  version: test
storage:
  driver: sqlite
  columns:
    request_id: string
sqlite:
  path: ` + filepath.Join(dir, "logs.db") + `
http:
  port: "0"
prometheus:
  port: "0"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configBody), 0o600))
	t.Setenv("APP_CONFIG_PATH", configPath)
	unsetEnv(t, "STORAGE_DRIVER", "STORAGE_TABLE", "SQLITE_PATH")

	run := func(args ...string) string {
		var out bytes.Buffer
		root := NewRootCmd()
		root.SetArgs(args)
		root.SetOut(&out)
		root.SetErr(io.Discard)
		require.NoError(t, root.Execute())
		return out.String()
	}

	out := run("write",
		"--level", "error",
		"--message", "Hello {name}",
		"--context", `{"name":"Ann","_group":"cli","_request_id":"r-1"}`,
		"--actor", "5",
		"--ip", "10.0.0.1",
	)
	assert.Equal(t, "ok\n", out)

	out = run("list", "--level", "error")
	assert.Contains(t, out, "Hello Ann")
	assert.Contains(t, out, "cli")
	assert.Contains(t, out, "10.0.0.1")
	assert.Contains(t, out, "page 1/1 (1 records)")
}

func TestCLI_WriteRejectsBrokenContext(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"write", "--message", "x", "--context", "{"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	assert.Error(t, root.Execute())
}
