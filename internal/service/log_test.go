package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Egor213/dblogger/internal/domain"
	"github.com/Egor213/dblogger/internal/environment"
	"github.com/Egor213/dblogger/internal/metrics"
	envmocks "github.com/Egor213/dblogger/internal/mocks/environment"
	repomocks "github.com/Egor213/dblogger/internal/mocks/repository"
	"github.com/Egor213/dblogger/internal/repo/repotypes"
	"github.com/Egor213/dblogger/internal/service"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 3, 5, 10, 11, 12, 0, time.Local)

type LogicError struct {
	msg string
}

func (e *LogicError) Error() string {
	return e.msg
}

type panicError struct{}

func (panicError) Error() string {
	panic("broken error")
}

type dummy struct{}

func (dummy) String() string {
	return "DUMMY"
}

type plainObject struct {
	Name string
}

// captureInsert expects exactly one insert and returns the fields it received.
func captureInsert(r *repomocks.MockLog, columns domain.Columns) *repotypes.Fields {
	var got repotypes.Fields
	r.EXPECT().RegisteredColumns().Return(columns)
	r.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields repotypes.Fields) (int64, error) {
			got = fields
			return 1, nil
		})
	return &got
}

func newLogService(t *testing.T, env environment.Provider) (*service.LogService, *repomocks.MockLog) {
	ctrl := gomock.NewController(t)
	mockRepo := repomocks.NewMockLog(ctrl)

	svc := service.NewLogService(mockRepo, env, metrics.NewTestCounters(), service.WithClock(func() time.Time {
		return fixedNow
	}))
	return svc, mockRepo
}

func TestLogService_Log_InvalidLevel(t *testing.T) {
	for _, level := range []domain.Level{"", "fatal", "DEBUG", "trace", "warn"} {
		t.Run(string(level), func(t *testing.T) {
			svc, _ := newLogService(t, environment.None)

			err := svc.Log(context.Background(), level, "My message {x}", domain.Context{"x": 1})

			assert.ErrorIs(t, err, service.ErrInvalidLevel)
		})
	}
}

func TestLogService_Log_AllLevels(t *testing.T) {
	for _, level := range domain.Levels() {
		t.Run(string(level), func(t *testing.T) {
			svc, mockRepo := newLogService(t, environment.None)
			fields := captureInsert(mockRepo, domain.Columns{})

			require.NoError(t, svc.Log(context.Background(), level, "My message", nil))

			assert.Equal(t, string(level), (*fields)["level"])
		})
	}
}

func TestLogService_Log_DefaultFields(t *testing.T) {
	svc, mockRepo := newLogService(t, environment.None)
	fields := captureInsert(mockRepo, domain.Columns{"user": domain.ColumnTypeForeign})

	require.NoError(t, svc.Log(context.Background(), domain.LevelDebug, "My message", nil))

	got := *fields
	assert.Equal(t, "My message", got["message"])
	assert.Equal(t, "2024-03-05 10:11:12", got["time"])
	assert.Equal(t, "", got["lgroup"])
	assert.Equal(t, "", got["exception"])
	assert.Equal(t, "", got["trace"])
	assert.Equal(t, []byte{}, got["ip"])
	assert.Equal(t, "{}", got["context"])
	assert.NotContains(t, got, "user")
}

func TestLogService_Log_ClientAddress(t *testing.T) {
	svc, mockRepo := newLogService(t, environment.Static{Address: "192.168.0.1"})
	fields := captureInsert(mockRepo, domain.Columns{})

	require.NoError(t, svc.Info(context.Background(), "My message", nil))

	assert.Equal(t, domain.PackIP("192.168.0.1"), (*fields)["ip"])
	assert.Equal(t, "info", (*fields)["level"])
}

func TestLogService_Log_Group(t *testing.T) {
	testCases := []struct {
		name  string
		group any
		want  string
	}{
		{name: "short", group: "my-group", want: "my-group"},
		{name: "truncated", group: "a-very-long-group-name-indeed", want: "a-very-long-group-na"},
		{name: "not a string", group: 42, want: "42"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, mockRepo := newLogService(t, environment.None)
			fields := captureInsert(mockRepo, domain.Columns{})

			err := svc.Debug(context.Background(), "My message", domain.Context{"_group": tc.group})

			require.NoError(t, err)
			assert.Equal(t, tc.want, (*fields)["lgroup"])
			assert.NotContains(t, *fields, "group")
		})
	}
}

func TestLogService_Log_Exception(t *testing.T) {
	stacked := pkgerrors.WithStack(&LogicError{msg: "bad state"})
	var tracer interface{ StackTrace() pkgerrors.StackTrace }
	require.ErrorAs(t, stacked, &tracer)
	stackedTrace := strings.TrimLeft(fmt.Sprintf("%+v", tracer.StackTrace()), "\n")

	var nilErr *LogicError

	testCases := []struct {
		name          string
		exception     any
		wantType      string
		wantTrace     string
		traceContains string
	}{
		{
			name:      "error with stack",
			exception: stacked,
			wantType:  "*service_test.LogicError",
			wantTrace: stackedTrace,
		},
		{
			name:          "stack created with the error",
			exception:     pkgerrors.New("bad state"),
			wantType:      "*errors.fundamental",
			traceContains: "TestLogService_Log_Exception",
		},
		{
			name:          "wrapped with message and stack",
			exception:     pkgerrors.Wrap(&LogicError{msg: "bad state"}, "loading config"),
			wantType:      "*service_test.LogicError",
			traceContains: "log_test.go",
		},
		{
			name:      "plain error",
			exception: &LogicError{msg: "bad state"},
			wantType:  "*service_test.LogicError",
			wantTrace: "#0 *service_test.LogicError: bad state",
		},
		{
			name:      "wrapped error",
			exception: errors.Join(errors.New("outer")),
			wantType:  "*errors.joinError",
			wantTrace: "#0 *errors.joinError: outer",
		},
		{
			name:      "not an error",
			exception: "just a string",
		},
		{
			name:      "typed nil",
			exception: nilErr,
		},
		{
			name:      "panicking error",
			exception: panicError{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, mockRepo := newLogService(t, environment.None)
			fields := captureInsert(mockRepo, domain.Columns{})
			logCtx := domain.Context{"exception": tc.exception}

			require.NoError(t, svc.Debug(context.Background(), "My message", logCtx))

			assert.Equal(t, tc.wantType, (*fields)["exception"])
			if tc.traceContains != "" {
				assert.Contains(t, (*fields)["trace"], tc.traceContains)
				assert.NotContains(t, (*fields)["trace"], "#0 ")
				return
			}
			assert.Equal(t, tc.wantTrace, (*fields)["trace"])
		})
	}
}

func TestLogService_Log_ContextSavedAsJSON(t *testing.T) {
	svc, mockRepo := newLogService(t, environment.None)
	fields := captureInsert(mockRepo, domain.Columns{"user": domain.ColumnTypeForeign})

	logCtx := domain.Context{
		"this":   "that",
		"list":   []string{"a", "b", "c"},
		"_group": "g",
		"_user":  3,
		"_nope":  true,
	}
	require.NoError(t, svc.Debug(context.Background(), "My message", logCtx))

	assert.JSONEq(t, `{"this":"that","list":["a","b","c"],"_group":"g","_user":3,"_nope":true}`, (*fields)["context"].(string))
}

func TestLogService_Log_User(t *testing.T) {
	testCases := []struct {
		name     string
		actor    int64
		logCtx   domain.Context
		wantUser any
		wantSet  bool
	}{
		{
			name:     "ambient actor",
			actor:    1,
			wantUser: int64(1),
			wantSet:  true,
		},
		{
			name:     "explicit user wins",
			actor:    1,
			logCtx:   domain.Context{"_user": 2},
			wantUser: 2,
			wantSet:  true,
		},
		{
			name:     "explicit false suppresses ambient",
			actor:    1,
			logCtx:   domain.Context{"_user": false},
			wantUser: false,
			wantSet:  true,
		},
		{
			name:    "anonymous",
			wantSet: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, mockRepo := newLogService(t, environment.Static{Actor: tc.actor})
			fields := captureInsert(mockRepo, domain.Columns{"user": domain.ColumnTypeForeign})

			require.NoError(t, svc.Debug(context.Background(), "My message", tc.logCtx))

			got, ok := (*fields)["user"]
			assert.Equal(t, tc.wantSet, ok)
			if tc.wantSet {
				assert.Equal(t, tc.wantUser, got)
			}
		})
	}
}

func TestLogService_Log_ExplicitUserSkipsAmbientLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := envmocks.NewMockProvider(ctrl)
	env.EXPECT().ClientAddress().Return("")

	svc, mockRepo := newLogService(t, env)
	fields := captureInsert(mockRepo, domain.Columns{"user": domain.ColumnTypeForeign})

	require.NoError(t, svc.Debug(context.Background(), "My message", domain.Context{"_user": false}))

	assert.Equal(t, false, (*fields)["user"])
}

func TestLogService_Log_ExtensionColumns(t *testing.T) {
	testCases := []struct {
		name    string
		columns domain.Columns
		wantSet bool
	}{
		{
			name:    "registered column",
			columns: domain.Columns{"custom_column": domain.ColumnTypeString},
			wantSet: true,
		},
		{
			name:    "unregistered column",
			columns: domain.Columns{},
			wantSet: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, mockRepo := newLogService(t, environment.None)
			fields := captureInsert(mockRepo, tc.columns)

			err := svc.Debug(context.Background(), "My message", domain.Context{"_custom_column": "custom_value"})

			require.NoError(t, err)
			got, ok := (*fields)["custom_column"]
			assert.Equal(t, tc.wantSet, ok)
			if tc.wantSet {
				assert.Equal(t, "custom_value", got)
			}
			assert.NotContains(t, *fields, "_custom_column")
		})
	}
}

func TestLogService_Log_FixedColumnsNotOverridable(t *testing.T) {
	svc, mockRepo := newLogService(t, environment.None)
	fields := captureInsert(mockRepo, domain.Columns{"user": domain.ColumnTypeForeign})

	err := svc.Debug(context.Background(), "My message", domain.Context{"_message": "hijack", "_time": "1970-01-01 00:00:00"})

	require.NoError(t, err)
	assert.Equal(t, "My message", (*fields)["message"])
	assert.Equal(t, "2024-03-05 10:11:12", (*fields)["time"])
}

func TestLogService_Log_Interpolation(t *testing.T) {
	testCases := []struct {
		name    string
		message string
		logCtx  domain.Context
		want    string
	}{
		{
			name:    "stringer",
			message: "Message {context}",
			logCtx:  domain.Context{"context": dummy{}},
			want:    "Message DUMMY",
		},
		{
			name:    "object without string conversion",
			message: "Message {context}",
			logCtx:  domain.Context{"context": plainObject{Name: "x"}},
			want:    "Message (service_test.plainObject)",
		},
		{
			name:    "pointer to object",
			message: "Message {context}",
			logCtx:  domain.Context{"context": &plainObject{}},
			want:    "Message (service_test.plainObject)",
		},
		{
			name:    "array",
			message: "Message {context}",
			logCtx:  domain.Context{"context": []any{}},
			want:    "Message (Array)",
		},
		{
			name:    "map",
			message: "Message {context}",
			logCtx:  domain.Context{"context": map[string]int{"a": 1}},
			want:    "Message (Array)",
		},
		{
			name:    "scalars",
			message: "{user} paid {amount} ok={ok}",
			logCtx:  domain.Context{"user": "bob", "amount": 12.5, "ok": true},
			want:    "bob paid 12.5 ok=true",
		},
		{
			name:    "pointer to scalar",
			message: "Retry {attempt}",
			logCtx:  domain.Context{"attempt": func() *int { n := 3; return &n }()},
			want:    "Retry 3",
		},
		{
			name:    "unmatched placeholder",
			message: "Hello {name} from {place}",
			logCtx:  domain.Context{"name": "Ann"},
			want:    "Hello Ann from {place}",
		},
		{
			name:    "error value",
			message: "Failed: {exception}",
			logCtx:  domain.Context{"exception": &LogicError{msg: "bad state"}},
			want:    "Failed: bad state",
		},
		{
			name:    "replacement is not rescanned",
			message: "{a} {b}",
			logCtx:  domain.Context{"a": "{b}", "b": "B"},
			want:    "{b} B",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, mockRepo := newLogService(t, environment.None)
			fields := captureInsert(mockRepo, domain.Columns{})

			require.NoError(t, svc.Debug(context.Background(), tc.message, tc.logCtx))

			assert.Equal(t, tc.want, (*fields)["message"])
		})
	}
}

func TestLogService_Log_StorageError(t *testing.T) {
	svc, mockRepo := newLogService(t, environment.None)
	dbErr := errors.New("db error")

	mockRepo.EXPECT().RegisteredColumns().Return(domain.Columns{})
	mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(0), dbErr)

	err := svc.Error(context.Background(), "My message", nil)

	var storageErr *service.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "insert", storageErr.Op)
	assert.ErrorIs(t, err, dbErr)
}

func TestLogService_Log_NewRecordPerCall(t *testing.T) {
	svc, mockRepo := newLogService(t, environment.None)

	mockRepo.EXPECT().RegisteredColumns().Return(domain.Columns{}).Times(2)
	mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(int64(2), nil)

	require.NoError(t, svc.Notice(context.Background(), "same", nil))
	require.NoError(t, svc.Notice(context.Background(), "same", nil))
}

func TestLogService_WithEnvironment(t *testing.T) {
	svc, mockRepo := newLogService(t, environment.None)
	fields := captureInsert(mockRepo, domain.Columns{"user": domain.ColumnTypeForeign})

	scoped := svc.WithEnvironment(environment.Static{Address: "::1", Actor: 7})
	require.NoError(t, scoped.Warning(context.Background(), "My message", nil))

	assert.Equal(t, int64(7), (*fields)["user"])
	assert.Equal(t, domain.PackIP("::1"), (*fields)["ip"])
}
