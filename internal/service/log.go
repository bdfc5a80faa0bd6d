package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Egor213/dblogger/internal/domain"
	"github.com/Egor213/dblogger/internal/environment"
	"github.com/Egor213/dblogger/internal/metrics"
	"github.com/Egor213/dblogger/internal/repo"
	"github.com/Egor213/dblogger/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/dblogger/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	columnPrefix = "_"

	ContextGroup     = "_group"
	ContextUser      = "_user"
	ContextException = "exception"
)

// LogService writes log calls to storage as normalized rows.
type LogService struct {
	logRepo  repo.Log
	env      environment.Provider
	counters *metrics.Counters
	now      func() time.Time
}

type LogServiceOption func(*LogService)

// WithClock replaces the clock used to stamp records.
func WithClock(now func() time.Time) LogServiceOption {
	return func(s *LogService) {
		s.now = now
	}
}

func NewLogService(lr repo.Log, env environment.Provider, cnt *metrics.Counters, opts ...LogServiceOption) *LogService {
	s := &LogService{
		logRepo:  lr,
		env:      env,
		counters: cnt,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithEnvironment returns a copy of the service that reads ambient values from env.
func (s *LogService) WithEnvironment(env environment.Provider) Logger {
	cp := *s
	cp.env = env
	return &cp
}

// Log validates level, builds the row and inserts it.
//
// Keys of logCtx prefixed with "_" name columns: "_group" sets the group,
// "_user" overrides the ambient actor (a false value records no actor) and
// any other "_name" fills column name when the backend registers it.
// The whole logCtx is stored as JSON in the context column.
func (s *LogService) Log(ctx context.Context, level domain.Level, message string, logCtx domain.Context) error {
	if !level.IsValid() {
		s.counters.RecordsWritten.Inc("invalid", "rejected")
		return errorsUtils.WrapPathErr(fmt.Errorf("%w: %q", ErrInvalidLevel, level))
	}

	fields := s.buildFields(level, message, logCtx)

	id, err := s.logRepo.Insert(ctx, fields)
	if err != nil {
		s.counters.RecordsWritten.Inc(string(level), "failed")
		log.WithFields(log.Fields{
			"level": level,
			"error": err,
		}).Error("Failed to store log record")
		return errorsUtils.WrapPathErr(&StorageError{Op: "insert", Err: err})
	}

	s.counters.RecordsWritten.Inc(string(level), "ok")
	log.WithFields(log.Fields{
		"id":    id,
		"level": level,
	}).Debug("Log record stored")

	return nil
}

func (s *LogService) buildFields(level domain.Level, message string, logCtx domain.Context) repotypes.Fields {
	excType, trace := exceptionDetails(logCtx[ContextException])

	fields := repotypes.Fields{
		domain.ColumnLevel:     string(level),
		domain.ColumnMessage:   Interpolate(message, logCtx),
		domain.ColumnGroup:     "",
		domain.ColumnTime:      domain.FormatTime(s.now()),
		domain.ColumnIP:        domain.PackIP(s.env.ClientAddress()),
		domain.ColumnException: excType,
		domain.ColumnTrace:     trace,
	}

	if group, ok := logCtx[ContextGroup]; ok {
		fields[domain.ColumnGroup] = domain.TruncateGroup(Stringify(group))
	}

	registered := s.logRepo.RegisteredColumns()
	for key, value := range logCtx {
		if key == ContextGroup || key == ContextUser {
			continue
		}
		name, ok := strings.CutPrefix(key, columnPrefix)
		if !ok {
			continue
		}
		if registered.Has(name) {
			fields[name] = value
		}
	}

	if user, ok := logCtx[ContextUser]; ok {
		fields[domain.ColumnUser] = user
	} else if id, ok := s.env.CurrentActor(); ok {
		fields[domain.ColumnUser] = id
	}

	fields[domain.ColumnContext] = domain.EncodeContext(logCtx)

	return fields
}

func (s *LogService) Emergency(ctx context.Context, message string, logCtx domain.Context) error {
	return s.Log(ctx, domain.LevelEmergency, message, logCtx)
}

func (s *LogService) Alert(ctx context.Context, message string, logCtx domain.Context) error {
	return s.Log(ctx, domain.LevelAlert, message, logCtx)
}

func (s *LogService) Critical(ctx context.Context, message string, logCtx domain.Context) error {
	return s.Log(ctx, domain.LevelCritical, message, logCtx)
}

func (s *LogService) Error(ctx context.Context, message string, logCtx domain.Context) error {
	return s.Log(ctx, domain.LevelError, message, logCtx)
}

func (s *LogService) Warning(ctx context.Context, message string, logCtx domain.Context) error {
	return s.Log(ctx, domain.LevelWarning, message, logCtx)
}

func (s *LogService) Notice(ctx context.Context, message string, logCtx domain.Context) error {
	return s.Log(ctx, domain.LevelNotice, message, logCtx)
}

func (s *LogService) Info(ctx context.Context, message string, logCtx domain.Context) error {
	return s.Log(ctx, domain.LevelInfo, message, logCtx)
}

func (s *LogService) Debug(ctx context.Context, message string, logCtx domain.Context) error {
	return s.Log(ctx, domain.LevelDebug, message, logCtx)
}
