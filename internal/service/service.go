package service

import (
	"context"

	"github.com/Egor213/dblogger/internal/domain"
	"github.com/Egor213/dblogger/internal/environment"
	"github.com/Egor213/dblogger/internal/metrics"
	"github.com/Egor213/dblogger/internal/repo"
)

type Logger interface {
	Log(ctx context.Context, level domain.Level, message string, logCtx domain.Context) error
	Emergency(ctx context.Context, message string, logCtx domain.Context) error
	Alert(ctx context.Context, message string, logCtx domain.Context) error
	Critical(ctx context.Context, message string, logCtx domain.Context) error
	Error(ctx context.Context, message string, logCtx domain.Context) error
	Warning(ctx context.Context, message string, logCtx domain.Context) error
	Notice(ctx context.Context, message string, logCtx domain.Context) error
	Info(ctx context.Context, message string, logCtx domain.Context) error
	Debug(ctx context.Context, message string, logCtx domain.Context) error
	WithEnvironment(env environment.Provider) Logger
}

type Query interface {
	Query(ctx context.Context, filter Filter) ([]domain.LogRecord, int, error)
	Get(ctx context.Context, id int64) (domain.LogRecord, error)
	SortableColumns() []string
}

type Services struct {
	Logger
	Query
}

type ServicesDependencies struct {
	Repos       *repo.Repositories
	Counters    *metrics.Counters
	Environment environment.Provider
}

func NewServices(deps ServicesDependencies) *Services {
	env := deps.Environment
	if env == nil {
		env = environment.None
	}
	return &Services{
		Logger: NewLogService(deps.Repos.Log, env, deps.Counters),
		Query:  NewQueryService(deps.Repos.Log, deps.Counters),
	}
}
