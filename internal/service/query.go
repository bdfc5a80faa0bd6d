package service

import (
	"context"
	"fmt"

	"github.com/Egor213/dblogger/internal/domain"
	"github.com/Egor213/dblogger/internal/metrics"
	"github.com/Egor213/dblogger/internal/repo"
	"github.com/Egor213/dblogger/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/dblogger/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Filter selects one page of log records. Page is 1-based.
type Filter struct {
	Page    int
	PerPage int
	Message string
	Level   domain.Level
	OrderBy string
	Desc    bool
}

type QueryService struct {
	logRepo  repo.Log
	counters *metrics.Counters
}

func NewQueryService(lr repo.Log, cnt *metrics.Counters) *QueryService {
	return &QueryService{
		logRepo:  lr,
		counters: cnt,
	}
}

// Query returns the requested page and the number of records matching the
// filter before pagination. An invalid level or an unsortable column is ignored.
func (s *QueryService) Query(ctx context.Context, f Filter) ([]domain.LogRecord, int, error) {
	if f.Page < 1 || f.PerPage < 1 {
		s.counters.Queries.Inc("rejected")
		return nil, 0, errorsUtils.WrapPathErr(fmt.Errorf("%w: page=%d per_page=%d", ErrInvalidPagination, f.Page, f.PerPage))
	}

	lf := repotypes.LogFilter{
		Message: f.Message,
		Limit:   uint64(f.PerPage),
		Offset:  uint64(f.Page-1) * uint64(f.PerPage),
		Desc:    f.Desc,
	}
	if f.Level.IsValid() {
		lf.Level = string(f.Level)
	}
	if s.isSortable(f.OrderBy) {
		lf.OrderBy = f.OrderBy
	}

	rows, total, err := s.logRepo.Query(ctx, lf)
	if err != nil {
		s.counters.Queries.Inc("failed")
		return nil, 0, errorsUtils.WrapPathErr(&StorageError{Op: "query", Err: err})
	}

	columns := s.logRepo.RegisteredColumns()
	records := make([]domain.LogRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.RecordFromRow(row, columns))
	}

	s.counters.Queries.Inc("ok")
	log.WithFields(log.Fields{
		"page":     f.Page,
		"per_page": f.PerPage,
		"total":    total,
		"returned": len(records),
	}).Debug("Log records queried")

	return records, total, nil
}

func (s *QueryService) Get(ctx context.Context, id int64) (domain.LogRecord, error) {
	row, err := s.logRepo.Get(ctx, id)
	if err != nil {
		return domain.LogRecord{}, errorsUtils.WrapPathErr(&StorageError{Op: "get", Err: err})
	}
	return domain.RecordFromRow(row, s.logRepo.RegisteredColumns()), nil
}

func (s *QueryService) SortableColumns() []string {
	return s.logRepo.RegisteredSortableColumns()
}

func (s *QueryService) isSortable(column string) bool {
	if column == "" {
		return false
	}
	for _, c := range s.logRepo.RegisteredSortableColumns() {
		if c == column {
			return true
		}
	}
	return false
}

// TotalPages is the number of pages needed to show total records perPage at a time.
func TotalPages(total, perPage int) int {
	if perPage < 1 || total < 1 {
		return 0
	}
	return (total + perPage - 1) / perPage
}
