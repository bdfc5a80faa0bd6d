package logginghelper

import (
	"github.com/Egor213/dblogger/internal/service"
	log "github.com/sirupsen/logrus"
)

func LogQueried(f service.Filter, total int) {
	log.WithFields(log.Fields{
		"page":     f.Page,
		"per_page": f.PerPage,
		"level":    f.Level,
		"orderby":  f.OrderBy,
		"total":    total,
	}).Debug("Log records listed via HTTP")
}

func LogQueryError(f service.Filter, err error) {
	log.WithFields(log.Fields{
		"page":     f.Page,
		"per_page": f.PerPage,
		"error":    err,
	}).Error("Failed to list log records")
}

func LogGetError(id int64, err error) {
	log.WithFields(log.Fields{
		"id":    id,
		"error": err,
	}).Error("Failed to get log record")
}

func LogAuditError(method, path string, err error) {
	log.WithFields(log.Fields{
		"method": method,
		"path":   path,
		"error":  err,
	}).Warn("Failed to audit admin request")
}
