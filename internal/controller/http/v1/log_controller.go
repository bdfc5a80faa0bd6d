package httpv1

import (
	"errors"
	"net/http"
	"strconv"

	logginghelper "github.com/Egor213/dblogger/internal/controller/common/logging"
	"github.com/Egor213/dblogger/internal/controller/http/validators"
	"github.com/Egor213/dblogger/internal/domain"
	"github.com/Egor213/dblogger/internal/repo/repoerrs"
	"github.com/Egor213/dblogger/internal/service"
	"github.com/labstack/echo/v4"
)

type LogController struct {
	queryService service.Query
}

func NewLogController(qs service.Query) *LogController {
	return &LogController{
		queryService: qs,
	}
}

// List serves one page of log records filtered by the query string.
func (c *LogController) List(ctx echo.Context) error {
	req := validators.NewListRequest()
	err := echo.QueryParamsBinder(ctx).
		Int("page", &req.Page).
		Int("per_page", &req.PerPage).
		String("s", &req.Search).
		String("level", &req.Level).
		String("orderby", &req.OrderBy).
		String("order", &req.Order).
		BindError()
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	params, err := validators.Validate(&req)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	filter := NewFilterFromParams(params)
	records, total, err := c.queryService.Query(ctx.Request().Context(), filter)
	if err != nil {
		logginghelper.LogQueryError(filter, err)
		if errors.Is(err, service.ErrInvalidPagination) {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	logginghelper.LogQueried(filter, total)

	return ctx.JSON(http.StatusOK, ToListResponse(records, total, filter))
}

func (c *LogController) Get(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "id must be a positive number"})
	}

	record, err := c.queryService.Get(ctx.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "log record not found"})
		}
		logginghelper.LogGetError(id, err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return ctx.JSON(http.StatusOK, ToLogItem(record))
}

func (c *LogController) Levels(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, ToLevelItems(domain.Levels()))
}

func (c *LogController) Columns(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, ColumnsResponse{Sortable: c.queryService.SortableColumns()})
}
