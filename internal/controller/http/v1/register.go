package httpv1

import (
	"github.com/Egor213/dblogger/internal/metrics"
	"github.com/Egor213/dblogger/internal/service"
	"github.com/labstack/echo/v4"
)

type RouterDependencies struct {
	Services    *service.Services
	Counters    *metrics.Counters
	ActorHeader string
	Audit       bool
}

func ConfigureRouter(handler *echo.Echo, deps RouterDependencies) {
	handler.HideBanner = true
	handler.HidePort = true

	api := handler.Group("/api/v1", CountRequests(deps.Counters))
	if deps.Audit {
		api.Use(Audit(deps.Services.Logger, deps.ActorHeader))
	}

	c := NewLogController(deps.Services.Query)
	api.GET("/logs", c.List)
	api.GET("/logs/:id", c.Get)
	api.GET("/levels", c.Levels)
	api.GET("/columns", c.Columns)
}
