package app

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/Egor213/dblogger/internal/config"
	httpv1 "github.com/Egor213/dblogger/internal/controller/http/v1"
	"github.com/Egor213/dblogger/internal/environment"
	"github.com/Egor213/dblogger/internal/metrics"
	"github.com/Egor213/dblogger/internal/service"
	errorsUtils "github.com/Egor213/dblogger/pkg/errors"
	"github.com/Egor213/dblogger/pkg/httpserver"
	"github.com/labstack/echo/v4"

	log "github.com/sirupsen/logrus"
)

// Serve runs the admin API and the metrics server until a signal or a server failure.
func Serve(cfg *config.Config) error {
	// Storage
	repositories, closeStorage, err := openStorage(cfg)
	if err != nil {
		return err
	}
	defer closeStorage()

	// Services
	metricsCnt := metrics.New()
	deps := service.ServicesDependencies{
		Repos:       repositories,
		Counters:    metricsCnt,
		Environment: environment.None,
	}
	services := service.NewServices(deps)

	// Admin server
	log.Infof("Starting admin HTTP server...")
	log.Debugf("Admin server port: %s", cfg.HTTP.Port)
	adminHandler := echo.New()
	httpv1.ConfigureRouter(adminHandler, httpv1.RouterDependencies{
		Services:    services,
		Counters:    metricsCnt,
		ActorHeader: cfg.HTTP.ActorHeader,
		Audit:       cfg.HTTP.Audit,
	})
	adminServer := httpserver.New(adminHandler,
		httpserver.Port(cfg.HTTP.Port),
		httpserver.ReadTimeout(cfg.HTTP.ReadTimeout),
		httpserver.WriteTimeout(cfg.HTTP.WriteTimeout),
		httpserver.ShutdownTimeout(cfg.HTTP.ShutdownTimeout),
	)

	// Prometheus server
	log.Infof("Starting metrics server...")
	log.Debugf("Metrics server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler, httpserver.Port(cfg.Prometheus.Port))

	log.Info("Configuring graceful shutdown...")

	// Waiting signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info(errorsUtils.WrapPathErr(errors.New(s.String())))
	case err := <-metricsServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	case err := <-adminServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	shutdownApp(adminServer, metricsServer)
	return nil
}

func shutdownApp(servers ...*httpserver.Server) {
	log.Info("Shutting down...")
	for _, s := range servers {
		if err := s.Shutdown(); err != nil {
			log.Error(errorsUtils.WrapPathErr(err))
		}
	}
}
