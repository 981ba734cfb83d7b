package service

import (
	"context"

	"github.com/ONSdigital/dp-frontend-ees-dashboard/config"
	"github.com/ONSdigital/dp-frontend-ees-dashboard/handlers"
	"github.com/ONSdigital/dp-frontend-ees-dashboard/query"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/log.go/log"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Service contains all the configs, server and clients to run the dashboard controller
type Service struct {
	Config         *config.Config
	HealthCheck    HealthChecker
	Server         HTTPServer
	EESClient      EESClient
	RendererClient RendererClient
	QueryService   *query.Service
	Registry       *prometheus.Registry
	ServiceList    *ExternalServiceList
}

// Run the service
func Run(ctx context.Context, cfg *config.Config, serviceList *ExternalServiceList, buildTime, gitCommit, version string, svcErrors chan error) (svc *Service, err error) {
	log.Event(ctx, "running service", log.INFO)

	// Initialise Service struct
	svc = &Service{
		Config:      cfg,
		ServiceList: serviceList,
		Registry:    prometheus.NewRegistry(),
	}

	if err = svc.Registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, errors.Wrap(err, "failed to register go collector")
	}

	// Initialise clients
	svc.EESClient = serviceList.GetEESClient(cfg)
	svc.RendererClient = serviceList.GetRendererClient(cfg.RendererURL)

	svc.QueryService, err = query.New(svc.EESClient, query.Config{
		MetadataCacheSize:      cfg.MetadataCacheSize,
		QueryCacheSize:         cfg.QueryCacheSize,
		FallbackTimePeriodCode: cfg.FallbackTimePeriodCode,
		StrictFilters:          cfg.StrictFilters,
		Registerer:             svc.Registry,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create query service")
	}

	// Get healthcheck with checkers
	svc.HealthCheck, err = serviceList.GetHealthCheck(cfg, buildTime, gitCommit, version)
	if err != nil {
		log.Event(ctx, "failed to create health check", log.FATAL, log.Error(err))
		return nil, err
	}
	if err = svc.registerCheckers(ctx); err != nil {
		return nil, errors.Wrap(err, "unable to register checkers")
	}

	svc.Server = serviceList.GetHTTPServer(cfg.BindAddr, svc.router())

	// Start Healthcheck and HTTP Server
	log.Event(ctx, "starting server", log.INFO, log.Data{
		"bind_addr":    cfg.BindAddr,
		"renderer_url": cfg.RendererURL,
		"ees_api_url":  cfg.EESAPIURL,
	})
	svc.HealthCheck.Start(ctx)
	go func() {
		if err := svc.Server.ListenAndServe(); err != nil {
			svcErrors <- errors.Wrap(err, "failure in http listen and serve")
		}
	}()

	return svc, nil
}

func (svc *Service) router() *mux.Router {
	cfg := svc.Config
	router := mux.NewRouter()
	router.StrictSlash(true).Path("/health").HandlerFunc(svc.HealthCheck.Handler)
	router.StrictSlash(true).Path("/metrics").Handler(promhttp.HandlerFor(svc.Registry, promhttp.HandlerOpts{}))

	api := router.PathPrefix("/api/datasets/{datasetKey}").Subrouter()
	api.Path("/filters/{dimension}/options").Methods("GET").HandlerFunc(handlers.FilterOptions(svc.QueryService, cfg))
	api.Path("/chart").Methods("GET").HandlerFunc(handlers.ChartData(svc.QueryService, cfg))
	api.Path("/table").Methods("GET").HandlerFunc(handlers.Table(svc.QueryService, cfg))
	api.Path("/export.xlsx").Methods("GET").HandlerFunc(handlers.ExportXLSX(svc.QueryService, cfg))

	router.Path("/").Methods("GET").HandlerFunc(handlers.HomepageRender(svc.RendererClient, cfg))
	router.StrictSlash(true).Path("/{datasetKey}").Methods("GET").HandlerFunc(handlers.DatasetPageRender(svc.RendererClient, svc.QueryService, cfg))

	return router
}

// Close gracefully shuts the service down, bounded by GracefulShutdownTimeout.
// The health check stops first so it does not report a half closed service as
// unhealthy; the http server then drains in-flight page and api requests. The
// query caches are in memory and need no closing.
func (svc *Service) Close(ctx context.Context) error {
	timeout := svc.Config.GracefulShutdownTimeout
	log.Event(ctx, "commencing graceful shutdown", log.INFO, log.Data{"graceful_shutdown_timeout": timeout})
	ctx, cancel := context.WithTimeout(ctx, timeout)

	var shutdownErr error
	go func() {
		defer cancel()
		if svc.ServiceList.HealthCheck {
			svc.HealthCheck.Stop()
		}
		if err := svc.Server.Shutdown(ctx); err != nil {
			log.Event(ctx, "failed to shutdown http server", log.ERROR, log.Error(err))
			shutdownErr = err
		}
	}()

	<-ctx.Done()
	if ctx.Err() == context.DeadlineExceeded {
		log.Event(ctx, "shutdown timed out", log.ERROR, log.Error(ctx.Err()))
		return ctx.Err()
	}
	if shutdownErr != nil {
		return errors.Wrap(shutdownErr, "failed to shutdown gracefully")
	}

	log.Event(ctx, "graceful shutdown was successful", log.INFO)
	return nil
}

// checkers are registered even when an earlier one fails so every failure is logged
func (svc *Service) registerCheckers(ctx context.Context) error {
	checkers := []struct {
		name    string
		checker healthcheck.Checker
	}{
		{"explore education statistics api", svc.EESClient.Checker},
		{"frontend renderer", svc.RendererClient.Checker},
	}

	hasErrors := false
	for _, c := range checkers {
		if err := svc.HealthCheck.AddCheck(c.name, c.checker); err != nil {
			hasErrors = true
			log.Event(ctx, "failed to add checker", log.ERROR, log.Error(err), log.Data{"checker": c.name})
		}
	}

	if hasErrors {
		return errors.New("Error(s) registering checkers for healthcheck")
	}
	return nil
}
