package service

import (
	"net/http"

	"github.com/ONSdigital/dp-api-clients-go/renderer"
	"github.com/ONSdigital/dp-frontend-ees-dashboard/config"
	"github.com/ONSdigital/dp-frontend-ees-dashboard/ees"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	dphttp "github.com/ONSdigital/dp-net/http"
)

// ExternalServiceList holds the initialiser and initialisation state of external services.
type ExternalServiceList struct {
	HealthCheck bool
	Init        Initialiser
}

// NewServiceList creates a new service list with the provided initialiser
func NewServiceList(initialiser Initialiser) *ExternalServiceList {
	return &ExternalServiceList{
		HealthCheck: false,
		Init:        initialiser,
	}
}

// Init implements the Initialiser interface to initialise dependencies
type Init struct{}

// GetHTTPServer creates an http server
func (e *ExternalServiceList) GetHTTPServer(bindAddr string, router http.Handler) HTTPServer {
	return e.Init.DoGetHTTPServer(bindAddr, router)
}

// GetHealthCheck creates a healthcheck with versionInfo and sets the HealthCheck flag to true
func (e *ExternalServiceList) GetHealthCheck(cfg *config.Config, buildTime, gitCommit, version string) (HealthChecker, error) {
	hc, err := e.Init.DoGetHealthCheck(cfg, buildTime, gitCommit, version)
	if err != nil {
		return nil, err
	}
	e.HealthCheck = true
	return hc, nil
}

// GetEESClient creates the statistics api client
func (e *ExternalServiceList) GetEESClient(cfg *config.Config) EESClient {
	return e.Init.DoGetEESClient(cfg)
}

// GetRendererClient creates the renderer client
func (e *ExternalServiceList) GetRendererClient(rendererURL string) RendererClient {
	return e.Init.DoGetRendererClient(rendererURL)
}

// DoGetHTTPServer creates an HTTP Server with the provided bind address and router
func (e *Init) DoGetHTTPServer(bindAddr string, router http.Handler) HTTPServer {
	s := dphttp.NewServer(bindAddr, router)
	s.HandleOSSignals = false
	return s
}

// DoGetHealthCheck creates a healthcheck with versionInfo
func (e *Init) DoGetHealthCheck(cfg *config.Config, buildTime, gitCommit, version string) (HealthChecker, error) {
	versionInfo, err := healthcheck.NewVersionInfo(buildTime, gitCommit, version)
	if err != nil {
		return nil, err
	}
	hc := healthcheck.New(versionInfo, cfg.HealthCheckCriticalTimeout, cfg.HealthCheckInterval)
	return &hc, nil
}

// DoGetEESClient creates a statistics api client that never retries
func (e *Init) DoGetEESClient(cfg *config.Config) EESClient {
	return ees.New(cfg.EESAPIURL, cfg.EESAPITimeout)
}

// DoGetRendererClient creates a renderer client
func (e *Init) DoGetRendererClient(rendererURL string) RendererClient {
	return renderer.New(rendererURL)
}
