package service

import (
	"context"
	"net/http"

	"github.com/ONSdigital/dp-frontend-ees-dashboard/config"
	"github.com/ONSdigital/dp-frontend-ees-dashboard/query"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
)

//go:generate moq -out mock/initialiser.go -pkg mock . Initialiser
//go:generate moq -out mock/server.go -pkg mock . HTTPServer
//go:generate moq -out mock/healthcheck.go -pkg mock . HealthChecker
//go:generate moq -out mock/clients.go -pkg mock . EESClient RendererClient

// Initialiser defines the methods to initialise external services
type Initialiser interface {
	DoGetHTTPServer(bindAddr string, router http.Handler) HTTPServer
	DoGetHealthCheck(cfg *config.Config, buildTime, gitCommit, version string) (HealthChecker, error)
	DoGetEESClient(cfg *config.Config) EESClient
	DoGetRendererClient(rendererURL string) RendererClient
}

// HTTPServer defines the required methods from the HTTP server
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HealthChecker defines the required methods from Healthcheck
type HealthChecker interface {
	Handler(w http.ResponseWriter, req *http.Request)
	Start(ctx context.Context)
	Stop()
	AddCheck(name string, checker healthcheck.Checker) (err error)
}

// EESClient is the statistics api client, with its health checker
type EESClient interface {
	query.Client
	Checker(ctx context.Context, state *healthcheck.CheckState) error
}

// RendererClient renders page templates, with its health checker
type RendererClient interface {
	Do(string, []byte) ([]byte, error)
	Checker(ctx context.Context, state *healthcheck.CheckState) error
}
