package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ONSdigital/dp-frontend-ees-dashboard/config"
	"github.com/ONSdigital/dp-frontend-ees-dashboard/service"
	"github.com/ONSdigital/log.go/log"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const serviceName = "dp-frontend-ees-dashboard"

var (
	// BuildTime represents the time in which the service was built
	BuildTime string
	// GitCommit represents the commit (SHA-1) hash of the service that is running
	GitCommit string
	// Version represents the version of the service that is running
	Version string
)

func main() {
	log.Namespace = serviceName
	ctx := context.Background()

	if err := run(ctx); err != nil {
		log.Event(ctx, "application unexpectedly failed", log.FATAL, log.Error(err))
		os.Exit(1)
	}

	os.Exit(0)
}

func run(ctx context.Context) error {
	// a local .env file is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Event(ctx, "failed to load .env file", log.WARN, log.Error(err))
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	cfg, err := config.Get()
	if err != nil {
		return errors.Wrap(err, "unable to retrieve service configuration")
	}
	log.Event(ctx, "got service configuration", log.INFO, log.Data{"config": cfg})

	svcErrors := make(chan error, 1)
	svcList := service.NewServiceList(&service.Init{})

	svc, err := service.Run(ctx, cfg, svcList, BuildTime, GitCommit, Version, svcErrors)
	if err != nil {
		return errors.Wrap(err, "running service failed")
	}

	// blocks until an os interrupt or a fatal error occurs
	select {
	case err := <-svcErrors:
		log.Event(ctx, "service error received", log.ERROR, log.Error(err))
	case sig := <-signals:
		log.Event(ctx, "os signal received", log.INFO, log.Data{"signal": sig})
	}

	return svc.Close(ctx)
}
