package main

import (
	"context"
	"os"

	"github.com/ONSdigital/dp-datadoc-generator/config"
	"github.com/ONSdigital/dp-datadoc-generator/display"
	"github.com/ONSdigital/dp-datadoc-generator/service"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/pkg/errors"
)

const serviceName = "dp-datadoc-generator"

func main() {
	log.Namespace = serviceName
	ctx := context.Background()

	if err := run(ctx); err != nil {
		log.Fatal(ctx, "fatal runtime error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Get()
	if err != nil {
		return errors.Wrap(err, "unable to retrieve service configuration")
	}
	log.Info(ctx, "got service configuration", log.Data{"config": cfg})

	result, err := service.New(cfg, os.Stdout).Run(ctx)
	if err != nil {
		return errors.Wrap(err, "generating metadata document failed")
	}

	display.Summary(os.Stdout, result.Path, cfg.ColourOutput)
	return nil
}
