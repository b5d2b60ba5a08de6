package main

import (
	"context"
	"os"

	"github.com/hmartiniano/variant-catalog/api"
	"github.com/hmartiniano/variant-catalog/models"
	datasetSource "github.com/hmartiniano/variant-catalog/models/constants/dataset-source"
	"github.com/hmartiniano/variant-catalog/models/fields"
	"github.com/hmartiniano/variant-catalog/services/loading"
	"github.com/hmartiniano/variant-catalog/services/sanitation"
	variantsService "github.com/hmartiniano/variant-catalog/services/variants"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()

	// Gather environment variables
	var cfg models.Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		log.WithError(err).Error("invalid configuration")
		os.Exit(2)
	}
	if !datasetSource.IsKnownDatasetSource(cfg.Dataset.Source) {
		log.WithField("datasetSource", cfg.Dataset.Source).Error("unknown dataset source; expected embedded, file, url or elasticsearch")
		os.Exit(2)
	}

	level, err := logrus.ParseLevel(cfg.Api.LogLevel)
	if err != nil {
		log.WithError(err).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	if cfg.Debug {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	log.WithFields(logrus.Fields{
		"debug":          cfg.Debug,
		"datasetSource":  cfg.Dataset.Source,
		"datasetPath":    cfg.Dataset.Location,
		"fieldConfig":    cfg.Dataset.FieldConfigPath,
		"elasticsearch":  cfg.Elasticsearch.Url,
		"esIndex":        cfg.Elasticsearch.Index,
		"reportSchedule": cfg.Api.ReportTime,
		"port":           cfg.Api.Port,
	}).Info("Using configuration")
	// --

	settings, err := fields.LoadSettings(cfg.Dataset.FieldConfigPath)
	if err != nil {
		log.WithError(err).Error("invalid field configuration")
		os.Exit(2)
	}

	// Service Singletons
	loader := loading.NewLoadService(&cfg, log)
	vs := variantsService.NewVariantService(&cfg, settings, loader, log)
	ss := sanitation.NewSanitationService(&cfg, settings, loader, vs, log)

	// a failed load is final; the server still starts and answers 503
	if err := loader.Load(context.Background()); err != nil {
		log.Error(loading.LoadFailureMessage)
	}

	if err := ss.Init(); err != nil {
		log.WithError(err).Warn("sanitation report disabled")
	}
	defer ss.Stop()

	e := api.NewServer(api.Services{
		Config:     &cfg,
		Settings:   settings,
		Log:        log,
		Loader:     loader,
		Variants:   vs,
		Sanitation: ss,
	})

	// Run
	log.Fatal(e.Start(":" + cfg.Api.Port))
}
