package models

import "time"

type Config struct {
	Debug bool `yaml:"debug" envconfig:"VARIANT_CATALOG_DEBUG" default:"false"`

	Api struct {
		Port           string `yaml:"port" envconfig:"VARIANT_CATALOG_API_INTERNAL_PORT" default:"5000"`
		LogLevel       string `yaml:"logLevel" envconfig:"VARIANT_CATALOG_LOG_LEVEL" default:"info"`
		ReportTime     string `yaml:"reportTime" envconfig:"VARIANT_CATALOG_REPORT_TIME" default:"04:00:00"`
		ServiceContact string `yaml:"serviceContact" envconfig:"VARIANT_CATALOG_SERVICE_CONTACT" default:"mailto:variant-catalog@example.org"`
	} `yaml:"api"`

	Dataset struct {
		Source           string        `yaml:"source" envconfig:"VARIANT_CATALOG_DATASET_SOURCE" default:"embedded"`
		Location         string        `yaml:"location" envconfig:"VARIANT_CATALOG_DATASET_LOCATION"`
		FetchTimeout     time.Duration `yaml:"fetchTimeout" envconfig:"VARIANT_CATALOG_DATASET_FETCH_TIMEOUT" default:"30s"`
		MaxFetchAttempts int           `yaml:"maxFetchAttempts" envconfig:"VARIANT_CATALOG_DATASET_MAX_FETCH_ATTEMPTS" default:"5"`
		FieldConfigPath  string        `yaml:"fieldConfigPath" envconfig:"VARIANT_CATALOG_FIELD_CONFIG_PATH"`
	} `yaml:"dataset"`

	Elasticsearch struct {
		Url      string `yaml:"url" envconfig:"VARIANT_CATALOG_ES_URL" default:"http://localhost:9200"`
		Username string `yaml:"username" envconfig:"VARIANT_CATALOG_ES_USERNAME"`
		Password string `yaml:"password" envconfig:"VARIANT_CATALOG_ES_PASSWORD"`
		Index    string `yaml:"index" envconfig:"VARIANT_CATALOG_ES_INDEX" default:"variant-catalog"`
	} `yaml:"elasticsearch"`
}
