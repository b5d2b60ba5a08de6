package cmd

import (
	"github.com/hmartiniano/variant-catalog/models"
	esRepo "github.com/hmartiniano/variant-catalog/repositories/elasticsearch"
	"github.com/hmartiniano/variant-catalog/utils"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

var publishIndex string

var publishCmd = &cobra.Command{
	Use:   "publish <dataset.json>",
	Short: "Bulk index a dataset into Elasticsearch, one document per gene",
	Long: `publish validates the dataset and writes it to the configured index.
Connection settings are read from the VARIANT_CATALOG_ES_* environment variables.`,
	Args: cobra.ExactArgs(1),
	RunE: runPublish,
}

func init() {
	publishCmd.Flags().StringVar(&publishIndex, "index", "", "target index (defaults to VARIANT_CATALOG_ES_INDEX)")
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	var cfg models.Config
	if err := envconfig.Process("", &cfg); err != nil {
		return err
	}
	if publishIndex != "" {
		cfg.Elasticsearch.Index = publishIndex
	}

	s, err := openStore(args[0])
	if err != nil {
		return err
	}

	es, err := utils.CreateEsConnection(&cfg, nil, log)
	if err != nil {
		return err
	}

	stats, err := esRepo.IndexGeneRecords(cmd.Context(), &cfg, es, s, log)
	if err != nil {
		return err
	}

	cmd.Printf("Published %d genes to '%s' (%d failed)\n", stats.NumFlushed, stats.Index, stats.NumFailed)
	return nil
}
