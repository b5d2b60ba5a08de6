package cmd

import (
	"github.com/hmartiniano/variant-catalog/services/conversion"

	"github.com/spf13/cobra"
)

var convertOpts conversion.Options

var convertCmd = &cobra.Command{
	Use:   "convert <input.xlsx> <output.json>",
	Short: "Convert variant data from an Excel workbook to the dataset JSON format",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := conversion.Convert(args[0], args[1], convertOpts, log)
		if err != nil {
			return err
		}
		cmd.Printf("Successfully converted '%s' to '%s' (%d genes, %d variants, %d rows skipped)\n",
			report.Input, report.Output, report.GeneCount, report.VariantCount, len(report.SkippedRows))
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertOpts.GeneColumn, "gene-column", conversion.DefaultGeneColumn, "name of the column containing the gene symbol")
	convertCmd.Flags().StringVar(&convertOpts.Sheet, "sheet", "", "sheet to read (defaults to the first sheet)")
	rootCmd.AddCommand(convertCmd)
}
