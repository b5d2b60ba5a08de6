package cmd

import (
	"fmt"
	"os"

	"github.com/hmartiniano/variant-catalog/models/fields"
	"github.com/hmartiniano/variant-catalog/models/indexes"
	"github.com/hmartiniano/variant-catalog/repositories/store"
	"github.com/hmartiniano/variant-catalog/services/sanitation"

	"github.com/spf13/cobra"
)

var (
	fieldConfigPath string
	strict          bool
)

var validateCmd = &cobra.Command{
	Use:   "validate <dataset.json>",
	Short: "Check a dataset against the supported schema and report shadowed identifiers",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&fieldConfigPath, "field-config", "", "YAML field configuration overriding the defaults")
	validateCmd.Flags().BoolVar(&strict, "strict", false, "fail when identifiers are shadowed or locations are invalid")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	settings, err := fields.LoadSettings(fieldConfigPath)
	if err != nil {
		return err
	}

	s, err := openStore(args[0])
	if err != nil {
		return err
	}

	cmd.Printf("%s: %d genes, %d variants\n", args[0], s.GeneCount(), s.VariantCount())

	shadowed := sanitation.AuditStore(s, settings.Search)
	for _, sh := range shadowed {
		cmd.Printf("  %s: '%s' on variant %d is shadowed by variant %d\n", sh.Gene, sh.Term, sh.ShadowedIndex, sh.WinnerIndex)
	}
	invalidLocations := sanitation.AuditChromosomes(s)
	for _, symbol := range invalidLocations {
		cmd.Printf("  %s: unrecognised chromosome location\n", symbol)
	}

	if strict && len(shadowed)+len(invalidLocations) > 0 {
		return fmt.Errorf("%d shadowed identifier(s), %d invalid location(s)", len(shadowed), len(invalidLocations))
	}
	return nil
}

func openStore(path string) (*store.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	genes, err := indexes.DecodeDataset(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return store.New(genes), nil
}
