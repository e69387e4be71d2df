package cli

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/dshills/glint/internal/config"
	"github.com/dshills/glint/internal/review"
)

var (
	flagChecksExtended bool
	flagChecksRules    string
)

var checksCmd = &cobra.Command{
	Use:   "checks",
	Short: "List the active check battery",
	RunE: func(cmd *cobra.Command, args []string) error {
		overrides := map[string]string{"rules_file": flagChecksRules}
		if flagChecksExtended {
			overrides["extended"] = "true"
		}
		cfg, err := config.Load(overrides)
		if err != nil {
			return err
		}
		gen, err := newGenerator(cfg)
		if err != nil {
			return err
		}

		data := [][]string{{"ID", "Category", "Severity", "Battery"}}
		for _, c := range gen.Checks() {
			battery := "default"
			if c.Extended {
				battery = "extended"
			}
			data = append(data, []string{c.ID, string(c.Category), string(gen.EffectiveSeverity(c)), battery})
		}

		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return fmt.Errorf("rendering table: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), table)
		return nil
	},
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List known languages and the check family they use",
	Run: func(cmd *cobra.Command, args []string) {
		for _, lang := range review.KnownLanguages() {
			fmt.Fprintf(cmd.OutOrStdout(), "  - %-12s %s\n", lang, review.FamilyOf(lang))
		}
	},
}

func init() {
	checksCmd.Flags().BoolVar(&flagChecksExtended, "extended", false, "Include the extended battery")
	checksCmd.Flags().StringVar(&flagChecksRules, "rules", "", "Rules file path")
}
