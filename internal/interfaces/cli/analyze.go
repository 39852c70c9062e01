package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/K-dessa/VHM-api-sub000/pkg/types/analysis"
)

// newAnalyzeCmd creates the analyze subcommand, a one-shot analysis that
// prints the full JSON report to stdout.
func newAnalyzeCmd(opts *RootOptions) *cobra.Command {
	var (
		tradeName string
		contact   string
		website   string
		depth     string
	)

	cmd := &cobra.Command{
		Use:   "analyze <company-name>",
		Short: "Run one analysis and print the JSON report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			a, err := buildApp(cfg, logger, false)
			if err != nil {
				return err
			}

			report, err := a.coordinator.Analyze(cmd.Context(), analysis.Request{
				CompanyName: args[0],
				TradeName:   tradeName,
				Contact:     contact,
				WebsiteURL:  website,
				Depth:       analysis.Depth(depth),
			})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}

	f := cmd.Flags()
	f.StringVar(&tradeName, "trade-name", "", "trade name to search alongside the statutory name")
	f.StringVar(&contact, "contact", "", "contact person to match against case parties")
	f.StringVar(&website, "website", "", "company website URL for profile extraction")
	f.StringVar(&depth, "depth", "", "analysis depth (fast, standard, deep)")

	return cmd
}

//Personal.AI order the ending
