package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/K-dessa/VHM-api-sub000/internal/application/legalsearch"
)

// newLegalCmd creates the legal subcommand, a case-index-only search that
// skips news, crawling, and risk weighting.
func newLegalCmd(opts *RootOptions) *cobra.Command {
	var (
		tradeName string
		contact   string
	)

	cmd := &cobra.Command{
		Use:   "legal <company-name>",
		Short: "Search court cases for a company and print the JSON findings",
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

			findings := a.legal.Search(cmd.Context(), legalsearch.SearchParams{
				CompanyName:   args[0],
				TradeName:     tradeName,
				ContactPerson: contact,
			})

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(findings)
		},
	}

	f := cmd.Flags()
	f.StringVar(&tradeName, "trade-name", "", "trade name to search alongside the statutory name")
	f.StringVar(&contact, "contact", "", "contact person to match against case parties")

	return cmd
}

//Personal.AI order the ending
