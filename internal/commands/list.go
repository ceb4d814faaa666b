package commands

import (
	"github.com/spf13/cobra"
)

func addList(topLevel *cobra.Command, ro *rootOptions) {
	lo := listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the pictures in a date range.",
		Example: `
skyview list
skyview list --start 2024-01-01 --end 2024-01-31 --search nebula
skyview list --sort title --order asc --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), cmd.OutOrStdout(), ro, lo)
		},
	}

	cmd.Flags().StringVar(&lo.Search, "search", "", "Only titles containing this text (case-insensitive).")
	cmd.Flags().StringVar(&lo.Sort, "sort", "date", "Sort property. One of 'date' or 'title'.")
	cmd.Flags().StringVar(&lo.Order, "order", "desc", "Sort order. One of 'asc' or 'desc'.")
	cmd.Flags().BoolVar(&lo.JSON, "json", false, "Output as JSON.")

	topLevel.AddCommand(cmd)
}
