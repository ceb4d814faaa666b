package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/skyview/internal/apod"
	"github.com/five82/skyview/internal/app"
	"github.com/five82/skyview/internal/printers"
)

func addShow(topLevel *cobra.Command, ro *rootOptions) {
	asJSON := false
	width := printers.DefaultWidth

	cmd := &cobra.Command{
		Use:   "show DATE",
		Short: "Print one picture with its explanation.",
		Example: `
skyview show 2024-01-02
skyview show 2024-01-02 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := args[0]
			if err := apod.ValidateDay(date, now()); err != nil {
				return err
			}

			env, err := app.Setup(ro.Options)
			if err != nil {
				return err
			}
			defer func() { _ = env.Close() }()

			env.Logger.Info("show", "date", date)
			r, err := env.Client.FetchDate(cmd.Context(), date)
			if err != nil {
				env.Logger.Error("fetch date failed", "date", date, "error", err)
				return fmt.Errorf("failed to load NASA APOD: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return printers.JSON(out, r)
			}
			pp := printers.New(colorable(out))
			pp.Width = width
			pp.Detail(r)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON.")
	cmd.Flags().IntVar(&width, "width", printers.DefaultWidth, "Wrap the explanation at this many columns.")

	topLevel.AddCommand(cmd)
}
