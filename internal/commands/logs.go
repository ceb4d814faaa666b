package commands

import (
	"github.com/spf13/cobra"

	"github.com/five82/skyview/internal/config"
	"github.com/five82/skyview/internal/logging"
	"github.com/five82/skyview/internal/logtail"
	"github.com/five82/skyview/internal/printers"
)

const defaultLogLines = 50

func addLogs(topLevel *cobra.Command, ro *rootOptions) {
	lines := defaultLogLines
	level := logging.LevelDebug
	raw := false

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the end of skyview's log file.",
		Example: `
skyview logs
skyview logs --lines 200 --level warn
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(ro.ConfigPath)
			if err != nil {
				return err
			}

			tail, err := logtail.Read(cfg.LogFile, lines)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if raw {
				for _, line := range tail {
					if _, err := out.Write([]byte(line + "\n")); err != nil {
						return err
					}
				}
				return nil
			}

			pp := printers.New(colorable(out))
			pp.LogEntries(logtail.ParseAll(tail, logging.ParseLevel(level)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", defaultLogLines, "Number of lines to read from the end (0 reads all).")
	cmd.Flags().StringVar(&level, "level", level, "Minimum level to print: debug, info, warn or error.")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the JSON lines unchanged.")

	topLevel.AddCommand(cmd)
}
