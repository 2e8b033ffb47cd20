package main

import (
	"fmt"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tcoloa/lease-calculator/internal/calculation"
	"github.com/tcoloa/lease-calculator/internal/config"
	"github.com/tcoloa/lease-calculator/internal/logging"
	"github.com/tcoloa/lease-calculator/internal/output"
)

func newCompareCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "compare <config>...",
		Short: "Compare the cumulative cost of several offers month by month",
		Long: "compare runs every configuration file independently and emits the\n" +
			"cumulative monthly series side by side, plus the break-even month\n" +
			"between the first two offers when one exists.",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.NewLogger(logLevel, logFormat)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			parser := config.NewInputParser()
			offers := make([]calculation.NamedConfig, 0, len(args))
			for _, path := range args {
				fc, err := parser.LoadFromFile(path)
				if err != nil {
					return err
				}
				cfg, notes := config.Normalize(fc)
				for _, note := range notes {
					logger.Sugar().Debugf("normalization (%s): %s", path, note)
				}
				name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
				offers = append(offers, calculation.NamedConfig{Name: name, Config: &cfg})
			}

			engine := calculation.NewCalculationEngine()
			engine.SetLogger(logging.NewEngineLogger(logger))
			cmp, err := engine.CompareOffers(offers)
			if err != nil {
				return err
			}

			var data []byte
			switch output.NormalizeFormatName(format) {
			case "csv":
				data, err = output.CompareCSV(cmp)
			case "json":
				data, err = json.MarshalIndent(cmp, "", "  ")
			default:
				return fmt.Errorf("unknown compare format %q (csv or json)", format)
			}
			if err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return err
			}

			if be := cmp.BreakEven; be != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Break-even at month %d: %s vs %s (diff %s)\n",
					be.Month,
					output.FormatEuro(be.CumulativeA),
					output.FormatEuro(be.CumulativeB),
					output.FormatEuro(be.Difference))
			} else if len(cmp.Offers) >= 2 {
				fmt.Fprintln(cmd.ErrOrStderr(), "No break-even: one offer stays cheaper for the whole period.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "comparison output format: csv or json")
	return cmd
}
