package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tcoloa/lease-calculator/internal/calculation"
	"github.com/tcoloa/lease-calculator/internal/config"
	"github.com/tcoloa/lease-calculator/internal/domain"
	"github.com/tcoloa/lease-calculator/internal/logging"
	"github.com/tcoloa/lease-calculator/internal/output"
)

var (
	logLevel  string
	logFormat string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		format     string
		writeFile  bool
	)

	cmd := &cobra.Command{
		Use:   "tco-loa",
		Short: "Lease (LOA) total cost of ownership calculator",
		Long: "tco-loa computes the total cost of ownership of a vehicle lease\n" +
			"contract, broken down by cost category, including the French mileage\n" +
			"allowance scale and excess-mileage penalties.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := logging.NewLogger(logLevel, logFormat)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			cfg, err := loadAndNormalize(configPath, cmd, logger)
			if err != nil {
				return err
			}

			engine := calculation.NewCalculationEngine()
			engine.SetLogger(logging.NewEngineLogger(logger))
			report := engine.RunOffer(cfg)

			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("unknown format %q (available: %s)",
					format, strings.Join(output.AvailableFormatterNames(), ", "))
			}

			if writeFile {
				name, err := output.WriteFormatted(f, report, extensionFor(f.Name()))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", name)
				return nil
			}

			data, err := f.Format(report)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the JSON/YAML configuration file (required)")
	_ = cmd.MarkFlagRequired("config")
	cmd.Flags().StringVar(&format, "format", "console", "output format: console, csv or json")
	cmd.Flags().BoolVar(&writeFile, "write", false, "write the report to a timestamped file instead of stdout")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format: console or json")
	registerOverrideFlags(cmd)

	cmd.AddCommand(newCompareCmd(), newServeCmd(), newInitCmd())
	return cmd
}

// loadAndNormalize loads the config file, overlays CLI overrides and fills
// defaults. Any failure here aborts before any computation.
func loadAndNormalize(path string, cmd *cobra.Command, logger *zap.Logger) (*domain.LeaseConfig, error) {
	parser := config.NewInputParser()
	fc, err := parser.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	config.ApplyOverrides(fc, collectOverrides(cmd))
	cfg, notes := config.Normalize(fc)
	for _, note := range notes {
		logger.Sugar().Debugf("normalization: %s", note)
	}
	return &cfg, nil
}

func extensionFor(formatterName string) string {
	switch formatterName {
	case "csv":
		return "csv"
	case "json":
		return "json"
	default:
		return "txt"
	}
}
