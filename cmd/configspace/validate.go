package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"hpolib-hq/configspace/pkg/config"
	"hpolib-hq/configspace/pkg/telemetry/logging"
)

var validateFlags struct {
	format string
}

var validateCmd = &cobra.Command{
	Use:   "validate-config",
	Short: "Validate a configspace configuration file",
	Long: `Load a configuration file, apply defaults and CONFIGSPACE_* environment
overrides, and report every validation problem.

Examples:
  # Validate the default file
  configspace validate-config

  # Validate a specific file and print JSON
  configspace validate-config --config deploy/configspace.yaml --format json`,
	Args: cobra.NoArgs,
	RunE: validateConfig,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateFlags.format, "format", "text", "output format: text, json")
}

// validationReport is the result printed by validate-config.
type validationReport struct {
	File   string         `json:"file"`
	Valid  bool           `json:"valid"`
	Errors []string       `json:"errors,omitempty"`
	Config *config.Config `json:"config,omitempty"`
}

func validateConfig(cmd *cobra.Command, args []string) error {
	if validateFlags.format != "text" && validateFlags.format != "json" {
		return fmt.Errorf("unknown output format %q: must be text or json", validateFlags.format)
	}

	report := validationReport{File: cfgFile}
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		var verr config.ValidationError
		if errors.As(err, &verr) {
			for _, fe := range verr.Errors {
				report.Errors = append(report.Errors, fe.Error())
			}
		} else {
			report.Errors = []string{err.Error()}
		}
	} else if logger, lerr := logging.NewFromConfig(cfg.Telemetry.Logging, cmd.ErrOrStderr()); lerr != nil {
		report.Errors = []string{fmt.Sprintf("telemetry.logging: %v", lerr)}
	} else {
		report.Valid = true
		report.Config = cfg
		logger.Debug("configuration loaded", "file", cfgFile)
	}

	if err := writeReport(cmd.OutOrStdout(), report, validateFlags.format); err != nil {
		return err
	}
	if !report.Valid {
		return fmt.Errorf("%s: configuration is invalid", cfgFile)
	}
	return nil
}

func writeReport(w io.Writer, report validationReport, format string) error {
	if format == "json" {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	if report.Valid {
		cfg := report.Config
		fmt.Fprintf(w, "%s: configuration is valid\n", report.File)
		fmt.Fprintf(w, "  logging: level=%s format=%s\n", cfg.Telemetry.Logging.Level, cfg.Telemetry.Logging.Format)
		fmt.Fprintf(w, "  metrics: enabled=%t namespace=%s subsystem=%s\n",
			cfg.Telemetry.Metrics.Enabled, cfg.Telemetry.Metrics.Namespace, cfg.Telemetry.Metrics.Subsystem)
		fmt.Fprintf(w, "  space: max_condition_depth=%d\n", cfg.Space.MaxConditionDepth)
		return nil
	}

	fmt.Fprintf(w, "%s: %d problem(s)\n", report.File, len(report.Errors))
	for _, msg := range report.Errors {
		fmt.Fprintf(w, "  - %s\n", msg)
	}
	return nil
}
