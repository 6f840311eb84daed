package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "configspace",
	Short: "Configspace - conditional hyperparameter spaces",
	Long: `Configspace models hyperparameters whose activity depends on the values of
other hyperparameters.

This command checks the tool configuration (logging, metrics and space
limits) that programs embedding configspace load at startup.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "configspace.yaml", "config file path")
}
