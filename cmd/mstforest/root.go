// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// logger is configured from --log-level before any subcommand runs.
var logger log.Logger = log.NewNopLogger()

var rootCmd = &cobra.Command{
	Use:   "mstforest",
	Short: "Minimum spanning trees by merging partial trees",
	Long: `mstforest builds deterministic graph fixtures and computes their minimum
spanning tree. Every flag may also be set through a MSTFOREST_* environment
variable or a .mstforest.yaml config file.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .mstforest.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".mstforest")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("MSTFOREST")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlags(solveCmd.Flags())

	// No config file is fine; flags and env still apply.
	_ = viper.ReadInConfig()
}

// setupLogger installs a logfmt logger on stderr filtered by log-level.
func setupLogger(cmd *cobra.Command, _ []string) error {
	var filter level.Option
	switch lvl := strings.ToLower(viper.GetString("log-level")); lvl {
	case "debug":
		filter = level.AllowDebug()
	case "info":
		filter = level.AllowInfo()
	case "warn":
		filter = level.AllowWarn()
	case "error":
		filter = level.AllowError()
	default:
		return fmt.Errorf("unknown log level %q", lvl)
	}

	l := log.NewLogfmtLogger(log.NewSyncWriter(cmd.ErrOrStderr()))
	l = level.NewFilter(l, filter)
	logger = log.With(l, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	return nil
}
