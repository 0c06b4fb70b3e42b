// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the json-to-md CLI. It renders one
// prompt/response export as Markdown on stdout.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/json-to-md/internal/convert"
	"github.com/pdiddy/json-to-md/internal/export"
	"github.com/pdiddy/json-to-md/internal/logging"
	"github.com/pdiddy/json-to-md/pkg/types"
)

// logger is built from config before the command runs.
var logger *logrus.Logger

var rootCmd = &cobra.Command{
	Use:   "json-to-md <export.json>",
	Short: "Render a prompt/response export as Markdown",
	Long: `json-to-md reads an export file holding a timestamp and a list of
prompt/response pairs and prints a Markdown document to stdout. Each pair
becomes a section with the response inside a fenced code block.

Files ending in .yaml or .yml are read as YAML; everything else as JSON.
Redirect stdout to save the result.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		l, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
		if err != nil {
			return err
		}
		logger = l
		if used := viper.ConfigFileUsed(); used != "" {
			logger.WithField("config", used).Debug("Using config file")
		}
		return nil
	},
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	path := args[0]
	res, err := convert.Convert(path, cmd.OutOrStdout())
	if err != nil {
		logger.WithFields(logrus.Fields{
			"path": path,
			"kind": errorKind(err),
		}).Error("Conversion failed")
		return err
	}
	logger.WithFields(logrus.Fields{
		"path":    path,
		"format":  res.Format,
		"entries": res.Entries,
	}).Debug("Converted export")
	return nil
}

// errorKind names the failure class for the diagnostic log entry.
func errorKind(err error) string {
	switch {
	case errors.Is(err, export.ErrFileAccess):
		return "file_access"
	case errors.Is(err, export.ErrParse):
		return "parse"
	case errors.Is(err, export.ErrKeyLookup):
		return "key_lookup"
	default:
		return "write"
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	viper.SetConfigName("json-to-md")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "json-to-md"))
	}

	viper.SetEnvPrefix("JSON_TO_MD")
	viper.AutomaticEnv()
	viper.SetDefault("log_level", logging.DefaultLevel)

	// A missing config file is fine; everything has a default.
	_ = viper.ReadInConfig()
}

func loadConfig() types.Config {
	return types.Config{
		LogLevel: viper.GetString("log_level"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
