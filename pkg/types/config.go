// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Config holds the settings read from json-to-md.yaml and JSON_TO_MD_*
// environment variables. None of them change the rendered Markdown.
type Config struct {
	// LogLevel is the logrus level for stderr diagnostics (default "warn").
	LogLevel string `json:"log_level" yaml:"log_level"`
}
