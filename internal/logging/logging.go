// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the stderr logger used for diagnostics. Logs never
// go to stdout, which carries only the rendered Markdown.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultLevel keeps successful runs silent on stderr.
const DefaultLevel = "warn"

// New returns a text logger writing to w at the named level. An empty
// level selects DefaultLevel.
func New(w io.Writer, level string) (*logrus.Logger, error) {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log_level %q: %w", level, err)
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return logger, nil
}
