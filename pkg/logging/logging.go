// Package logging configures logrus for charseq commands and the API server.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

// New returns a logger writing to out at the given level. Format "json"
// selects the JSON formatter; anything else uses text output.
func New(out io.Writer, level, format string) (*logrus.Logger, error) {
	logger := logrus.New()
	if err := configure(logger, out, level, format); err != nil {
		return nil, err
	}
	return logger, nil
}

// Setup applies level and format to the logrus standard logger and routes
// its output to stdout.
func Setup(level, format string) error {
	return configure(logrus.StandardLogger(), os.Stdout, level, format)
}

func configure(logger *logrus.Logger, out io.Writer, level, format string) error {
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}

	logger.SetLevel(lvl)
	logger.SetOutput(out)

	switch strings.ToLower(format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return errors.Newf("invalid log format %q", format)
	}
	return nil
}
