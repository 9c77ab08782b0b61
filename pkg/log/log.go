package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

// Fields represents a map of fields for structured logging
type Fields = logrus.Fields

// Init configures the process-wide logger. Safe to call once from main.
func Init(level, format string) error {
	l := logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	l.SetLevel(parsed)

	switch format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z",
		})
	default:
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	l.SetOutput(os.Stdout)
	logger = l
	return nil
}

// GetLogger returns the configured logger, initializing a default one if
// Init was never called (tests, tools).
func GetLogger() *logrus.Logger {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(os.Stdout)
	}
	return logger
}
