package cmd

import (
	"github.com/sirupsen/logrus"
)

// logger is the CLI's only logrus instance; the CORE (scanner, value,
// builder, tomlette) never logs, per spec.md §10.1 -- logging belongs to
// the ambient stack around the document, not the parser itself.
var logger = logrus.New()

func initLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{})
}
