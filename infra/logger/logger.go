package logger

import (
	"os"
	"strings"

	"github.com/CampusOrbit/mentoring_service/config"
	"github.com/sirupsen/logrus"
)

// Init configures the global logrus logger from the application config.
func Init(cfg config.Config) {
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if strings.ToLower(cfg.Environment) == "prod" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
