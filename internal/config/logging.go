package config

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

// NewLogger builds the process logger: colored debug output in development,
// JSON at info level otherwise, with an optional rotating file sink when
// LOG_FILE is set.
func NewLogger() (*logrus.Logger, error) {
	log := logrus.New()

	if Development() {
		log.SetLevel(logrus.DebugLevel)
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	if path, ok := os.LookupEnv("LOG_FILE"); ok {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   path,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logrus.InfoLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return nil, err
		}
		log.AddHook(hook)
	}

	return log, nil
}
