package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Init configures the process-wide logrus logger. Level comes from
// LOG_LEVEL and defaults to info.
func Init() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
