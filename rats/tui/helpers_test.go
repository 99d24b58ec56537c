package tui

import (
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func nullLogger() *logrus.Logger {
	logger, _ := logtest.NewNullLogger()
	return logger
}
