package log

import (
	"io"
	"os"
	"path/filepath"

	"polyconf/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var log = logrus.New()

func init() {
	Configure(config.GetConfig().GetString("app.environment"), config.GetConfig().GetString("app.log_path"))
}

// Configure - points the logger at stdout in dev and at a rotated file in production
func Configure(environment, logPath string) {

	// in dev
	if environment != "production" {

		log.Formatter = &logrus.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
		}

		log.SetOutput(os.Stdout)
		log.SetLevel(logrus.DebugLevel)

		return
	}

	log.Formatter = &logrus.JSONFormatter{}

	log.SetOutput(rotated(logPath))

	log.SetLevel(logrus.InfoLevel)
}

func rotated(logPath string) io.Writer {
	return &lumberjack.Logger{
		Filename:   filepath.Join(logPath, "polyconf.log"),
		MaxSize:    200, //mbs,
		MaxBackups: 2,
		MaxAge:     28, //days
	}
}

// GetLogger - returns log
func GetLogger() *logrus.Logger {
	return log
}
