package logging

import (
	"github.com/fernandosanchezjr/godprng/utils"
	"github.com/sirupsen/logrus"
	"io"
	"os"
	"path"
)

const LogPath = "logs"

var logFile *os.File

func getLogFile() *os.File {
	logFolder := utils.GetSubFolder(LogPath)
	f, err := os.OpenFile(path.Join(logFolder, "log.out"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logrus.WithError(err).Error("Error opening log file")
		return nil
	}
	return f
}

func exitHandler() {
	if logFile != nil {
		_ = logFile.Close()
	}
}

// SetupLogger tees logrus output to stdout and the log file under the home folder.
func SetupLogger(level logrus.Level) {
	logrus.SetFormatter(&logrus.TextFormatter{ForceColors: true, FullTimestamp: true})
	logrus.RegisterExitHandler(exitHandler)
	logrus.SetLevel(level)
	if logFile = getLogFile(); logFile != nil {
		logrus.SetOutput(io.MultiWriter(logFile, os.Stdout))
	} else {
		logrus.SetOutput(os.Stdout)
	}
}

func Close() {
	exitHandler()
	logFile = nil
}
