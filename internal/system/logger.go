package system

import (
	"io"
	"os"

	clog "github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the shared application logger.
// It prints to stderr with timestamps enabled; the TUI redirects it to a file
// with LogToFile so log lines never land on the alt screen.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
})

// LogToFile points Logger at a size-rotated log file. Closing the returned
// closer flushes the file and sends output back to stderr.
func LogToFile(path string) io.Closer {
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	Logger.SetOutput(lj)
	return closerFunc(func() error {
		Logger.SetOutput(os.Stderr)
		return lj.Close()
	})
}

// SetDebug toggles debug-level output.
func SetDebug(on bool) {
	if on {
		Logger.SetLevel(clog.DebugLevel)
		return
	}
	Logger.SetLevel(clog.InfoLevel)
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
