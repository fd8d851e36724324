package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

var (
	InfoLogger    = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLogger = log.New(os.Stdout, "WARNING: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger   = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)

	// Writer is the destination shared by all levels once SetupLogger has run.
	Writer io.Writer = os.Stdout
)

// SetupLogger points every level at stdout plus a per-day file under dir.
func SetupLogger(dir string) error {
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	logFileName := filepath.Join(dir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	Writer = io.MultiWriter(os.Stdout, logFile)

	InfoLogger = log.New(Writer, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLogger = log.New(Writer, "WARNING: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger = log.New(Writer, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)

	return nil
}

// Info logs at info level.
func Info(format string, v ...interface{}) {
	InfoLogger.Output(2, fmt.Sprintf(format, v...))
}

// Warning logs at warning level.
func Warning(format string, v ...interface{}) {
	WarningLogger.Output(2, fmt.Sprintf(format, v...))
}

// Error logs at error level.
func Error(format string, v ...interface{}) {
	ErrorLogger.Output(2, fmt.Sprintf(format, v...))
}
