package utils

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Log levels
const (
	INFO  = "INFO"
	WARN  = "WARN"
	ERROR = "ERROR"
	DEBUG = "DEBUG"
)

var (
	instance *Logger
	once     sync.Once
)

// Logger struct
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
}

// getDefaultLogFilePath returns the default log file path
func getDefaultLogFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	logDir := filepath.Join(homeDir, ".dllist")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(logDir, "dllist.log"), nil
}

// NewLogger creates a new logger instance (singleton).
// Warnings and errors also go to stderr; debug lines only in debug mode.
// If the log file cannot be opened the logger falls back to stderr alone.
func NewLogger(logFilePath string, debugMode bool) *Logger {
	once.Do(func() {
		var sink io.Writer = io.Discard
		if logFilePath == "" {
			if p, err := getDefaultLogFilePath(); err == nil {
				logFilePath = p
			} else {
				log.Printf("[WARN] Failed to resolve log directory: %v", err)
			}
		}
		if logFilePath != "" {
			file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err != nil {
				log.Printf("[WARN] Failed to open log file: %v", err)
			} else {
				sink = file
			}
		}
		instance = newLogger(sink, os.Stderr, debugMode)
	})
	return instance
}

// newLogger builds a Logger where info lines go to file only and the rest are
// mirrored to console.
func newLogger(file, console io.Writer, debugMode bool) *Logger {
	multiWriter := io.MultiWriter(file, console)

	var debugWriter io.Writer
	if debugMode {
		debugWriter = multiWriter
	} else {
		debugWriter = file
	}

	return &Logger{
		infoLogger:  log.New(file, "[INFO] ", log.Ldate|log.Ltime),
		warnLogger:  log.New(multiWriter, "[WARN] ", log.Ldate|log.Ltime),
		errorLogger: log.New(multiWriter, "[ERROR] ", log.Ldate|log.Ltime),
		debugLogger: log.New(debugWriter, "[DEBUG] ", log.Ldate|log.Ltime),
	}
}

// GetLogger retrieves the singleton logger instance
func GetLogger() *Logger {
	if instance == nil {
		log.Fatalf("Logger has not been initialized. Call NewLogger() first.")
	}
	return instance
}

// Logging methods
func (l *Logger) Info(message string) {
	l.infoLogger.Println(message)
}

func (l *Logger) Warn(message string) {
	l.warnLogger.Println(message)
}

func (l *Logger) Error(message string) {
	l.errorLogger.Println(message)
}

func (l *Logger) Debug(message string) {
	l.debugLogger.Println(message)
}
