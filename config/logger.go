package config

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

var logFile *lumberjack.Logger

// InitLogger sends the standard logger to stdout and a rotating file.
func InitLogger() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if App.LogFile == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(App.LogFile), 0o755); err != nil {
		log.Printf("[config.logger] ⚠️ cannot create log dir: %v", err)
		return
	}

	maxSize := App.LogMaxSizeMB
	if maxSize <= 0 {
		maxSize = 50
	}
	logFile = &lumberjack.Logger{
		Filename:   App.LogFile,
		MaxSize:    maxSize,
		MaxBackups: 5,
		MaxAge:     28,
		Compress:   true,
	}
	log.SetOutput(io.MultiWriter(os.Stdout, logFile))
}

// CloseLogger flushes the rotating file, if any.
func CloseLogger() {
	if logFile != nil {
		_ = logFile.Close()
	}
}
