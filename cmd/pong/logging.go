package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger builds the process logger from the log-* settings. Output goes
// to a rotating file so it never draws over the game; echo adds stderr.
// The returned closer flushes the file.
func newLogger(prefix string, echo bool) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", viper.GetString("log-level"), err)
	}

	path := expandHome(viper.GetString("log-file"))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}

	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    viper.GetInt("log-max-size"), // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	var out io.Writer = file
	if echo {
		out = io.MultiWriter(os.Stderr, file)
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, file, nil
}
