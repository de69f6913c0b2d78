package config

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global zerolog logger. Output always goes to
// stdout; when LOG_FILE is set it is appended to as well.
// The returned closer releases the log file, if any.
func InitLogger(cfg *Config) (io.Closer, error) {
	return initLogger(cfg, os.Stdout)
}

// InitFileLogger is InitLogger without the stdout copy, for front ends that
// own the terminal. Without LOG_FILE everything is discarded.
func InitFileLogger(cfg *Config) (io.Closer, error) {
	return initLogger(cfg, io.Discard)
}

func initLogger(cfg *Config, console io.Writer) (io.Closer, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.LogFile == "" {
		log.Logger = zerolog.New(console).With().Timestamp().Logger()
		return io.NopCloser(nil), nil
	}

	runLogFile, err := os.OpenFile(
		cfg.LogFile,
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0664,
	)
	if err != nil {
		return nil, err
	}
	multi := zerolog.MultiLevelWriter(runLogFile, console)
	log.Logger = zerolog.New(multi).With().Timestamp().Logger()
	return runLogFile, nil
}
