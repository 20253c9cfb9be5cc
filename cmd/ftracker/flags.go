package main

import (
	"flag"
	"os"
)

var (
	flagLogLevel string // уровень логирования диагностики
)

func parseFlags() {
	flag.StringVar(&flagLogLevel, "log-level", "info", "log level of diagnostics written to stderr")
	flag.Parse()

	if envLogLevel := os.Getenv("LOG_LEVEL"); envLogLevel != "" {
		flagLogLevel = envLogLevel
	}
}
