package main

//go:generate go build -o=../../bin/ftracker

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Yandex-Practicum/ftracker/internal/app"
	"github.com/Yandex-Practicum/ftracker/internal/ftracker"
	"github.com/Yandex-Practicum/ftracker/internal/logger"
)

// packages получены от датчиков фитнес-трекера
var packages = []ftracker.Package{
	{Code: ftracker.CodeSwimming, Data: []float64{720, 1, 80, 25, 40}},
	{Code: ftracker.CodeRunning, Data: []float64{15000, 1, 75}},
	{Code: ftracker.CodeWalking, Data: []float64{9000, 1, 75, 180}},
}

func main() {
	parseFlags()

	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "ftracker: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	log, err := logger.New(flagLogLevel, zapcore.Lock(os.Stderr))
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if _, err := app.Run(os.Stdout, log, packages); err != nil {
		log.Error("run failed", zap.Error(err))
		return err
	}
	return nil
}
