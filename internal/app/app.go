// Package app runs the tracker over a list of sensor packages.
package app

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Yandex-Practicum/ftracker/internal/ftracker"
)

// Summary counts the outcome of a run.
type Summary struct {
	Printed int
	Skipped int
}

// Run prints one report line to w for every package that can be read.
// Packages that fail are logged and skipped; only a write error on w
// stops the run.
func Run(w io.Writer, log *zap.Logger, packages []ftracker.Package) (Summary, error) {
	var s Summary

	for i, p := range packages {
		msg, err := show(p)
		if err != nil {
			log.Warn("skipping package",
				zap.Int("index", i),
				zap.String("code", p.Code),
				zap.Float64s("data", p.Data),
				zap.Error(err),
			)
			s.Skipped++
			continue
		}

		if _, err := fmt.Fprintln(w, msg.Message()); err != nil {
			return s, fmt.Errorf("cannot write report: %w", err)
		}
		log.Debug("report printed", zap.Int("index", i), zap.String("training", msg.TrainingType))
		s.Printed++
	}

	log.Info("packages processed", zap.Int("printed", s.Printed), zap.Int("skipped", s.Skipped))
	return s, nil
}

func show(p ftracker.Package) (ftracker.InfoMessage, error) {
	training, err := p.Read()
	if err != nil {
		return ftracker.InfoMessage{}, err
	}
	return training.ShowTrainingInfo()
}
