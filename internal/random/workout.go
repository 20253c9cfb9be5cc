package random

import (
	"slices"

	"github.com/Yandex-Practicum/ftracker/internal/ftracker"
)

// Action returns random step or stroke count
func Action() int {
	return intn(1000, 10000)
}

// Duration returns random non-zero duration in hours, less than 3
func Duration() float64 {
	return float64(intn(0, 3)) + 0.1 + rnd.Float64()*0.9
}

// Weight returns random weight in kg
func Weight() float64 {
	return float64(intn(80, 140))
}

// Height returns random height in cm
func Height() float64 {
	return float64(intn(150, 220))
}

// Running returns random running sensor package
func Running() ftracker.Package {
	return ftracker.Package{
		Code: ftracker.CodeRunning,
		Data: []float64{float64(Action()), Duration(), Weight()},
	}
}

// SportsWalking returns random sports walking sensor package
func SportsWalking() ftracker.Package {
	return ftracker.Package{
		Code: ftracker.CodeWalking,
		Data: []float64{float64(Action()), Duration(), Weight(), Height()},
	}
}

// Swimming returns random swimming sensor package
func Swimming() ftracker.Package {
	return ftracker.Package{
		Code: ftracker.CodeSwimming,
		Data: []float64{
			float64(Action()), Duration(), Weight(),
			float64(intn(10, 50)), float64(intn(1, 10)),
		},
	}
}

// Package returns random sensor package of any known training
func Package() ftracker.Package {
	generators := []func() ftracker.Package{Running, SportsWalking, Swimming}
	return generators[rnd.Intn(len(generators))]()
}

// UnknownCode returns random workout code missing from the dispatch table
func UnknownCode() string {
	known := ftracker.Codes()
	for {
		code := ASCIIString(3, 15)
		if !slices.Contains(known, code) {
			return code
		}
	}
}

// Truncated returns known sensor package with some trailing values dropped
func Truncated() ftracker.Package {
	p := Package()
	p.Data = p.Data[:rnd.Intn(len(p.Data))]
	return p
}
