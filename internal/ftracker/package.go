// Package ftracker computes distance, mean speed and burned calories of
// workouts recorded by a fitness tracker.
package ftracker

import (
	"fmt"
	"math"
	"sort"
)

const (
	CodeSwimming = "SWM"
	CodeRunning  = "RUN"
	CodeWalking  = "WLK"
)

// Package is a raw sensor package: workout code and positional values.
//
//	RUN: action, duration, weight
//	WLK: action, duration, weight, height
//	SWM: action, duration, weight, length pool, count pool
type Package struct {
	Code string
	Data []float64
}

type constructor struct {
	kind   Kind
	fields int
	build  func(base Training, extra []float64) (Training, error)
}

var constructors = map[string]constructor{
	CodeSwimming: {kind: Swimming, fields: 5, build: buildSwimming},
	CodeRunning:  {kind: Running, fields: 3, build: buildPlain},
	CodeWalking:  {kind: SportsWalking, fields: 4, build: buildWalking},
}

// Codes returns supported workout codes in sorted order.
func Codes() []string {
	codes := make([]string, 0, len(constructors))
	for code := range constructors {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ReadPackage builds a Training from sensor data.
func ReadPackage(code string, data []float64) (Training, error) {
	c, ok := constructors[code]
	if !ok {
		return Training{}, fmt.Errorf("code %q: %w", code, ErrUnknownTraining)
	}
	if len(data) != c.fields {
		return Training{}, fmt.Errorf("code %q: expected %d values, got %d: %w",
			code, c.fields, len(data), ErrInvalidPackage)
	}

	action, err := count("action", data[0])
	if err != nil {
		return Training{}, fmt.Errorf("code %q: %w", code, err)
	}

	t, err := c.build(Training{
		Kind:     c.kind,
		Action:   action,
		Duration: data[1],
		Weight:   data[2],
	}, data[3:])
	if err != nil {
		return Training{}, fmt.Errorf("code %q: %w", code, err)
	}
	return t, nil
}

// Read is a shorthand for ReadPackage.
func (p Package) Read() (Training, error) {
	return ReadPackage(p.Code, p.Data)
}

func buildPlain(base Training, _ []float64) (Training, error) {
	return base, nil
}

func buildWalking(base Training, extra []float64) (Training, error) {
	base.Height = extra[0]
	return base, nil
}

func buildSwimming(base Training, extra []float64) (Training, error) {
	length, err := count("length pool", extra[0])
	if err != nil {
		return Training{}, err
	}
	laps, err := count("count pool", extra[1])
	if err != nil {
		return Training{}, err
	}
	base.LengthPool = length
	base.CountPool = laps
	return base, nil
}

// count converts a counter value which must be a whole number within
// the int32 range, so the conversion is exact on every platform.
func count(name string, v float64) (int, error) {
	if v != math.Trunc(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s %v is not a whole number: %w", name, v, ErrInvalidPackage)
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%s %v is out of range: %w", name, v, ErrInvalidPackage)
	}
	return int(v), nil
}
