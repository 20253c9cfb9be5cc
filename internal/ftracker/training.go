package ftracker

import (
	"fmt"
	"math"
)

const (
	LenStep         = 0.65 // длина шага в метрах
	SwimmingLenStep = 1.38 // длина гребка в метрах
	MInKm           = 1000
	MinInH          = 60

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Kind is the closed set of supported trainings. The zero value is the
// abstract base training which has no calorie formula.
type Kind int

const (
	Base Kind = iota
	Running
	SportsWalking
	Swimming
)

func (k Kind) String() string {
	switch k {
	case Running:
		return "Running"
	case SportsWalking:
		return "SportsWalking"
	case Swimming:
		return "Swimming"
	case Base:
		return "Training"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Training holds sensor data of a single workout.
type Training struct {
	Kind     Kind
	Action   int     // количество шагов или гребков
	Duration float64 // длительность в часах
	Weight   float64 // вес в кг

	Height float64 // рост, только для спортивной ходьбы

	LengthPool int // длина бассейна в метрах, только для плавания
	CountPool  int // сколько раз пользователь переплыл бассейн
}

// Distance returns covered distance in km.
func (t Training) Distance() float64 {
	lenStep := LenStep
	if t.Kind == Swimming {
		lenStep = SwimmingLenStep
	}
	return float64(t.Action) * lenStep / MInKm
}

// MeanSpeed returns mean speed in km/h. Swimming speed depends only on
// the pool geometry.
func (t Training) MeanSpeed() float64 {
	if t.Kind == Swimming {
		return float64(t.LengthPool) * float64(t.CountPool) / MInKm / t.Duration
	}
	return t.Distance() / t.Duration
}

// SpentCalories returns burned kcal. The base training has no formula
// and reports ErrNotImplemented.
func (t Training) SpentCalories() (float64, error) {
	switch t.Kind {
	case Running:
		return (runningCaloriesMeanSpeedMultiplier*t.MeanSpeed() - runningCaloriesMeanSpeedShift) *
			t.Weight / MInKm * t.Duration * MinInH, nil
	case SportsWalking:
		// целочисленное деление квадрата скорости на рост
		speed := t.MeanSpeed()
		ratio := math.Floor(speed * speed / t.Height)
		return (walkingCaloriesWeightMultiplier*t.Weight +
			ratio*walkingSpeedHeightMultiplier*t.Weight) * t.Duration * MinInH, nil
	case Swimming:
		return (t.MeanSpeed() + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * t.Weight, nil
	default:
		return 0, fmt.Errorf("spent calories of %s: %w", t.Kind, ErrNotImplemented)
	}
}

// ShowTrainingInfo builds the report of the training.
func (t Training) ShowTrainingInfo() (InfoMessage, error) {
	calories, err := t.SpentCalories()
	if err != nil {
		return InfoMessage{}, err
	}

	return InfoMessage{
		TrainingType: t.Kind.String(),
		Duration:     t.Duration,
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     calories,
	}, nil
}
