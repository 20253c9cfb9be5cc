package fitnesstest

import (
	"fmt"
	"math"
)

const (
	lenStep         = 0.65
	swimmingLenStep = 1.38
	mInKm           = 1000
	minInH          = 60

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20

	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

func distance(action int, step float64) float64 {
	return float64(action) * step / mInKm
}

func meanSpeed(action int, duration float64) float64 {
	return distance(action, lenStep) / duration
}

func swimmingMeanSpeed(lengthPool, countPool int, duration float64) float64 {
	return float64(lengthPool) * float64(countPool) / mInKm / duration
}

func runningSpentCalories(action int, duration, weight float64) float64 {
	speed := meanSpeed(action, duration)
	return (runningCaloriesMeanSpeedMultiplier*speed - runningCaloriesMeanSpeedShift) * weight / mInKm * duration * minInH
}

func walkingSpentCalories(action int, duration, weight, height float64) float64 {
	speed := meanSpeed(action, duration)
	return (walkingCaloriesWeightMultiplier*weight +
		math.Floor(speed*speed/height)*walkingSpeedHeightMultiplier*weight) * duration * minInH
}

func swimmingSpentCalories(lengthPool, countPool int, duration, weight float64) float64 {
	speed := swimmingMeanSpeed(lengthPool, countPool, duration)
	return (speed + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * weight
}

func infoMessage(trainingType string, duration, distance, speed, calories float64) string {
	return fmt.Sprintf("Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
		trainingType, duration, distance, speed, calories)
}

// expectedOutput returns lines the tracker prints for its built-in packages.
func expectedOutput() []string {
	return []string{
		infoMessage("Swimming", 1, distance(720, swimmingLenStep),
			swimmingMeanSpeed(25, 40, 1), swimmingSpentCalories(25, 40, 1, 80)),
		infoMessage("Running", 1, distance(15000, lenStep),
			meanSpeed(15000, 1), runningSpentCalories(15000, 1, 75)),
		infoMessage("SportsWalking", 1, distance(9000, lenStep),
			meanSpeed(9000, 1), walkingSpentCalories(9000, 1, 75, 180)),
	}
}
