package ftracker

import "fmt"

const messageFormat = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// InfoMessage информационное сообщение о тренировке.
type InfoMessage struct {
	TrainingType string
	Duration     float64 // ч
	Distance     float64 // км
	Speed        float64 // км/ч
	Calories     float64 // ккал
}

// Message renders the report line consumed by the tracker output.
func (m InfoMessage) Message() string {
	return fmt.Sprintf(messageFormat, m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}

func (m InfoMessage) String() string {
	return m.Message()
}
