package seed

import "irontrack/internal/models"

// WeekScaffold возвращает семь фиксированных слотов недели с заголовками по умолчанию
func WeekScaffold() []models.WeekDayWorkout {
	return []models.WeekDayWorkout{
		{DayID: "monday", DayName: "Segunda", Title: "Peito e Tríceps"},
		{DayID: "tuesday", DayName: "Terça", Title: "Costas e Bíceps"},
		{DayID: "wednesday", DayName: "Quarta", Title: "Descanso / Cardio"},
		{DayID: "thursday", DayName: "Quinta", Title: "Pernas Completo"},
		{DayID: "friday", DayName: "Sexta", Title: "Ombros e Trapézio"},
		{DayID: "saturday", DayName: "Sábado", Title: "Core / Cardio"},
		{DayID: "sunday", DayName: "Domingo", Title: "Descanso Total"},
	}
}

// DayIDs возвращает идентификаторы дней в порядке недели
func DayIDs() []string {
	return []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
}

// DayName возвращает локализованное название дня по идентификатору
func DayName(dayID string) string {
	for _, d := range WeekScaffold() {
		if d.DayID == dayID {
			return d.DayName
		}
	}
	return dayID
}
