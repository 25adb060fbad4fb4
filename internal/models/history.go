package models

import "time"

// HistoryLog represents a completed set performance, immutable once written
type HistoryLog struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	ExerciseID   string    `json:"exercise_id"`
	ExerciseName string    `json:"exercise_name"` // joined from exercises
	Weight       float64   `json:"weight"`
	Reps         int       `json:"reps"`
	Sets         int       `json:"sets"`
}

// CompletionLog marks that the user finished some workout on a given date
type CompletionLog struct {
	Date time.Time `json:"date"` // day granularity
}
