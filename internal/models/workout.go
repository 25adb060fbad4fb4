package models

// WorkoutExercise represents an exercise instance placed into a weekday plan
type WorkoutExercise struct {
	ID         string      `json:"id"`
	ExerciseID string      `json:"exercise_id"`
	Name       string      `json:"name"`
	Target     MuscleGroup `json:"target"`
	ImageURL   string      `json:"image_url"`
	Sets       int         `json:"sets"`
	Reps       int         `json:"reps"`
	Weight     float64     `json:"weight"` // кг
	Notes      string      `json:"notes,omitempty"`
}

// WeekDayWorkout represents one of the seven fixed weekday slots
type WeekDayWorkout struct {
	DayID     string            `json:"day_id"`   // monday..sunday
	DayName   string            `json:"day_name"` // Segunda, Terça, ...
	Title     string            `json:"title"`
	Exercises []WorkoutExercise `json:"exercises"`
}
