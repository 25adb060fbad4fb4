package models

// MuscleGroup represents a canonical muscle group target
type MuscleGroup string

const (
	GroupChest     MuscleGroup = "chest"
	GroupBack      MuscleGroup = "back"
	GroupLegs      MuscleGroup = "legs"
	GroupShoulders MuscleGroup = "shoulders"
	GroupArms      MuscleGroup = "arms"
	GroupCore      MuscleGroup = "core"
	GroupCardio    MuscleGroup = "cardio"
	GroupOther     MuscleGroup = "other"
)

// ExerciseDefinition represents an exercise from the catalog
type ExerciseDefinition struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Slug         string      `json:"slug"`
	Target       MuscleGroup `json:"target"`
	TargetMuscle string      `json:"target_muscle,omitempty"`
	Equipment    string      `json:"equipment,omitempty"`
	Level        string      `json:"level,omitempty"` // beginner, intermediate, advanced
	ImageURL     string      `json:"image_url"`
}
