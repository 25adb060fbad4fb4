package repository

import "database/sql"

// Repository содержит все репозитории
type Repository struct {
	User       *UserRepository
	Exercise   *ExerciseRepository
	Schedule   *ScheduleRepository
	Workout    *WorkoutRepository
	History    *HistoryRepository
	Completion *CompletionRepository
}

// New создаёт новый экземпляр Repository
func New(db *sql.DB) *Repository {
	return &Repository{
		User:       NewUserRepository(db),
		Exercise:   NewExerciseRepository(db),
		Schedule:   NewScheduleRepository(db),
		Workout:    NewWorkoutRepository(db),
		History:    NewHistoryRepository(db),
		Completion: NewCompletionRepository(db),
	}
}
