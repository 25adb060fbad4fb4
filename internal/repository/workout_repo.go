package repository

import (
	"database/sql"
	"time"
)

// WorkoutItem — строка workout_items с присоединёнными полями упражнения
type WorkoutItem struct {
	ID           string
	DayID        string
	ExerciseID   string
	ExerciseName string
	MuscleGroup  string // метка бэкенда, нормализуется выше
	ImageURL     string
	Sets         int
	Reps         int
	Weight       float64
	Notes        string
	CreatedAt    time.Time
}

// WorkoutRepository работает с упражнениями в планах дней
type WorkoutRepository struct {
	db *sql.DB
}

// NewWorkoutRepository создаёт репозиторий планов
func NewWorkoutRepository(db *sql.DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

const workoutItemSelect = `
	SELECT w.id, w.day_id, w.exercise_id,
	       COALESCE(e.name, ''), COALESCE(e.muscle_group, ''),
	       COALESCE(e.image_url, COALESCE(e.image, '')),
	       COALESCE(w.sets, 3), COALESCE(w.reps, 10), COALESCE(w.weight, 0),
	       COALESCE(w.notes, ''), w.created_at
	FROM public.workout_items w
	LEFT JOIN public.exercises e ON e.id = w.exercise_id`

// ListByUser возвращает все упражнения пользователя за неделю
func (r *WorkoutRepository) ListByUser(userID string) ([]WorkoutItem, error) {
	rows, err := r.db.Query(workoutItemSelect+`
		WHERE w.user_id = $1
		ORDER BY w.created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWorkoutItems(rows)
}

// ListByDay возвращает упражнения пользователя на конкретный день
func (r *WorkoutRepository) ListByDay(userID, dayID string) ([]WorkoutItem, error) {
	rows, err := r.db.Query(workoutItemSelect+`
		WHERE w.user_id = $1 AND w.day_id = $2
		ORDER BY w.created_at`, userID, dayID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWorkoutItems(rows)
}

func scanWorkoutItems(rows *sql.Rows) ([]WorkoutItem, error) {
	var items []WorkoutItem
	for rows.Next() {
		var it WorkoutItem
		if err := rows.Scan(&it.ID, &it.DayID, &it.ExerciseID,
			&it.ExerciseName, &it.MuscleGroup, &it.ImageURL,
			&it.Sets, &it.Reps, &it.Weight, &it.Notes, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Insert добавляет упражнение в план дня
func (r *WorkoutRepository) Insert(userID, id, dayID, exerciseID string, sets, reps int, weight float64, notes string) error {
	_, err := r.db.Exec(`
		INSERT INTO public.workout_items (id, user_id, day_id, exercise_id, sets, reps, weight, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())`,
		id, userID, dayID, exerciseID, sets, reps, weight, notes)
	return err
}

// Update обновляет параметры упражнения в плане
func (r *WorkoutRepository) Update(userID, id string, sets, reps int, weight float64, notes string) error {
	_, err := r.db.Exec(`
		UPDATE public.workout_items
		SET sets = $1, reps = $2, weight = $3, notes = $4
		WHERE id = $5 AND user_id = $6`,
		sets, reps, weight, notes, id, userID)
	return err
}

// Delete удаляет упражнение из плана
func (r *WorkoutRepository) Delete(userID, id string) error {
	_, err := r.db.Exec(`
		DELETE FROM public.workout_items WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}
