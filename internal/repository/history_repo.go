package repository

import (
	"database/sql"
	"time"

	"irontrack/internal/models"
)

// HistoryRepository работает с журналом выполненных подходов
type HistoryRepository struct {
	db *sql.DB
}

// NewHistoryRepository создаёт репозиторий истории
func NewHistoryRepository(db *sql.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Insert записывает выполненный подход; журнал неизменяемый, update/delete нет
func (r *HistoryRepository) Insert(userID, id, exerciseID string, weight float64, reps, sets int, date time.Time) error {
	_, err := r.db.Exec(`
		INSERT INTO public.history_logs (id, user_id, exercise_id, weight, reps, sets, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, userID, exerciseID, weight, reps, sets, date)
	return err
}

const historySelect = `
	SELECT h.id, h.date, h.exercise_id, COALESCE(e.name, 'Desconhecido'),
	       h.weight, h.reps, h.sets
	FROM public.history_logs h
	LEFT JOIN public.exercises e ON e.id = h.exercise_id`

// ListByUser возвращает всю историю пользователя по возрастанию даты
func (r *HistoryRepository) ListByUser(userID string) ([]models.HistoryLog, error) {
	rows, err := r.db.Query(historySelect+`
		WHERE h.user_id = $1
		ORDER BY h.date`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHistory(rows)
}

// ListByExercise возвращает историю пользователя по одному упражнению
func (r *HistoryRepository) ListByExercise(userID, exerciseID string) ([]models.HistoryLog, error) {
	rows, err := r.db.Query(historySelect+`
		WHERE h.user_id = $1 AND h.exercise_id = $2
		ORDER BY h.date`, userID, exerciseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHistory(rows)
}

func scanHistory(rows *sql.Rows) ([]models.HistoryLog, error) {
	var logs []models.HistoryLog
	for rows.Next() {
		var h models.HistoryLog
		if err := rows.Scan(&h.ID, &h.Date, &h.ExerciseID, &h.ExerciseName,
			&h.Weight, &h.Reps, &h.Sets); err != nil {
			return nil, err
		}
		logs = append(logs, h)
	}
	return logs, rows.Err()
}
