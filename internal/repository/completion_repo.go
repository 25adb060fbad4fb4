package repository

import (
	"database/sql"
	"time"

	"irontrack/internal/models"
)

// CompletionRepository работает с отметками завершённых тренировок
type CompletionRepository struct {
	db *sql.DB
}

// NewCompletionRepository создаёт репозиторий отметок
func NewCompletionRepository(db *sql.DB) *CompletionRepository {
	return &CompletionRepository{db: db}
}

// Exists проверяет, есть ли отметка за календарную дату
func (r *CompletionRepository) Exists(userID string, date time.Time) (bool, error) {
	var id int
	err := r.db.QueryRow(`
		SELECT id FROM public.completion_logs
		WHERE user_id = $1 AND workout_date = $2::date`,
		userID, date.Format("2006-01-02")).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Insert ставит отметку за дату. Уникальность (user_id, workout_date) в схеме
// плюс DO NOTHING: повторная вставка за тот же день не создаёт вторую строку.
func (r *CompletionRepository) Insert(userID string, date time.Time) error {
	_, err := r.db.Exec(`
		INSERT INTO public.completion_logs (user_id, workout_date)
		VALUES ($1, $2::date)
		ON CONFLICT (user_id, workout_date) DO NOTHING`,
		userID, date.Format("2006-01-02"))
	return err
}

// ListByUser возвращает все отметки пользователя по возрастанию даты
func (r *CompletionRepository) ListByUser(userID string) ([]models.CompletionLog, error) {
	rows, err := r.db.Query(`
		SELECT workout_date FROM public.completion_logs
		WHERE user_id = $1
		ORDER BY workout_date`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.CompletionLog
	for rows.Next() {
		var c models.CompletionLog
		if err := rows.Scan(&c.Date); err != nil {
			return nil, err
		}
		logs = append(logs, c)
	}
	return logs, rows.Err()
}
