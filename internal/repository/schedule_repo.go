package repository

import "database/sql"

// ScheduleRepository работает с пользовательскими заголовками дней недели
type ScheduleRepository struct {
	db *sql.DB
}

// NewScheduleRepository создаёт репозиторий расписания
func NewScheduleRepository(db *sql.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Titles возвращает заголовки дней пользователя по day_id
func (r *ScheduleRepository) Titles(userID string) (map[string]string, error) {
	rows, err := r.db.Query(`
		SELECT day_id, title
		FROM public.user_schedules
		WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	titles := make(map[string]string)
	for rows.Next() {
		var dayID, title string
		if err := rows.Scan(&dayID, &title); err != nil {
			return nil, err
		}
		titles[dayID] = title
	}
	return titles, rows.Err()
}

// SetTitle сохраняет заголовок дня: сначала проверка, затем update или insert
func (r *ScheduleRepository) SetTitle(userID, dayID, title string) error {
	var id int
	err := r.db.QueryRow(`
		SELECT id FROM public.user_schedules
		WHERE user_id = $1 AND day_id = $2`, userID, dayID).Scan(&id)

	switch {
	case err == sql.ErrNoRows:
		_, err = r.db.Exec(`
			INSERT INTO public.user_schedules (user_id, day_id, title)
			VALUES ($1, $2, $3)`, userID, dayID, title)
		return err
	case err != nil:
		return err
	default:
		_, err = r.db.Exec(`
			UPDATE public.user_schedules SET title = $1 WHERE id = $2`, title, id)
		return err
	}
}
