package repository

import (
	"database/sql"

	"irontrack/internal/catalog"
)

// ExerciseRepository работает с таблицей exercises
type ExerciseRepository struct {
	db *sql.DB
}

// NewExerciseRepository создаёт репозиторий упражнений
func NewExerciseRepository(db *sql.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

// ListOrderedByName возвращает все упражнения, отсортированные по названию
func (r *ExerciseRepository) ListOrderedByName() ([]catalog.ExerciseRow, error) {
	rows, err := r.db.Query(`
		SELECT id, name, COALESCE(slug, ''), COALESCE(muscle_group, ''),
		       COALESCE(target_muscle, ''), COALESCE(equipment, ''),
		       COALESCE(level, ''), COALESCE(image_url, ''), COALESCE(image, '')
		FROM public.exercises
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []catalog.ExerciseRow
	for rows.Next() {
		var e catalog.ExerciseRow
		if err := rows.Scan(&e.ID, &e.Name, &e.Slug, &e.MuscleGroup,
			&e.TargetMuscle, &e.Equipment, &e.Level, &e.ImageURL, &e.Image); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetByID возвращает упражнение по идентификатору
func (r *ExerciseRepository) GetByID(id string) (catalog.ExerciseRow, bool, error) {
	var e catalog.ExerciseRow
	err := r.db.QueryRow(`
		SELECT id, name, COALESCE(slug, ''), COALESCE(muscle_group, ''),
		       COALESCE(target_muscle, ''), COALESCE(equipment, ''),
		       COALESCE(level, ''), COALESCE(image_url, ''), COALESCE(image, '')
		FROM public.exercises WHERE id = $1`, id).Scan(
		&e.ID, &e.Name, &e.Slug, &e.MuscleGroup,
		&e.TargetMuscle, &e.Equipment, &e.Level, &e.ImageURL, &e.Image,
	)
	if err == sql.ErrNoRows {
		return catalog.ExerciseRow{}, false, nil
	}
	if err != nil {
		return catalog.ExerciseRow{}, false, err
	}
	return e, true, nil
}

// Insert добавляет новую строку упражнения
func (r *ExerciseRepository) Insert(row catalog.ExerciseRow) error {
	_, err := r.db.Exec(`
		INSERT INTO public.exercises (id, name, slug, muscle_group, target_muscle, equipment, level, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		row.ID, row.Name, row.Slug, row.MuscleGroup,
		row.TargetMuscle, row.Equipment, row.Level, row.ImageURL)
	return err
}

// UpdateImage записывает новую картинку упражнения
func (r *ExerciseRepository) UpdateImage(id, imageURL string) error {
	_, err := r.db.Exec(`UPDATE public.exercises SET image_url = $1 WHERE id = $2`, imageURL, id)
	return err
}
