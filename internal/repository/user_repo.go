package repository

import (
	"database/sql"

	"github.com/google/uuid"

	"irontrack/internal/models"
)

// UserRepository работает с пользователями бота
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository создаёт репозиторий пользователей
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByTelegramID возвращает пользователя по telegram id, nil если не зарегистрирован
func (r *UserRepository) GetByTelegramID(telegramID int64) (*models.User, error) {
	u := &models.User{}
	err := r.db.QueryRow(`
		SELECT id, telegram_id, name, created_at
		FROM public.users WHERE telegram_id = $1`, telegramID).Scan(
		&u.ID, &u.TelegramID, &u.Name, &u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create регистрирует нового пользователя
func (r *UserRepository) Create(telegramID int64, name string) (*models.User, error) {
	u := &models.User{ID: uuid.New().String(), TelegramID: telegramID, Name: name}
	err := r.db.QueryRow(`
		INSERT INTO public.users (id, telegram_id, name, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (telegram_id) DO UPDATE SET name = $3
		RETURNING id, created_at`,
		u.ID, telegramID, name,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// All возвращает всех зарегистрированных пользователей
func (r *UserRepository) All() ([]models.User, error) {
	rows, err := r.db.Query(`
		SELECT id, telegram_id, name, created_at
		FROM public.users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.TelegramID, &u.Name, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
