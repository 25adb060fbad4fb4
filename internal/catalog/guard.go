package catalog

import (
	"errors"
	"fmt"

	"irontrack/internal/seed"
)

// ErrUnknownExercise — идентификатор не найден ни в удалённой таблице,
// ни во встроенном каталоге; зависимая запись не должна выполняться
var ErrUnknownExercise = errors.New("exercício referenciado desconhecido")

// Guard гарантирует существование строки exercises перед зависимой записью
type Guard struct {
	store ExerciseStore
	seed  *seed.Catalog
}

// NewGuard создаёт защиту зависимых записей
func NewGuard(store ExerciseStore, seedCatalog *seed.Catalog) *Guard {
	return &Guard{store: store, seed: seedCatalog}
}

// EnsureExists проверяет, что упражнение есть в удалённой таблице, и при
// необходимости досоздаёт его из встроенного каталога. Ошибки сети здесь
// пробрасываются: вызывающему нужно знать, безопасна ли зависимая запись.
func (g *Guard) EnsureExists(exerciseID string) error {
	if exerciseID == "" {
		return fmt.Errorf("id do exercício vazio: %w", ErrUnknownExercise)
	}

	_, found, err := g.store.GetByID(exerciseID)
	if err != nil {
		return fmt.Errorf("verificação de existência de %s: %w", exerciseID, err)
	}
	if found {
		return nil
	}

	def, ok := g.seed.ByID(exerciseID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownExercise, exerciseID)
	}

	row, err := Denormalize(def)
	if err != nil {
		return err
	}
	if err := g.store.Insert(row); err != nil {
		return fmt.Errorf("inserção do exercício %s: %w", exerciseID, err)
	}
	return nil
}
