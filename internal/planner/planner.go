package planner

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"irontrack/internal/catalog"
	"irontrack/internal/models"
	"irontrack/internal/repository"
	"irontrack/internal/seed"
)

// ErrUnauthenticated — операция с пользовательскими данными без регистрации
var ErrUnauthenticated = errors.New("usuário não autenticado")

// ErrUnknownDay — идентификатор дня вне фиксированных семи слотов
var ErrUnknownDay = errors.New("dia da semana desconhecido")

// CatalogReader отдаёт согласованный каталог упражнений
type CatalogReader interface {
	All() catalog.Result
}

// ExerciseGuard гарантирует существование упражнения перед зависимой записью
type ExerciseGuard interface {
	EnsureExists(exerciseID string) error
}

// ScheduleStore — заголовки дней недели
type ScheduleStore interface {
	Titles(userID string) (map[string]string, error)
	SetTitle(userID, dayID, title string) error
}

// WorkoutStore — упражнения в планах дней
type WorkoutStore interface {
	ListByUser(userID string) ([]repository.WorkoutItem, error)
	ListByDay(userID, dayID string) ([]repository.WorkoutItem, error)
	Insert(userID, id, dayID, exerciseID string, sets, reps int, weight float64, notes string) error
	Update(userID, id string, sets, reps int, weight float64, notes string) error
	Delete(userID, id string) error
}

// HistoryStore — журнал выполненных подходов
type HistoryStore interface {
	Insert(userID, id, exerciseID string, weight float64, reps, sets int, date time.Time) error
	ListByUser(userID string) ([]models.HistoryLog, error)
	ListByExercise(userID, exerciseID string) ([]models.HistoryLog, error)
}

// CompletionStore — отметки завершённых тренировок
type CompletionStore interface {
	Exists(userID string, date time.Time) (bool, error)
	Insert(userID string, date time.Time) error
	ListByUser(userID string) ([]models.CompletionLog, error)
}

// ExerciseLookup — точечное чтение и обновление строк упражнений
type ExerciseLookup interface {
	GetByID(id string) (catalog.ExerciseRow, bool, error)
	UpdateImage(id, imageURL string) error
}

// Deps — зависимости планировщика
type Deps struct {
	Catalog     CatalogReader
	Guard       ExerciseGuard
	Exercises   ExerciseLookup
	Schedules   ScheduleStore
	Workouts    WorkoutStore
	History     HistoryStore
	Completions CompletionStore
}

// Planner реализует пользовательские операции над расписанием и историей
type Planner struct {
	deps Deps
}

// New создаёт планировщик
func New(deps Deps) *Planner {
	return &Planner{deps: deps}
}

// Exercises возвращает согласованный каталог упражнений
func (p *Planner) Exercises() catalog.Result {
	return p.deps.Catalog.All()
}

// Schedule собирает семь фиксированных слотов недели с заголовками
// пользователя и упражнениями из планов
func (p *Planner) Schedule(userID string) ([]models.WeekDayWorkout, error) {
	week := seed.WeekScaffold()

	titles, err := p.deps.Schedules.Titles(userID)
	if err != nil {
		return week, fmt.Errorf("leitura dos títulos: %w", err)
	}

	items, err := p.deps.Workouts.ListByUser(userID)
	if err != nil {
		return week, fmt.Errorf("leitura dos itens: %w", err)
	}

	byDay := make(map[string][]models.WorkoutExercise)
	for _, it := range items {
		byDay[it.DayID] = append(byDay[it.DayID], itemToExercise(it))
	}

	for i := range week {
		if t, ok := titles[week[i].DayID]; ok && t != "" {
			week[i].Title = t
		}
		week[i].Exercises = byDay[week[i].DayID]
	}
	return week, nil
}

// itemToExercise восстанавливает снимок полей упражнения для отображения.
// Упражнение могло быть удалено из таблицы: тогда имя и картинка — заглушки.
func itemToExercise(it repository.WorkoutItem) models.WorkoutExercise {
	name := it.ExerciseName
	if name == "" {
		name = "Exercício Removido"
	}

	target := models.GroupOther
	if it.MuscleGroup != "" {
		g, err := catalog.ParseMuscleGroup(it.MuscleGroup)
		if err != nil {
			log.Printf("План: %v", err)
		} else {
			target = g
		}
	}

	image := it.ImageURL
	if image == "" {
		image = models.PlaceholderImage(name)
	}

	return models.WorkoutExercise{
		ID:         it.ID,
		ExerciseID: it.ExerciseID,
		Name:       name,
		Target:     target,
		ImageURL:   image,
		Sets:       it.Sets,
		Reps:       it.Reps,
		Weight:     it.Weight,
		Notes:      it.Notes,
	}
}

// SetDayTitle сохраняет пользовательский заголовок дня
func (p *Planner) SetDayTitle(userID, dayID, title string) error {
	if !validDay(dayID) {
		return fmt.Errorf("%w: %s", ErrUnknownDay, dayID)
	}
	if err := p.deps.Schedules.SetTitle(userID, dayID, title); err != nil {
		return fmt.Errorf("gravação do título: %w", err)
	}
	return nil
}

// AddExercise добавляет упражнение в план дня. Сначала guard, затем вставка:
// зависимая запись не выполняется, пока существование упражнения не подтверждено.
func (p *Planner) AddExercise(userID, dayID, exerciseID string, sets, reps int, weight float64, notes string) (models.WorkoutExercise, error) {
	if !validDay(dayID) {
		return models.WorkoutExercise{}, fmt.Errorf("%w: %s", ErrUnknownDay, dayID)
	}
	if sets <= 0 {
		sets = 3
	}
	if reps <= 0 {
		reps = 10
	}

	if err := p.deps.Guard.EnsureExists(exerciseID); err != nil {
		return models.WorkoutExercise{}, err
	}

	row, found, err := p.deps.Exercises.GetByID(exerciseID)
	if err != nil {
		return models.WorkoutExercise{}, fmt.Errorf("leitura do exercício %s: %w", exerciseID, err)
	}
	if !found {
		return models.WorkoutExercise{}, fmt.Errorf("%w: %s", catalog.ErrUnknownExercise, exerciseID)
	}
	def, err := catalog.Normalize(row)
	if err != nil {
		return models.WorkoutExercise{}, err
	}

	ex := models.WorkoutExercise{
		ID:         uuid.New().String(),
		ExerciseID: exerciseID,
		Name:       def.Name,
		Target:     def.Target,
		ImageURL:   def.ImageURL,
		Sets:       sets,
		Reps:       reps,
		Weight:     weight,
		Notes:      notes,
	}
	if err := p.deps.Workouts.Insert(userID, ex.ID, dayID, exerciseID, sets, reps, weight, notes); err != nil {
		return models.WorkoutExercise{}, fmt.Errorf("inserção no plano: %w", err)
	}
	return ex, nil
}

// UpdateExercise обновляет подходы/повторы/вес/заметки в плане
func (p *Planner) UpdateExercise(userID, itemID string, sets, reps int, weight float64, notes string) error {
	if err := p.deps.Workouts.Update(userID, itemID, sets, reps, weight, notes); err != nil {
		return fmt.Errorf("atualização do item: %w", err)
	}
	return nil
}

// RemoveExercise удаляет упражнение из плана
func (p *Planner) RemoveExercise(userID, itemID string) error {
	if err := p.deps.Workouts.Delete(userID, itemID); err != nil {
		return fmt.Errorf("remoção do item: %w", err)
	}
	return nil
}

// FinishSummary — итог завершения тренировки
type FinishSummary struct {
	Logged      int  // записей истории создано
	AlreadyDone bool // отметка за сегодня уже стояла
}

// FinishWorkout записывает историю по каждому упражнению дня и ставит
// отметку за дату. Ошибки записи пробрасываются сразу: запись не должна
// молча выглядеть успешной.
func (p *Planner) FinishWorkout(userID, dayID string, now time.Time) (FinishSummary, error) {
	if !validDay(dayID) {
		return FinishSummary{}, fmt.Errorf("%w: %s", ErrUnknownDay, dayID)
	}

	items, err := p.deps.Workouts.ListByDay(userID, dayID)
	if err != nil {
		return FinishSummary{}, fmt.Errorf("leitura do plano: %w", err)
	}

	var summary FinishSummary
	for _, it := range items {
		// guard строго до зависимой вставки, для каждой записи
		if err := p.deps.Guard.EnsureExists(it.ExerciseID); err != nil {
			return summary, err
		}
		id := uuid.New().String()
		if err := p.deps.History.Insert(userID, id, it.ExerciseID, it.Weight, it.Reps, it.Sets, now); err != nil {
			return summary, fmt.Errorf("registro do histórico: %w", err)
		}
		summary.Logged++
	}

	already, err := p.MarkComplete(userID, now)
	if err != nil {
		return summary, err
	}
	summary.AlreadyDone = already
	return summary, nil
}

// MarkComplete ставит отметку завершения за календарную дату.
// Возвращает true, если отметка уже стояла.
func (p *Planner) MarkComplete(userID string, now time.Time) (bool, error) {
	exists, err := p.deps.Completions.Exists(userID, now)
	if err != nil {
		return false, fmt.Errorf("verificação da conclusão: %w", err)
	}
	if exists {
		return true, nil
	}
	if err := p.deps.Completions.Insert(userID, now); err != nil {
		return false, fmt.Errorf("registro da conclusão: %w", err)
	}
	return false, nil
}

// SaveExerciseImage записывает новую миниатюру упражнения. Как и любая
// запись со ссылкой на упражнение, проходит через guard.
func (p *Planner) SaveExerciseImage(exerciseID, imageURL string) error {
	if err := p.deps.Guard.EnsureExists(exerciseID); err != nil {
		return err
	}
	if err := p.deps.Exercises.UpdateImage(exerciseID, imageURL); err != nil {
		return fmt.Errorf("gravação da imagem: %w", err)
	}
	return nil
}

// History возвращает всю историю пользователя
func (p *Planner) History(userID string) ([]models.HistoryLog, error) {
	return p.deps.History.ListByUser(userID)
}

// HistoryForExercise возвращает историю по одному упражнению
func (p *Planner) HistoryForExercise(userID, exerciseID string) ([]models.HistoryLog, error) {
	return p.deps.History.ListByExercise(userID, exerciseID)
}

// Completions возвращает отметки завершённых тренировок
func (p *Planner) Completions(userID string) ([]models.CompletionLog, error) {
	return p.deps.Completions.ListByUser(userID)
}

func validDay(dayID string) bool {
	for _, d := range seed.DayIDs() {
		if d == dayID {
			return true
		}
	}
	return false
}
