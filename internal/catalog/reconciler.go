package catalog

import (
	"log"
	"sort"
	"strings"

	"irontrack/internal/models"
	"irontrack/internal/seed"
)

// ExerciseStore — доступ к удалённой таблице упражнений
type ExerciseStore interface {
	ListOrderedByName() ([]ExerciseRow, error)
	GetByID(id string) (ExerciseRow, bool, error)
	Insert(row ExerciseRow) error
}

// Source указывает, откуда пришёл результат согласования
type Source string

const (
	SourceMerged Source = "merged" // удалённые строки слиты поверх встроенного каталога
	SourceSeed   Source = "seed"   // чистый fallback на встроенный каталог
)

// Result — результат согласования каталога. RemoteErr заполнен, когда
// fallback вызван ошибкой, а не пустой таблицей: вызывающий может отличить
// "пусто, потому что пусто" от "пусто, потому что бэкенд недоступен".
type Result struct {
	Exercises []models.ExerciseDefinition
	Source    Source
	Skipped   int   // удалённые строки, отброшенные нормализацией
	RemoteErr error
}

// Reconciler собирает единый каталог упражнений из удалённой таблицы
// и встроенного справочника
type Reconciler struct {
	store ExerciseStore
	seed  *seed.Catalog
}

// NewReconciler создаёт согласователь каталога
func NewReconciler(store ExerciseStore, seedCatalog *seed.Catalog) *Reconciler {
	return &Reconciler{store: store, seed: seedCatalog}
}

// All возвращает полный каталог упражнений. Операция никогда не падает:
// при ошибке или пустой таблице возвращается встроенный каталог.
func (r *Reconciler) All() Result {
	rows, err := r.store.ListOrderedByName()
	if err != nil {
		log.Printf("Каталог: ошибка чтения exercises, используем встроенный: %v", err)
		return Result{Exercises: r.seed.All(), Source: SourceSeed, RemoteErr: err}
	}
	if len(rows) == 0 {
		return Result{Exercises: r.seed.All(), Source: SourceSeed}
	}

	merged := make(map[string]models.ExerciseDefinition, r.seed.Len()+len(rows))
	for _, d := range r.seed.All() {
		merged[d.ID] = d
	}

	skipped := 0
	for _, row := range rows {
		def, err := Normalize(row)
		if err != nil {
			log.Printf("Каталог: строка отброшена: %v", err)
			skipped++
			continue
		}
		// удалённая строка всегда выигрывает у встроенной с тем же id
		merged[def.ID] = def
	}

	out := make([]models.ExerciseDefinition, 0, len(merged))
	for _, d := range merged {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := strings.ToLower(out[i].Name), strings.ToLower(out[j].Name)
		if a == b {
			return out[i].ID < out[j].ID
		}
		return a < b
	})

	return Result{Exercises: out, Source: SourceMerged, Skipped: skipped}
}
