package catalog

import (
	"fmt"

	"irontrack/internal/models"
)

// ExerciseRow представляет строку таблицы exercises в словаре бэкенда
type ExerciseRow struct {
	ID           string
	Name         string
	Slug         string
	MuscleGroup  string // метка бэкенда, не enum приложения
	TargetMuscle string
	Equipment    string
	Level        string
	ImageURL     string
	Image        string // устаревшая колонка image, ещё встречается в старых строках
}

// muscleGroups — единственная таблица соответствия enum ↔ метка бэкенда.
// Новая группа мышц добавляется только здесь.
var muscleGroups = []struct {
	Group models.MuscleGroup
	Label string
}{
	{models.GroupChest, "chest"},
	{models.GroupBack, "back"},
	{models.GroupLegs, "legs"},
	{models.GroupShoulders, "shoulders"},
	{models.GroupArms, "arms"},
	{models.GroupCore, "core"},
	{models.GroupCardio, "cardio"},
	{models.GroupOther, "other"},
}

// labelSynonyms — устаревшие метки, принимаемые только при чтении
var labelSynonyms = map[string]models.MuscleGroup{
	"abs": models.GroupCore,
}

// ParseMuscleGroup переводит метку бэкенда в канонический enum.
// Неизвестная метка — ошибка, молчаливого "other" здесь нет.
func ParseMuscleGroup(label string) (models.MuscleGroup, error) {
	for _, m := range muscleGroups {
		if m.Label == label {
			return m.Group, nil
		}
	}
	if g, ok := labelSynonyms[label]; ok {
		return g, nil
	}
	return "", fmt.Errorf("grupo muscular desconhecido: %q", label)
}

// MuscleGroupLabel переводит enum в каноническую метку бэкенда
func MuscleGroupLabel(g models.MuscleGroup) (string, error) {
	for _, m := range muscleGroups {
		if m.Group == g {
			return m.Label, nil
		}
	}
	return "", fmt.Errorf("grupo muscular não mapeado: %q", g)
}

// Normalize переводит строку бэкенда в определение упражнения приложения.
// Пустая метка группы трактуется как "other" (отсутствующее необязательное поле),
// непустая неизвестная метка — ошибка.
func Normalize(row ExerciseRow) (models.ExerciseDefinition, error) {
	target := models.GroupOther
	if row.MuscleGroup != "" {
		var err error
		target, err = ParseMuscleGroup(row.MuscleGroup)
		if err != nil {
			return models.ExerciseDefinition{}, fmt.Errorf("exercício %s: %w", row.ID, err)
		}
	}

	slug := row.Slug
	if slug == "" {
		slug = models.Slugify(row.Name)
	}

	image := row.ImageURL
	if image == "" {
		image = row.Image
	}
	if image == "" {
		image = models.PlaceholderImage(row.Name)
	}

	return models.ExerciseDefinition{
		ID:           row.ID,
		Name:         row.Name,
		Slug:         slug,
		Target:       target,
		TargetMuscle: row.TargetMuscle,
		Equipment:    row.Equipment,
		Level:        row.Level,
		ImageURL:     image,
	}, nil
}

// Denormalize переводит определение упражнения обратно в словарь бэкенда
func Denormalize(def models.ExerciseDefinition) (ExerciseRow, error) {
	label, err := MuscleGroupLabel(def.Target)
	if err != nil {
		return ExerciseRow{}, fmt.Errorf("exercício %s: %w", def.ID, err)
	}
	return ExerciseRow{
		ID:           def.ID,
		Name:         def.Name,
		Slug:         def.Slug,
		MuscleGroup:  label,
		TargetMuscle: def.TargetMuscle,
		Equipment:    def.Equipment,
		Level:        def.Level,
		ImageURL:     def.ImageURL,
	}, nil
}
