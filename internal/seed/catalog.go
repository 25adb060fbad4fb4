package seed

import "irontrack/internal/models"

// Catalog хранит встроенный справочник упражнений, только для чтения
type Catalog struct {
	list []models.ExerciseDefinition
	byID map[string]models.ExerciseDefinition
}

// NewCatalog создаёт каталог из списка определений (копирует вход)
func NewCatalog(defs []models.ExerciseDefinition) *Catalog {
	c := &Catalog{
		list: make([]models.ExerciseDefinition, len(defs)),
		byID: make(map[string]models.ExerciseDefinition, len(defs)),
	}
	copy(c.list, defs)
	for _, d := range c.list {
		c.byID[d.ID] = d
	}
	return c
}

// All возвращает копию полного списка упражнений
func (c *Catalog) All() []models.ExerciseDefinition {
	out := make([]models.ExerciseDefinition, len(c.list))
	copy(out, c.list)
	return out
}

// ByID возвращает упражнение по идентификатору
func (c *Catalog) ByID(id string) (models.ExerciseDefinition, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// Len возвращает размер каталога
func (c *Catalog) Len() int {
	return len(c.list)
}

func def(id, name string, target models.MuscleGroup, targetMuscle, equipment, level string) models.ExerciseDefinition {
	return models.ExerciseDefinition{
		ID:           id,
		Name:         name,
		Slug:         models.Slugify(name),
		Target:       target,
		TargetMuscle: targetMuscle,
		Equipment:    equipment,
		Level:        level,
		ImageURL:     models.PlaceholderImage(name),
	}
}

// Default возвращает встроенный каталог упражнений
func Default() *Catalog {
	return NewCatalog([]models.ExerciseDefinition{
		// Peito
		def("ch_1", "Supino Reto", models.GroupChest, "peitoral maior", "barra", "beginner"),
		def("ch_2", "Supino Inclinado", models.GroupChest, "peitoral superior", "barra", "intermediate"),
		def("ch_3", "Supino com Halteres", models.GroupChest, "peitoral", "halteres", "beginner"),
		def("ch_4", "Crucifixo Reto", models.GroupChest, "peitoral", "halteres", "beginner"),
		def("ch_5", "Crucifixo Inclinado", models.GroupChest, "peitoral superior", "halteres", "intermediate"),
		def("ch_6", "Peck Deck", models.GroupChest, "peitoral", "máquina", "beginner"),
		def("ch_7", "Flexão de Braço", models.GroupChest, "peitoral", "peso corporal", "beginner"),

		// Costas
		def("bk_1", "Puxada Frente", models.GroupBack, "latíssimo do dorso", "máquina", "beginner"),
		def("bk_2", "Barra Fixa", models.GroupBack, "dorsais", "peso corporal", "intermediate"),
		def("bk_3", "Remada Curvada", models.GroupBack, "dorsais", "barra", "intermediate"),
		def("bk_4", "Remada Unilateral", models.GroupBack, "dorsais", "halter", "beginner"),
		def("bk_5", "Remada Baixa", models.GroupBack, "dorsais", "máquina", "beginner"),
		def("bk_6", "Pulldown", models.GroupBack, "dorsais", "máquina", "beginner"),

		// Ombros
		def("sh_1", "Desenvolvimento com Barra", models.GroupShoulders, "deltoide anterior", "barra", "intermediate"),
		def("sh_2", "Desenvolvimento com Halteres", models.GroupShoulders, "deltoides", "halteres", "beginner"),
		def("sh_3", "Elevação Lateral", models.GroupShoulders, "deltoide lateral", "halteres", "beginner"),
		def("sh_4", "Elevação Frontal", models.GroupShoulders, "deltoide anterior", "barra", "beginner"),
		def("sh_5", "Elevação Posterior", models.GroupShoulders, "deltoide posterior", "halteres", "intermediate"),
		def("sh_6", "Encolhimento", models.GroupShoulders, "trapézio", "halteres", "beginner"),

		// Braços
		def("ar_1", "Rosca Direta", models.GroupArms, "bíceps", "barra", "beginner"),
		def("ar_2", "Rosca Alternada", models.GroupArms, "bíceps", "halteres", "beginner"),
		def("ar_3", "Rosca Martelo", models.GroupArms, "braquial", "halteres", "beginner"),
		def("ar_4", "Rosca Concentrada", models.GroupArms, "bíceps", "halter", "intermediate"),
		def("ar_5", "Rosca Scott", models.GroupArms, "bíceps", "barra", "intermediate"),
		def("ar_6", "Tríceps Testa", models.GroupArms, "tríceps", "barra", "intermediate"),
		def("ar_7", "Tríceps Corda", models.GroupArms, "tríceps", "polia", "beginner"),
		def("ar_8", "Tríceps Mergulho", models.GroupArms, "tríceps", "peso corporal", "beginner"),
		def("ar_9", "Tríceps Francês", models.GroupArms, "tríceps", "halter", "beginner"),

		// Pernas
		def("lg_1", "Agachamento Livre", models.GroupLegs, "quadríceps", "barra", "intermediate"),
		def("lg_2", "Leg Press", models.GroupLegs, "quadríceps", "máquina", "beginner"),
		def("lg_3", "Cadeira Extensora", models.GroupLegs, "quadríceps", "máquina", "beginner"),
		def("lg_4", "Mesa Flexora", models.GroupLegs, "posteriores", "máquina", "beginner"),
		def("lg_5", "Stiff", models.GroupLegs, "posteriores", "barra", "intermediate"),
		def("lg_6", "Panturrilha em Pé", models.GroupLegs, "panturrilhas", "máquina", "beginner"),
		def("lg_7", "Panturrilha Sentado", models.GroupLegs, "panturrilhas", "máquina", "beginner"),

		// Core
		def("cr_1", "Abdominal Reto", models.GroupCore, "abdômen", "peso corporal", "beginner"),
		def("cr_2", "Abdominal Infra", models.GroupCore, "abdômen inferior", "peso corporal", "beginner"),
		def("cr_3", "Prancha", models.GroupCore, "core", "peso corporal", "beginner"),
		def("cr_4", "Elevação de Pernas", models.GroupCore, "abdômen inferior", "barra", "intermediate"),
		def("cr_5", "Abdominal Oblíquo", models.GroupCore, "oblíquos", "peso corporal", "beginner"),
	})
}
