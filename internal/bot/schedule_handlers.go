package bot

import (
	"fmt"
	"strings"

	"irontrack/internal/catalog"
	"irontrack/internal/models"
	"irontrack/internal/seed"
)

// handleWeek показывает обзор недели
func (b *Bot) handleWeek(chatID int64) {
	u := b.requireUser(chatID)
	if u == nil {
		return
	}

	week, err := b.planner.Schedule(u.ID)
	if err != nil {
		// расписание всё равно пришло (каркас недели), показываем с предупреждением
		b.sendError(chatID, "Agenda carregada parcialmente", err)
	}

	var sb strings.Builder
	sb.WriteString("*Sua semana:*\n\n")
	for _, day := range week {
		fmt.Fprintf(&sb, "*%s* — %s", day.DayName, day.Title)
		if n := len(day.Exercises); n > 0 {
			fmt.Fprintf(&sb, " (%d exercícios)", n)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\nUse /treino <dia> para ver os detalhes.")
	b.sendMessage(chatID, sb.String())
}

// handleDay показывает план одного дня
func (b *Bot) handleDay(chatID int64, args string) {
	u := b.requireUser(chatID)
	if u == nil {
		return
	}

	dayID := parseDay(args)
	if dayID == "" {
		b.sendMessage(chatID, "Dia não reconhecido. Exemplo: /treino segunda")
		return
	}

	week, err := b.planner.Schedule(u.ID)
	if err != nil {
		b.sendError(chatID, "Erro ao carregar a agenda", err)
		return
	}

	for _, day := range week {
		if day.DayID != dayID {
			continue
		}
		var sb strings.Builder
		fmt.Fprintf(&sb, "*%s — %s*\n\n", day.DayName, day.Title)
		if len(day.Exercises) == 0 {
			sb.WriteString("Nenhum exercício. Use /add " + strings.ToLower(day.DayName) + " para montar o treino.")
		}
		for i, ex := range day.Exercises {
			fmt.Fprintf(&sb, "%d. *%s* — %dx%d", i+1, ex.Name, ex.Sets, ex.Reps)
			if ex.Weight > 0 {
				fmt.Fprintf(&sb, " @ %.1fkg", ex.Weight)
			}
			if ex.Notes != "" {
				fmt.Fprintf(&sb, "\n   _%s_", ex.Notes)
			}
			sb.WriteString("\n")
		}
		b.sendMessage(chatID, sb.String())
		return
	}
}

// handleSetTitle сохраняет пользовательский заголовок дня
func (b *Bot) handleSetTitle(chatID int64, args string) {
	u := b.requireUser(chatID)
	if u == nil {
		return
	}

	parts := strings.SplitN(strings.TrimSpace(args), " ", 2)
	if len(parts) < 2 {
		b.sendMessage(chatID, "Uso: /titulo <dia> <novo título>")
		return
	}
	dayID := parseDay(parts[0])
	if dayID == "" {
		b.sendMessage(chatID, "Dia não reconhecido. Exemplo: /titulo sexta Posterior e Glúteo")
		return
	}

	if err := b.planner.SetDayTitle(u.ID, dayID, parts[1]); err != nil {
		b.sendError(chatID, "Erro ao salvar o título", err)
		return
	}
	b.sendMessage(chatID, fmt.Sprintf("✅ %s agora é *%s*", seed.DayName(dayID), parts[1]))
}

// handleCatalog показывает каталог упражнений, опционально по группе
func (b *Bot) handleCatalog(chatID int64, args string) {
	res := b.planner.Exercises()

	var filter models.MuscleGroup
	if arg := strings.TrimSpace(args); arg != "" {
		for g, name := range groupNames {
			if strings.EqualFold(name, arg) || strings.EqualFold(string(g), arg) {
				filter = g
			}
		}
		if filter == "" {
			b.sendMessage(chatID, "Grupo não reconhecido. Exemplo: /exercicios peito")
			return
		}
	}

	var sb strings.Builder
	sb.WriteString("*Catálogo de exercícios*\n")
	if res.Source == catalog.SourceSeed && res.RemoteErr != nil {
		sb.WriteString("_⚠️ servidor indisponível, mostrando catálogo local_\n")
	}
	sb.WriteString("\n")

	count := 0
	for _, ex := range res.Exercises {
		if filter != "" && ex.Target != filter {
			continue
		}
		fmt.Fprintf(&sb, "`%s` %s — %s\n", ex.ID, ex.Name, groupNames[ex.Target])
		count++
	}
	if count == 0 {
		sb.WriteString("Nenhum exercício nesse grupo.")
	}
	b.sendMessage(chatID, sb.String())
}
