package bot

import (
	"fmt"
	"strings"
	"time"

	"irontrack/internal/training"
)

// handleProgress показывает прогрессию нагрузки и посещаемость
func (b *Bot) handleProgress(chatID int64) {
	u := b.requireUser(chatID)
	if u == nil {
		return
	}

	history, err := b.planner.History(u.ID)
	if err != nil {
		b.sendError(chatID, "Erro ao carregar o histórico", err)
		return
	}
	completions, err := b.planner.Completions(u.ID)
	if err != nil {
		b.sendError(chatID, "Erro ao carregar as presenças", err)
		return
	}

	if len(history) == 0 && len(completions) == 0 {
		b.sendMessage(chatID, "Ainda não há histórico. Finalize um treino com /concluir.")
		return
	}

	var sb strings.Builder
	sb.WriteString("*Seu progresso*\n\n")

	if progress := training.Progression(history); len(progress) > 0 {
		sb.WriteString("*Progressão de carga:*\n")
		for _, p := range progress {
			fmt.Fprintf(&sb, "• %s: %.1f → %.1fkg", p.ExerciseName, p.FirstWeight, p.LastWeight)
			if p.GainKg != 0 {
				fmt.Fprintf(&sb, " (%+.1fkg, %+.0f%%)", p.GainKg, p.GainPercent)
			}
			fmt.Fprintf(&sb, " em %d sessões\n", p.Sessions)
		}
		fmt.Fprintf(&sb, "\nVolume total: %.0fkg\n", training.TotalVolume(history))
	}

	if len(completions) > 0 {
		sb.WriteString("\n*Frequência:*\n")
		weeks := training.WeeklyAttendance(completions)
		start := 0
		if len(weeks) > 8 {
			start = len(weeks) - 8 // последние два месяца
		}
		for _, w := range weeks[start:] {
			fmt.Fprintf(&sb, "• Semana %d/%d: %d treinos\n", w.Week, w.Year, w.Count)
		}
		if streak := training.Streak(completions, time.Now()); streak > 0 {
			fmt.Fprintf(&sb, "\n🔥 Sequência atual: %d dias\n", streak)
		}
	}

	b.sendMessage(chatID, sb.String())
}
