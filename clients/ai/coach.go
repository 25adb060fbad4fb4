package ai

import (
	"fmt"
	"strings"

	"irontrack/internal/models"
)

const coachSystemPrompt = `Você é um personal trainer experiente do aplicativo IronTrack.
Responda em português, de forma curta e prática, usando apenas os dados do aluno
fornecidos no contexto. Se a pergunta não for sobre treino, nutrição básica ou
recuperação, diga educadamente que só ajuda com treinos.`

// recentHistoryLimit — сколько последних записей истории попадает в контекст
const recentHistoryLimit = 20

// Coach отвечает на вопросы пользователя, опираясь на его расписание и историю
type Coach struct {
	client *Client
}

// NewCoach создаёт AI-тренера поверх чат-клиента
func NewCoach(client *Client) *Coach {
	return &Coach{client: client}
}

// Answer отвечает на вопрос с контекстом из данных пользователя
func (c *Coach) Answer(question string, week []models.WeekDayWorkout, history []models.HistoryLog) (string, error) {
	ctx := BuildContext(week, history)
	messages := []Message{
		{Role: "system", Content: coachSystemPrompt},
		{Role: "system", Content: "Dados do aluno:\n" + ctx},
		{Role: "user", Content: question},
	}
	return c.client.Chat(messages, 0.7)
}

// BuildContext собирает компактную текстовую сводку недели и последней истории
func BuildContext(week []models.WeekDayWorkout, history []models.HistoryLog) string {
	var b strings.Builder

	b.WriteString("Agenda semanal:\n")
	for _, day := range week {
		fmt.Fprintf(&b, "- %s (%s):", day.DayName, day.Title)
		if len(day.Exercises) == 0 {
			b.WriteString(" sem exercícios\n")
			continue
		}
		b.WriteString("\n")
		for _, ex := range day.Exercises {
			fmt.Fprintf(&b, "  * %s — %dx%d", ex.Name, ex.Sets, ex.Reps)
			if ex.Weight > 0 {
				fmt.Fprintf(&b, " @ %.1fkg", ex.Weight)
			}
			b.WriteString("\n")
		}
	}

	if len(history) == 0 {
		b.WriteString("Histórico: vazio\n")
		return b.String()
	}

	start := 0
	if len(history) > recentHistoryLimit {
		start = len(history) - recentHistoryLimit
	}
	b.WriteString("Histórico recente:\n")
	for _, h := range history[start:] {
		fmt.Fprintf(&b, "- %s: %s %dx%d @ %.1fkg\n",
			h.Date.Format("2006-01-02"), h.ExerciseName, h.Sets, h.Reps, h.Weight)
	}
	return b.String()
}
