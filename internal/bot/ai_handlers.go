package bot

import (
	"encoding/base64"
	"fmt"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"irontrack/internal/models"
)

// coachSessions хранит чаты в режиме разговора с AI-тренером
var coachSessions = struct {
	sync.RWMutex
	chats map[int64]bool
}{chats: make(map[int64]bool)}

func (b *Bot) inCoachMode(chatID int64) bool {
	coachSessions.RLock()
	defer coachSessions.RUnlock()
	return coachSessions.chats[chatID]
}

func (b *Bot) setCoachMode(chatID int64, on bool) {
	coachSessions.Lock()
	defer coachSessions.Unlock()
	if on {
		coachSessions.chats[chatID] = true
	} else {
		delete(coachSessions.chats, chatID)
	}
}

// handleCoachStart включает режим разговора с тренером
func (b *Bot) handleCoachStart(chatID int64) {
	if b.coach == nil {
		b.sendMessage(chatID, "O treinador AI não está configurado neste servidor.")
		return
	}
	if b.requireUser(chatID) == nil {
		return
	}
	b.setCoachMode(chatID, true)
	b.sendMessage(chatID, "🧠 Pode perguntar! Eu conheço sua agenda e seu histórico.\nUse /sair para encerrar.")
}

// handleCoachStop выключает режим разговора
func (b *Bot) handleCoachStop(chatID int64) {
	b.setCoachMode(chatID, false)
	b.sendMessage(chatID, "Conversa encerrada. Bons treinos! 💪")
}

// handleCoachQuestion отвечает на вопрос с контекстом из данных пользователя
func (b *Bot) handleCoachQuestion(chatID int64, question string) {
	u := b.requireUser(chatID)
	if u == nil {
		return
	}

	week, err := b.planner.Schedule(u.ID)
	if err != nil {
		b.sendError(chatID, "Erro ao carregar a agenda", err)
		return
	}
	history, err := b.planner.History(u.ID)
	if err != nil {
		b.sendError(chatID, "Erro ao carregar o histórico", err)
		return
	}

	answer, err := b.coach.Answer(question, week, history)
	if err != nil {
		b.sendError(chatID, "O treinador AI não respondeu", err)
		return
	}
	b.sendMessage(chatID, answer)
}

// handleImage генерирует картинку для упражнения и сохраняет её как миниатюру
func (b *Bot) handleImage(chatID int64, args string) {
	if b.images == nil {
		b.sendMessage(chatID, "A geração de imagens não está configurada neste servidor.")
		return
	}
	if b.requireUser(chatID) == nil {
		return
	}

	exerciseID := strings.TrimSpace(args)
	if exerciseID == "" {
		b.sendMessage(chatID, "Uso: /imagem <id>. Veja os ids em /exercicios.")
		return
	}

	res := b.planner.Exercises()
	var def *models.ExerciseDefinition
	for i := range res.Exercises {
		if res.Exercises[i].ID == exerciseID {
			def = &res.Exercises[i]
			break
		}
	}
	if def == nil {
		b.sendMessage(chatID, "Exercício não encontrado. Veja os ids em /exercicios.")
		return
	}

	b.sendMessage(chatID, fmt.Sprintf("🎨 Gerando imagem para *%s*...", def.Name))

	prompt := fmt.Sprintf(
		"Ilustração limpa e minimalista do exercício de musculação %q (%s), fundo escuro, estilo flat, sem texto",
		def.Name, def.TargetMuscle)
	raw, err := b.images.Generate(prompt)
	if err != nil {
		b.sendError(chatID, "Erro ao gerar a imagem", err)
		return
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: def.Slug + ".png", Bytes: raw})
	photo.Caption = def.Name
	if _, err := b.api.Send(photo); err != nil {
		b.sendError(chatID, "Erro ao enviar a imagem", err)
		return
	}

	// строка могла существовать только во встроенном каталоге, guard внутри
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)
	if err := b.planner.SaveExerciseImage(exerciseID, dataURL); err != nil {
		b.sendError(chatID, "Imagem enviada, mas não foi salva no catálogo", err)
	}
}
