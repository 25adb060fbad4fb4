package bot

import (
	"errors"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"irontrack/internal/models"
	"irontrack/internal/planner"
)

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Ошибка отправки сообщения: %v", err)
	}
}

// sendError логирует ошибку и отправляет пользователю короткое сообщение
func (b *Bot) sendError(chatID int64, userText string, err error) {
	log.Printf("%s: %v", userText, err)
	b.sendMessage(chatID, "⚠️ "+userText)
}

// resolveUser возвращает пользователя чата или ErrUnauthenticated
func (b *Bot) resolveUser(chatID int64) (*models.User, error) {
	u, err := b.repo.User.GetByTelegramID(chatID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, planner.ErrUnauthenticated
	}
	return u, nil
}

// requireUser как resolveUser, но сам отвечает пользователю при отказе
func (b *Bot) requireUser(chatID int64) *models.User {
	u, err := b.resolveUser(chatID)
	if errors.Is(err, planner.ErrUnauthenticated) {
		b.sendMessage(chatID, "Você ainda não está registrado. Use /start primeiro.")
		return nil
	}
	if err != nil {
		b.sendError(chatID, "Erro ao carregar o usuário", err)
		return nil
	}
	return u
}

// dayAliases — португальские названия дней → фиксированные идентификаторы
var dayAliases = map[string]string{
	"segunda": "monday", "segunda-feira": "monday", "monday": "monday",
	"terca": "tuesday", "terça": "tuesday", "terça-feira": "tuesday", "tuesday": "tuesday",
	"quarta": "wednesday", "quarta-feira": "wednesday", "wednesday": "wednesday",
	"quinta": "thursday", "quinta-feira": "thursday", "thursday": "thursday",
	"sexta": "friday", "sexta-feira": "friday", "friday": "friday",
	"sabado": "saturday", "sábado": "saturday", "saturday": "saturday",
	"domingo": "sunday", "sunday": "sunday",
}

// parseDay переводит ввод пользователя в идентификатор дня, "" если не распознан
func parseDay(input string) string {
	return dayAliases[strings.ToLower(strings.TrimSpace(input))]
}

// groupNames — подписи групп мышц для кнопок и списков
var groupNames = map[models.MuscleGroup]string{
	models.GroupChest:     "Peito",
	models.GroupBack:      "Costas",
	models.GroupLegs:      "Pernas",
	models.GroupShoulders: "Ombros",
	models.GroupArms:      "Braços",
	models.GroupCore:      "Abdômen/Core",
	models.GroupCardio:    "Cardio",
	models.GroupOther:     "Outros",
}
