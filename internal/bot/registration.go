package bot

import (
	"fmt"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// pendingNames хранит чаты, ожидающие ввода имени при регистрации
var pendingNames = struct {
	sync.RWMutex
	chats map[int64]bool
}{chats: make(map[int64]bool)}

func (b *Bot) awaitingName(chatID int64) bool {
	pendingNames.RLock()
	defer pendingNames.RUnlock()
	return pendingNames.chats[chatID]
}

func (b *Bot) setAwaitingName(chatID int64, waiting bool) {
	pendingNames.Lock()
	defer pendingNames.Unlock()
	if waiting {
		pendingNames.chats[chatID] = true
	} else {
		delete(pendingNames.chats, chatID)
	}
}

// handleStart регистрирует нового пользователя или приветствует существующего
func (b *Bot) handleStart(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	u, err := b.repo.User.GetByTelegramID(chatID)
	if err != nil {
		b.sendError(chatID, "Erro ao verificar o registro", err)
		return
	}
	if u != nil {
		b.sendMessage(chatID, fmt.Sprintf("Bem-vindo de volta, %s! 💪 Use /semana para ver sua agenda.", u.Name))
		return
	}

	b.setAwaitingName(chatID, true)
	b.sendMessage(chatID, "Bem-vindo ao *IronTrack*! Como você se chama?")
}

// finishRegistration завершает регистрацию введённым именем
func (b *Bot) finishRegistration(chatID int64, name string) {
	if name == "" {
		b.sendMessage(chatID, "Digite um nome válido.")
		return
	}

	u, err := b.repo.User.Create(chatID, name)
	if err != nil {
		b.sendError(chatID, "Erro ao registrar", err)
		return
	}
	b.setAwaitingName(chatID, false)

	b.sendMessage(chatID, fmt.Sprintf(
		"Pronto, %s! Sua semana de treino já está montada.\nUse /semana para começar.", u.Name))
}
