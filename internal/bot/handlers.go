package bot

import (
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handleCommand разбирает команды бота
func (b *Bot) handleCommand(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	switch message.Command() {
	case "start":
		b.handleStart(message)
	case "ajuda", "help":
		b.handleHelp(chatID)
	case "semana":
		b.handleWeek(chatID)
	case "treino":
		b.handleDay(chatID, message.CommandArguments())
	case "titulo":
		b.handleSetTitle(chatID, message.CommandArguments())
	case "exercicios":
		b.handleCatalog(chatID, message.CommandArguments())
	case "add":
		b.handleAddStart(chatID, message.CommandArguments())
	case "ajustar":
		b.handleEditStart(chatID, message.CommandArguments())
	case "remover":
		b.handleRemoveStart(chatID, message.CommandArguments())
	case "concluir":
		b.handleFinish(chatID, message.CommandArguments())
	case "progresso":
		b.handleProgress(chatID)
	case "coach":
		b.handleCoachStart(chatID)
	case "sair":
		b.handleCoachStop(chatID)
	case "imagem":
		b.handleImage(chatID, message.CommandArguments())
	default:
		b.sendMessage(chatID, "Comando desconhecido. Use /ajuda.")
	}
}

// handleText обрабатывает обычный текст: регистрация, диалог с тренером,
// ввод параметров упражнения
func (b *Bot) handleText(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	text := strings.TrimSpace(message.Text)

	if b.awaitingName(chatID) {
		b.finishRegistration(chatID, text)
		return
	}
	if b.pendingAdd(chatID) != nil {
		b.handleAddParams(chatID, text)
		return
	}
	if b.inCoachMode(chatID) {
		b.handleCoachQuestion(chatID, text)
		return
	}

	b.sendMessage(chatID, "Não entendi. Use /ajuda para ver os comandos.")
}

// handleCallback разбирает нажатия inline-кнопок
func (b *Bot) handleCallback(query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID
	data := query.Data

	// убираем "часики" на кнопке, ошибка не критична
	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		log.Printf("Ошибка подтверждения callback: %v", err)
	}

	switch {
	case strings.HasPrefix(data, "addgrp_"):
		b.handleAddGroupChosen(chatID, strings.TrimPrefix(data, "addgrp_"))
	case strings.HasPrefix(data, "addex_"):
		b.handleAddExerciseChosen(chatID, strings.TrimPrefix(data, "addex_"))
	case strings.HasPrefix(data, "ed_"):
		b.handleEditChosen(chatID, strings.TrimPrefix(data, "ed_"))
	case strings.HasPrefix(data, "rm_"):
		b.handleRemoveChosen(chatID, strings.TrimPrefix(data, "rm_"))
	}
}

func (b *Bot) handleHelp(chatID int64) {
	b.sendMessage(chatID, `*IronTrack* — seu diário de treino

/semana — visão geral da semana
/treino <dia> — exercícios do dia
/titulo <dia> <texto> — renomear o dia
/exercicios [grupo] — catálogo de exercícios
/add <dia> — adicionar exercício ao dia
/ajustar <dia> — corrigir séries/carga de um exercício
/remover <dia> — remover exercício do dia
/concluir <dia> — finalizar o treino de hoje
/progresso — progressão de carga e frequência
/coach — conversar com o treinador AI (/sair para encerrar)
/imagem <id> — gerar imagem para um exercício`)
}
