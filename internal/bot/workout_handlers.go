package bot

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"irontrack/internal/models"
	"irontrack/internal/seed"
)

// addFlow хранит состояние диалога добавления или правки упражнения
type addFlow struct {
	DayID      string
	ExerciseID string
	ItemID     string // непустой — правка существующей записи плана
}

var addStates = struct {
	sync.RWMutex
	flows map[int64]*addFlow
}{flows: make(map[int64]*addFlow)}

func (b *Bot) pendingAdd(chatID int64) *addFlow {
	addStates.RLock()
	defer addStates.RUnlock()
	return addStates.flows[chatID]
}

func (b *Bot) setPendingAdd(chatID int64, flow *addFlow) {
	addStates.Lock()
	defer addStates.Unlock()
	if flow == nil {
		delete(addStates.flows, chatID)
	} else {
		addStates.flows[chatID] = flow
	}
}

// handleAddStart начинает добавление: выбор группы мышц
func (b *Bot) handleAddStart(chatID int64, args string) {
	u := b.requireUser(chatID)
	if u == nil {
		return
	}

	dayID := parseDay(args)
	if dayID == "" {
		b.sendMessage(chatID, "Uso: /add <dia>. Exemplo: /add segunda")
		return
	}
	b.setPendingAdd(chatID, &addFlow{DayID: dayID})

	groups := []models.MuscleGroup{
		models.GroupChest, models.GroupBack, models.GroupLegs, models.GroupShoulders,
		models.GroupArms, models.GroupCore, models.GroupCardio,
	}
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, g := range groups {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(groupNames[g], "addgrp_"+string(g)),
		))
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("Adicionando em *%s*. Escolha o grupo:", seed.DayName(dayID)))
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	if _, err := b.api.Send(msg); err != nil {
		b.sendError(chatID, "Erro ao montar o teclado", err)
	}
}

// handleAddGroupChosen показывает упражнения выбранной группы
func (b *Bot) handleAddGroupChosen(chatID int64, group string) {
	flow := b.pendingAdd(chatID)
	if flow == nil {
		b.sendMessage(chatID, "Use /add <dia> primeiro.")
		return
	}

	res := b.planner.Exercises()
	var defs []models.ExerciseDefinition
	for _, ex := range res.Exercises {
		if string(ex.Target) == group {
			defs = append(defs, ex)
		}
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })

	if len(defs) == 0 {
		b.sendMessage(chatID, "Nenhum exercício nesse grupo.")
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, ex := range defs {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(ex.Name, "addex_"+ex.ID),
		))
	}

	msg := tgbotapi.NewMessage(chatID, "Escolha o exercício:")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	if _, err := b.api.Send(msg); err != nil {
		b.sendError(chatID, "Erro ao montar o teclado", err)
	}
}

// handleAddExerciseChosen запоминает упражнение и спрашивает параметры
func (b *Bot) handleAddExerciseChosen(chatID int64, exerciseID string) {
	flow := b.pendingAdd(chatID)
	if flow == nil {
		b.sendMessage(chatID, "Use /add <dia> primeiro.")
		return
	}
	flow.ExerciseID = exerciseID
	b.sendMessage(chatID, "Envie séries, repetições e carga: `3 10 60` (use 0 para peso corporal). Notas após a carga são opcionais.")
}

// handleAddParams разбирает "séries reps carga [notas]" и создаёт или
// обновляет запись плана
func (b *Bot) handleAddParams(chatID int64, text string) {
	flow := b.pendingAdd(chatID)
	if flow == nil || (flow.ExerciseID == "" && flow.ItemID == "") {
		b.sendMessage(chatID, "Escolha um exercício primeiro: /add <dia>")
		return
	}
	u := b.requireUser(chatID)
	if u == nil {
		return
	}

	parts := strings.Fields(text)
	if len(parts) < 3 {
		b.sendMessage(chatID, "Formato: `3 10 60` (séries repetições carga)")
		return
	}
	sets, err1 := strconv.Atoi(parts[0])
	reps, err2 := strconv.Atoi(parts[1])
	weight, err3 := strconv.ParseFloat(strings.ReplaceAll(parts[2], ",", "."), 64)
	if err1 != nil || err2 != nil || err3 != nil {
		b.sendMessage(chatID, "Não entendi os números. Formato: `3 10 60`")
		return
	}
	notes := strings.Join(parts[3:], " ")

	if flow.ItemID != "" {
		if err := b.planner.UpdateExercise(u.ID, flow.ItemID, sets, reps, weight, notes); err != nil {
			b.sendError(chatID, "Erro ao atualizar o exercício", err)
			return
		}
		b.setPendingAdd(chatID, nil)
		b.sendMessage(chatID, fmt.Sprintf("✅ Atualizado: %dx%d @ %.1fkg", sets, reps, weight))
		return
	}

	ex, err := b.planner.AddExercise(u.ID, flow.DayID, flow.ExerciseID, sets, reps, weight, notes)
	if err != nil {
		b.sendError(chatID, "Erro ao adicionar o exercício", err)
		return
	}
	b.setPendingAdd(chatID, nil)

	b.sendMessage(chatID, fmt.Sprintf("✅ *%s* adicionado em %s: %dx%d @ %.1fkg",
		ex.Name, seed.DayName(flow.DayID), ex.Sets, ex.Reps, ex.Weight))
}

// handleEditStart показывает упражнения дня с кнопками правки
func (b *Bot) handleEditStart(chatID int64, args string) {
	u := b.requireUser(chatID)
	if u == nil {
		return
	}

	dayID := parseDay(args)
	if dayID == "" {
		b.sendMessage(chatID, "Uso: /ajustar <dia>")
		return
	}

	items, err := b.repo.Workout.ListByDay(u.ID, dayID)
	if err != nil {
		b.sendError(chatID, "Erro ao carregar o plano", err)
		return
	}
	if len(items) == 0 {
		b.sendMessage(chatID, "Esse dia não tem exercícios.")
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, it := range items {
		label := it.ExerciseName
		if label == "" {
			label = "Exercício Removido"
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("✏️ %s (%dx%d @ %.1fkg)", label, it.Sets, it.Reps, it.Weight),
				"ed_"+it.ID),
		))
	}

	msg := tgbotapi.NewMessage(chatID, "Qual exercício ajustar?")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	if _, err := b.api.Send(msg); err != nil {
		b.sendError(chatID, "Erro ao montar o teclado", err)
	}
}

// handleEditChosen запоминает элемент плана и спрашивает новые параметры
func (b *Bot) handleEditChosen(chatID int64, itemID string) {
	b.setPendingAdd(chatID, &addFlow{ItemID: itemID})
	b.sendMessage(chatID, "Envie os novos valores: `3 10 60` (séries repetições carga). Notas após a carga são opcionais.")
}

// handleRemoveStart показывает упражнения дня с кнопками удаления
func (b *Bot) handleRemoveStart(chatID int64, args string) {
	u := b.requireUser(chatID)
	if u == nil {
		return
	}

	dayID := parseDay(args)
	if dayID == "" {
		b.sendMessage(chatID, "Uso: /remover <dia>")
		return
	}

	items, err := b.repo.Workout.ListByDay(u.ID, dayID)
	if err != nil {
		b.sendError(chatID, "Erro ao carregar o plano", err)
		return
	}
	if len(items) == 0 {
		b.sendMessage(chatID, "Esse dia não tem exercícios.")
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, it := range items {
		label := it.ExerciseName
		if label == "" {
			label = "Exercício Removido"
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 "+label, "rm_"+it.ID),
		))
	}

	msg := tgbotapi.NewMessage(chatID, "Qual exercício remover?")
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	if _, err := b.api.Send(msg); err != nil {
		b.sendError(chatID, "Erro ao montar o teclado", err)
	}
}

// handleRemoveChosen удаляет выбранный элемент плана
func (b *Bot) handleRemoveChosen(chatID int64, itemID string) {
	u := b.requireUser(chatID)
	if u == nil {
		return
	}
	if err := b.planner.RemoveExercise(u.ID, itemID); err != nil {
		b.sendError(chatID, "Erro ao remover", err)
		return
	}
	b.sendMessage(chatID, "✅ Removido.")
}

// handleFinish завершает тренировку дня: история + отметка за сегодня
func (b *Bot) handleFinish(chatID int64, args string) {
	u := b.requireUser(chatID)
	if u == nil {
		return
	}

	dayID := parseDay(args)
	if dayID == "" {
		b.sendMessage(chatID, "Uso: /concluir <dia>. Exemplo: /concluir segunda")
		return
	}

	sum, err := b.planner.FinishWorkout(u.ID, dayID, time.Now())
	if err != nil {
		b.sendError(chatID, "Erro ao finalizar o treino", err)
		return
	}

	text := fmt.Sprintf("🏁 Treino de %s finalizado! %d exercícios registrados no histórico.",
		seed.DayName(dayID), sum.Logged)
	if sum.AlreadyDone {
		text += "\n(você já tinha marcado presença hoje)"
	}
	b.sendMessage(chatID, text)
}
