package bot

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron"

	"irontrack/internal/seed"
)

// startReminder запускает ежедневное напоминание о тренировке по расписанию
// из конфигурации. Пустая строка выключает напоминания.
func (b *Bot) startReminder() {
	if b.config.ReminderSpec == "" {
		log.Println("Напоминания выключены (REMINDER_CRON пуст)")
		return
	}

	c := cron.New()
	if err := c.AddFunc(b.config.ReminderSpec, b.remindAll); err != nil {
		log.Printf("Ошибка расписания напоминаний %q: %v", b.config.ReminderSpec, err)
		return
	}
	c.Start()
	log.Printf("Напоминания запущены: %s", b.config.ReminderSpec)
}

// remindAll обходит пользователей и напоминает тем, у кого на сегодня есть
// план и ещё нет отметки о завершении
func (b *Bot) remindAll() {
	users, err := b.repo.User.All()
	if err != nil {
		log.Printf("Напоминания: ошибка чтения пользователей: %v", err)
		return
	}

	now := time.Now()
	dayID := dayIDForWeekday(now.Weekday())

	for _, u := range users {
		items, err := b.repo.Workout.ListByDay(u.ID, dayID)
		if err != nil {
			log.Printf("Напоминания: ошибка плана пользователя %s: %v", u.ID, err)
			continue
		}
		if len(items) == 0 {
			continue
		}

		done, err := b.repo.Completion.Exists(u.ID, now)
		if err != nil {
			log.Printf("Напоминания: ошибка проверки отметки %s: %v", u.ID, err)
			continue
		}
		if done {
			continue
		}

		text := fmt.Sprintf("💪 Hoje é dia de *%s*: %d exercícios te esperam!\nQuando terminar, use /concluir.",
			seed.DayName(dayID), len(items))
		b.sendMessage(u.TelegramID, text)
	}
}

// dayIDForWeekday переводит time.Weekday в идентификатор слота недели
func dayIDForWeekday(w time.Weekday) string {
	ids := seed.DayIDs()
	// ids идут с понедельника, time.Weekday — с воскресенья
	idx := (int(w) + 6) % 7
	return ids[idx]
}
