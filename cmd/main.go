package main

import (
	"database/sql"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/lib/pq"

	"irontrack/internal/bot"
	"irontrack/internal/catalog"
	"irontrack/internal/config"
	"irontrack/internal/planner"
	"irontrack/internal/repository"
	"irontrack/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatalf("Ошибка открытия базы данных: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Ошибка подключения к базе данных: %v", err)
	}
	log.Println("База данных подключена")

	repo := repository.New(db)

	cat := seed.Default()
	reconciler := catalog.NewReconciler(repo.Exercise, cat)
	guard := catalog.NewGuard(repo.Exercise, cat)

	p := planner.New(planner.Deps{
		Catalog:     reconciler,
		Guard:       guard,
		Exercises:   repo.Exercise,
		Schedules:   repo.Schedule,
		Workouts:    repo.Workout,
		History:     repo.History,
		Completions: repo.Completion,
	})

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("Ошибка создания бота: %v", err)
	}
	log.Printf("Бот авторизован как @%s", api.Self.UserName)

	b := bot.New(api, repo, p, cfg)
	if err := b.Start(); err != nil {
		log.Fatalf("Ошибка запуска бота: %v", err)
	}
}
