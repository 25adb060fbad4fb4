package bot

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"irontrack/clients/ai"
	"irontrack/internal/config"
	"irontrack/internal/planner"
	"irontrack/internal/repository"
)

// Bot представляет Telegram бота IronTrack
type Bot struct {
	api     *tgbotapi.BotAPI
	repo    *repository.Repository
	planner *planner.Planner
	coach   *ai.Coach
	images  *ai.ImageClient
	config  *config.Config
}

// New создаёт новый экземпляр бота
func New(api *tgbotapi.BotAPI, repo *repository.Repository, p *planner.Planner, cfg *config.Config) *Bot {
	var coach *ai.Coach
	if cfg.GroqAPIKey != "" {
		coach = ai.NewCoach(ai.NewClient(cfg.GroqAPIKey))
	} else {
		log.Println("GROQ_API_KEY não definido: /coach desativado")
	}

	var images *ai.ImageClient
	if cfg.ImageAPIKey != "" {
		images = ai.NewImageClient(cfg.ImageAPIKey, cfg.ImageAPIURL, cfg.ImageAPIModel)
	}

	return &Bot{
		api:     api,
		repo:    repo,
		planner: p,
		coach:   coach,
		images:  images,
		config:  cfg,
	}
}

// Start запускает цикл обработки обновлений
func (b *Bot) Start() error {
	b.startReminder()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.CallbackQuery != nil {
			b.handleCallback(update.CallbackQuery)
			continue
		}
		if update.Message == nil {
			continue
		}

		if update.Message.IsCommand() {
			b.handleCommand(update.Message)
			continue
		}
		b.handleText(update.Message)
	}
	return nil
}
