package telegram

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"log/slog"

	"etymonabot/app/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/do"
)

// MessageHandler receives one inbound message. command is the bare command
// name without the slash ("" for plain text), text is the command argument
// or the full message text.
type MessageHandler func(userID, chatID int64, command, text string)

type Client struct {
	cfg *config.Config
	bot *tgbotapi.BotAPI

	mutex          sync.RWMutex
	messageHandler MessageHandler
}

func NewClient(di *do.Injector) (*Client, error) {
	cfg := do.MustInvoke[*config.Config](di)

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	slog.Info("Authorized on telegram", "username", bot.Self.UserName)

	return &Client{
		cfg: cfg,
		bot: bot,
	}, nil
}

func (c *Client) SetListener(listener MessageHandler) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.messageHandler = listener
}

// RegisterCommands publishes the bot's command menu.
func (c *Client) RegisterCommands() error {
	commands := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "Приветствие и инструкция"},
		tgbotapi.BotCommand{Command: "explain", Description: "Объяснить слово"},
		tgbotapi.BotCommand{Command: "cards", Description: "Карточки: латинские и греческие числительные"},
		tgbotapi.BotCommand{Command: "next", Description: "Следующая карточка"},
		tgbotapi.BotCommand{Command: "quiz", Description: "Небольшая викторина по словам"},
	)

	if _, err := c.bot.Request(commands); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	return nil
}

// Run long-polls for updates until the context is cancelled. Non-message
// updates are skipped.
func (c *Client) Run(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30

	updates := c.bot.GetUpdatesChan(updateConfig)
	defer c.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}

			msg := update.Message
			if msg == nil || msg.From == nil {
				continue
			}

			command := ""
			text := strings.TrimSpace(msg.Text)
			if msg.IsCommand() {
				command = msg.Command()
				text = strings.TrimSpace(msg.CommandArguments())
			}

			c.mutex.RLock()
			handler := c.messageHandler
			c.mutex.RUnlock()

			if handler == nil {
				continue
			}

			handler(msg.From.ID, msg.Chat.ID, command, text)
		}
	}
}

// SendReply sends plain text to a chat. Non-empty choices become a one-row
// reply keyboard under the message.
func (c *Client) SendReply(chatID int64, text string, choices []string) error {
	msg := tgbotapi.NewMessage(chatID, text)

	if len(choices) > 0 {
		buttons := make([]tgbotapi.KeyboardButton, 0, len(choices))
		for _, choice := range choices {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(choice))
		}

		keyboard := tgbotapi.NewReplyKeyboard(buttons)
		keyboard.ResizeKeyboard = true
		keyboard.OneTimeKeyboard = true
		msg.ReplyMarkup = keyboard
	}

	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}

	return nil
}
