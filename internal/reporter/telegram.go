package reporter

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-entrylevel-collector/internal/models"
)

type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(token string, chatID int64) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//bot.Debug = true

	return &TelegramReporter{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

func (t *TelegramReporter) SendRecord(record models.JobRecord) error {
	salary := record.Salary
	if salary == "" {
		salary = "Not listed"
	}

	text := fmt.Sprintf(
		"🔥 <b>%s</b>\n"+
			"🏢 %s\n"+
			"📍 %s\n"+
			"💰 %s\n"+
			"🎯 %s · %s\n",
		record.Title,
		record.Company,
		record.Location,
		salary,
		record.ExperienceLevel,
		record.EmploymentType,
	)
	if len(record.Skills) > 0 {
		text += fmt.Sprintf("🛠 %s\n", strings.Join(record.Skills, ", "))
	}
	text += fmt.Sprintf("🔗 <a href=\"%s\">Apply Now</a>", record.URL)

	return t.SendMessage(text)
}

func (t *TelegramReporter) SendStatus(message string) error {
	return t.SendMessage("ℹ️ " + message)
}
