package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// TelegramService sends admin notifications through the Telegram bot API.
// All methods are no-ops when the bot token or chat ID is not configured, and
// delivery failures are logged, never surfaced to the caller's request.
type TelegramService struct {
	botToken    string
	adminChatID string
	log         zerolog.Logger
}

// NewTelegramService creates a new TelegramService.
func NewTelegramService(botToken, adminChatID string, log zerolog.Logger) *TelegramService {
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
		log:         log,
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage sends a message to the specified chat.
func (s *TelegramService) SendMessage(chatID, text string) error {
	if s.botToken == "" {
		return nil
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)

	msg := telegramMessage{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		s.log.Warn().Err(err).Msg("telegram send failed")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.log.Warn().Int("status", resp.StatusCode).Msg("telegram unexpected status")
		return fmt.Errorf("telegram returned status %d", resp.StatusCode)
	}

	return nil
}

// SendToAdmin sends a message to the admin chat.
func (s *TelegramService) SendToAdmin(text string) error {
	if s.adminChatID == "" {
		return nil
	}
	return s.SendMessage(s.adminChatID, text)
}

// NotifyContactMessage tells the admin chat about a new contact submission.
func (s *TelegramService) NotifyContactMessage(name, email, subject string) error {
	message := fmt.Sprintf(`<b>📨 New contact message</b>
<b>From:</b> %s
<b>Email:</b> %s
<b>Subject:</b> %s`,
		name, email, subject)

	return s.SendToAdmin(strings.TrimSpace(message))
}

// NotifyVerificationSubmitted tells the admin chat that an account submitted
// documents for review.
func (s *TelegramService) NotifyVerificationSubmitted(accountName, role, number string) error {
	message := fmt.Sprintf(`<b>📄 Verification submitted</b>
<b>Account:</b> %s (%s)
<b>Number:</b> %s
Review it in the admin panel.`,
		accountName, role, number)

	return s.SendToAdmin(strings.TrimSpace(message))
}
