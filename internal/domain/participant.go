package domain

import "time"

type Participant struct {
	ID             string    `json:"id"`
	DisplayName    string    `json:"display_name"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateParticipantInput struct {
	DisplayName    string
	TelegramChatID *int64
}
