package models

type Message struct {
	Id     string `json:"id"`
	Sender string `json:"sender"`
	Body   string `json:"body"`
	SentAt int64  `json:"sent_at"`
}

type SendMessageDto struct {
	SessionId  string `json:"session_id"`
	PlayerName string `json:"player_name"`
	Body       string `json:"body"`
}
