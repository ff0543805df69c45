package models

type SessionState string

const (
	StateLobby      SessionState = "LOBBY"
	StateInProgress SessionState = "IN_PROGRESS"
)

type MoveStatus string

const (
	MoveStart  MoveStatus = "START"
	MoveMiddle MoveStatus = "MIDDLE"
	MoveEnd    MoveStatus = "END"
)

// NoCurrentPlayer is the currentPlayer sentinel before startGame.
const NoCurrentPlayer = "none"

type CreateSessionDto struct {
	SessionId  string `json:"session_id"`
	PlayerName string `json:"player_name"`
	Colour     string `json:"colour"`
}

type AddPlayerDto struct {
	SessionId  string `json:"session_id"`
	PlayerName string `json:"player_name"`
	Colour     string `json:"colour"`
}

type PlayingFieldDto struct {
	SessionId     string          `json:"session_id"`
	State         SessionState    `json:"state"`
	MoveStatus    MoveStatus      `json:"move_status"`
	CurrentPlayer string          `json:"current_player"`
	Players       []Player        `json:"players"`
	Properties    []PropertyState `json:"properties"`
	Messages      []Message       `json:"messages"`
}

type RollDiceResultDto struct {
	PlayerName  string `json:"player_name"`
	Die1        int    `json:"die1"`
	Die2        int    `json:"die2"`
	NewPosition int    `json:"new_position"`
}

type BuyPropertyResultDto struct {
	PlayerName string        `json:"player_name"`
	NewBalance int           `json:"new_balance"`
	Property   PropertyState `json:"property"`
}

type PayRentResultDto struct {
	PayerName    string `json:"payer_name"`
	PayerBalance int    `json:"payer_balance"`
	OwnerName    string `json:"owner_name"`
	OwnerBalance int    `json:"owner_balance"`
}

type DrawChanceResultDto struct {
	PlayerName  string `json:"player_name"`
	Description string `json:"description"`
	NewBalance  int    `json:"new_balance"`
	NewPosition int    `json:"new_position"`
}
