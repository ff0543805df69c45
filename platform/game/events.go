package game

// Event is the notification a mutating operation emits for the transport
// layer to broadcast to every participant of the session. The engine only
// produces event data; delivery belongs to the socket layer.
type Event struct {
	Session string
	Name    string
	Payload interface{}
}

// Broadcast event names.
const (
	EventPlayerJoin     = "player-join"
	EventGameStart      = "game-start"
	EventDiceRolled     = "dice-rolled"
	EventPropertyBought = "property-bought"
	EventRentPaid       = "rent-paid"
	EventChangeTurn     = "change-turn"
	EventChanceDrawn    = "chance-drawn"
	EventChatMessage    = "chat-message"
)
