package game

import (
	"fmt"
	"sync"

	"github.com/gamehub-dev/monopoly-backend/app/models"
	"github.com/gamehub-dev/monopoly-backend/platform/board"
)

// Engine is the arena of sessions. The sessions map is guarded by mu;
// everything inside one session is guarded by that session's own lock, so
// operations on different sessions never contend. No operation takes more
// than one session lock.
type Engine struct {
	mu       sync.RWMutex
	sessions map[string]*session

	catalog *board.Catalog
	chance  []models.ChanceCard

	// roll produces one dice pair; swapped out by tests.
	roll func() (int, int)
}

func New(catalog *board.Catalog, chance []models.ChanceCard) *Engine {
	return &Engine{
		sessions: make(map[string]*session),
		catalog:  catalog,
		chance:   chance,
		roll:     func() (int, int) { return board.RollDie(), board.RollDie() },
	}
}

// CreateSession creates a lobby with the admin auto-joined as first player.
func (e *Engine) CreateSession(sessionId, adminName, colour string) (models.Player, Event, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.sessions[sessionId]; ok {
		return models.Player{}, Event{}, fmt.Errorf("session %q: %w", sessionId, ErrAlreadyExists)
	}

	s := newSession(sessionId, e.catalog)
	admin, err := s.addPlayer(adminName, colour, models.RoleAdmin)
	if err != nil {
		return models.Player{}, Event{}, err
	}
	e.sessions[sessionId] = s

	return admin, Event{Session: sessionId, Name: EventPlayerJoin, Payload: admin}, nil
}

// AddPlayer joins a player to an existing session, in the lobby or mid-game.
func (e *Engine) AddPlayer(sessionId, name, colour string) (models.Player, Event, error) {
	s, err := e.session(sessionId)
	if err != nil {
		return models.Player{}, Event{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	player, err := s.addPlayer(name, colour, models.RoleUser)
	if err != nil {
		return models.Player{}, Event{}, err
	}
	s.appendMessage(systemSender, fmt.Sprintf("%s joined the game", name))

	return player, Event{Session: sessionId, Name: EventPlayerJoin, Payload: player}, nil
}

// StartGame moves a lobby into play. The first player by join order takes
// the first turn.
func (e *Engine) StartGame(sessionId string) (models.SessionState, Event, error) {
	s, err := e.session(sessionId)
	if err != nil {
		return "", Event{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == models.StateInProgress {
		return "", Event{}, fmt.Errorf("session %q already started: %w", sessionId, ErrInvalidState)
	}

	s.state = models.StateInProgress
	s.moveStatus = models.MoveStart
	s.currentPlayer = s.order[0]
	s.appendMessage(systemSender, "the game has started")

	payload := map[string]string{"state": string(s.state), "current_player": s.currentPlayer}
	return s.state, Event{Session: sessionId, Name: EventGameStart, Payload: payload}, nil
}

// RollDice rolls two dice for the current player and advances their token
// with wraparound. Legal at START or MIDDLE of the caller's own turn; at END
// the turn must be advanced first.
func (e *Engine) RollDice(sessionId, playerName string) (models.RollDiceResultDto, Event, error) {
	s, err := e.session(sessionId)
	if err != nil {
		return models.RollDiceResultDto{}, Event{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireTurn(playerName); err != nil {
		return models.RollDiceResultDto{}, Event{}, err
	}
	if s.moveStatus == models.MoveEnd {
		return models.RollDiceResultDto{}, Event{}, fmt.Errorf("turn of %q is over in session %q: %w", playerName, sessionId, ErrTurnViolation)
	}

	player, err := s.player(playerName)
	if err != nil {
		return models.RollDiceResultDto{}, Event{}, err
	}

	die1, die2 := e.roll()
	player.Position = board.Advance(player.Position, die1, die2)
	s.moveStatus = models.MoveMiddle
	s.appendMessage(systemSender, fmt.Sprintf("%s rolled %d and %d", playerName, die1, die2))

	result := models.RollDiceResultDto{
		PlayerName:  playerName,
		Die1:        die1,
		Die2:        die2,
		NewPosition: player.Position,
	}
	return result, Event{Session: sessionId, Name: EventDiceRolled, Payload: result}, nil
}

// BuyProperty purchases an unowned property for the current player and ends
// the resolution phase. The fine cached on the property state is the one for
// the level being entered.
func (e *Engine) BuyProperty(sessionId, playerName string, propertyId int) (models.BuyPropertyResultDto, Event, error) {
	s, err := e.session(sessionId)
	if err != nil {
		return models.BuyPropertyResultDto{}, Event{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireTurn(playerName); err != nil {
		return models.BuyPropertyResultDto{}, Event{}, err
	}
	if s.moveStatus != models.MoveMiddle {
		return models.BuyPropertyResultDto{}, Event{}, fmt.Errorf("buy outside resolution phase in session %q: %w", sessionId, ErrTurnViolation)
	}

	state, ok := s.properties[propertyId]
	if !ok {
		return models.BuyPropertyResultDto{}, Event{}, fmt.Errorf("property %d in session %q: %w", propertyId, sessionId, ErrNotFound)
	}
	if state.Level >= 1 {
		return models.BuyPropertyResultDto{}, Event{}, fmt.Errorf("property %d owned by %q: %w", propertyId, state.OwnerName, ErrAlreadyOwned)
	}

	property, ok := e.catalog.Get(propertyId)
	if !ok {
		return models.BuyPropertyResultDto{}, Event{}, fmt.Errorf("property %d in catalog: %w", propertyId, ErrNotFound)
	}
	player, err := s.player(playerName)
	if err != nil {
		return models.BuyPropertyResultDto{}, Event{}, err
	}

	// All validation is done; both mutations land under the same lock so a
	// failure can never leave the ledger half applied.
	state.CurrentFine = property.Fines[state.Level]
	state.Level++
	state.OwnerName = playerName
	player.Balance -= property.Price
	s.moveStatus = models.MoveEnd
	s.appendMessage(systemSender, fmt.Sprintf("%s bought %s", playerName, property.Name))

	result := models.BuyPropertyResultDto{
		PlayerName: playerName,
		NewBalance: player.Balance,
		Property:   *state,
	}
	return result, Event{Session: sessionId, Name: EventPropertyBought, Payload: result}, nil
}

// PayRent transfers the property's current fine from the paying player to
// its owner and ends the resolution phase. The transfer conserves money:
// the payer loses exactly what the owner gains.
func (e *Engine) PayRent(sessionId, payerName string, propertyId int) (models.PayRentResultDto, Event, error) {
	s, err := e.session(sessionId)
	if err != nil {
		return models.PayRentResultDto{}, Event{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireTurn(payerName); err != nil {
		return models.PayRentResultDto{}, Event{}, err
	}
	if s.moveStatus != models.MoveMiddle {
		return models.PayRentResultDto{}, Event{}, fmt.Errorf("rent outside resolution phase in session %q: %w", sessionId, ErrTurnViolation)
	}

	state, ok := s.properties[propertyId]
	if !ok {
		return models.PayRentResultDto{}, Event{}, fmt.Errorf("property %d in session %q: %w", propertyId, sessionId, ErrNotFound)
	}
	if state.OwnerName == "" {
		return models.PayRentResultDto{}, Event{}, fmt.Errorf("property %d is unowned in session %q: %w", propertyId, sessionId, ErrNotFound)
	}

	payer, err := s.player(payerName)
	if err != nil {
		return models.PayRentResultDto{}, Event{}, err
	}
	owner, err := s.player(state.OwnerName)
	if err != nil {
		return models.PayRentResultDto{}, Event{}, err
	}

	payer.Balance -= state.CurrentFine
	owner.Balance += state.CurrentFine
	s.moveStatus = models.MoveEnd
	s.appendMessage(systemSender, fmt.Sprintf("%s paid %d rent to %s", payerName, state.CurrentFine, state.OwnerName))

	result := models.PayRentResultDto{
		PayerName:    payerName,
		PayerBalance: payer.Balance,
		OwnerName:    state.OwnerName,
		OwnerBalance: owner.Balance,
	}
	return result, Event{Session: sessionId, Name: EventRentPaid, Payload: result}, nil
}

// AdvanceTurn hands the turn to the player after previousPlayer in join
// order, wrapping from last back to first, and resets the phase to START.
func (e *Engine) AdvanceTurn(sessionId, previousPlayer string) (string, Event, error) {
	s, err := e.session(sessionId)
	if err != nil {
		return "", Event{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.nextAfter(previousPlayer)
	if err != nil {
		return "", Event{}, err
	}
	s.currentPlayer = next
	s.moveStatus = models.MoveStart

	return next, Event{Session: sessionId, Name: EventChangeTurn, Payload: next}, nil
}

// DrawChance draws a random chance card for the current player during the
// resolution phase, applying its money delta and step delta. The phase stays
// MIDDLE so the landing can still be resolved.
func (e *Engine) DrawChance(sessionId, playerName string) (models.DrawChanceResultDto, Event, error) {
	s, err := e.session(sessionId)
	if err != nil {
		return models.DrawChanceResultDto{}, Event{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireTurn(playerName); err != nil {
		return models.DrawChanceResultDto{}, Event{}, err
	}
	if s.moveStatus != models.MoveMiddle {
		return models.DrawChanceResultDto{}, Event{}, fmt.Errorf("chance outside resolution phase in session %q: %w", sessionId, ErrTurnViolation)
	}

	player, err := s.player(playerName)
	if err != nil {
		return models.DrawChanceResultDto{}, Event{}, err
	}

	card := board.DrawChanceCard(e.chance)
	player.Balance += card.Money
	player.Position = board.Step(player.Position, card.Step)
	s.appendMessage(systemSender, fmt.Sprintf("%s drew a chance card: %s", playerName, card.Description))

	result := models.DrawChanceResultDto{
		PlayerName:  playerName,
		Description: card.Description,
		NewBalance:  player.Balance,
		NewPosition: player.Position,
	}
	return result, Event{Session: sessionId, Name: EventChanceDrawn, Payload: result}, nil
}

// AddChatMessage appends a player's chat message to the session history.
func (e *Engine) AddChatMessage(sessionId, sender, body string) (models.Message, Event, error) {
	s, err := e.session(sessionId)
	if err != nil {
		return models.Message{}, Event{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.player(sender); err != nil {
		return models.Message{}, Event{}, err
	}
	message := s.appendMessage(sender, body)

	return message, Event{Session: sessionId, Name: EventChatMessage, Payload: message}, nil
}

// PlayingField returns a consistent read-only snapshot of the session.
func (e *Engine) PlayingField(sessionId string) (models.PlayingFieldDto, error) {
	s, err := e.session(sessionId)
	if err != nil {
		return models.PlayingFieldDto{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot(), nil
}

// CurrentMoveStatus reports the turn phase of a session.
func (e *Engine) CurrentMoveStatus(sessionId string) (models.MoveStatus, error) {
	s, err := e.session(sessionId)
	if err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.moveStatus, nil
}

func (e *Engine) session(sessionId string) (*session, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	s, ok := e.sessions[sessionId]
	if !ok {
		return nil, fmt.Errorf("session %q: %w", sessionId, ErrNotFound)
	}
	return s, nil
}
