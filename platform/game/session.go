package game

import (
	"fmt"
	"sort"
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"

	"github.com/gamehub-dev/monopoly-backend/app/models"
	"github.com/gamehub-dev/monopoly-backend/platform/board"
)

// InitialBalance is every player's starting money.
const InitialBalance = 1500

const systemSender = "system"

// session is one game, the unit of mutual exclusion. Every mutating
// operation runs the whole read-modify-write under mu; snapshot readers
// take the read side.
type session struct {
	mu sync.RWMutex

	id            string
	state         models.SessionState
	moveStatus    models.MoveStatus
	currentPlayer string

	order      []string // join order doubles as turn order
	players    map[string]*models.Player
	properties map[int]*models.PropertyState
	messages   []models.Message
}

func newSession(id string, catalog *board.Catalog) *session {
	properties := make(map[int]*models.PropertyState)
	for _, property := range catalog.All() {
		properties[property.Id] = &models.PropertyState{PropertyId: property.Id}
	}
	return &session{
		id:            id,
		state:         models.StateLobby,
		moveStatus:    models.MoveStart,
		currentPlayer: models.NoCurrentPlayer,
		players:       make(map[string]*models.Player),
		properties:    properties,
	}
}

// addPlayer registers a player at the end of the turn order.
// Callers hold s.mu.
func (s *session) addPlayer(name, colour string, role models.PlayerRole) (models.Player, error) {
	if _, ok := s.players[name]; ok {
		return models.Player{}, fmt.Errorf("player %q in session %q: %w", name, s.id, ErrAlreadyExists)
	}
	player := &models.Player{
		Name:    name,
		Balance: InitialBalance,
		Colour:  colour,
		Role:    role,
	}
	s.players[name] = player
	s.order = append(s.order, name)
	return *player, nil
}

// player resolves a name or reports ErrNotFound. Callers hold s.mu.
func (s *session) player(name string) (*models.Player, error) {
	player, ok := s.players[name]
	if !ok {
		return nil, fmt.Errorf("player %q in session %q: %w", name, s.id, ErrNotFound)
	}
	return player, nil
}

// requireTurn checks that name is the current player. Callers hold s.mu.
func (s *session) requireTurn(name string) error {
	if s.currentPlayer != name {
		return fmt.Errorf("not %q's turn in session %q: %w", name, s.id, ErrTurnViolation)
	}
	return nil
}

// nextAfter returns the player following previous in the turn order,
// wrapping from last back to first. Callers hold s.mu.
func (s *session) nextAfter(previous string) (string, error) {
	for idx, name := range s.order {
		if name == previous {
			return s.order[(idx+1)%len(s.order)], nil
		}
	}
	return "", fmt.Errorf("player %q in session %q: %w", previous, s.id, ErrNotFound)
}

// appendMessage records a chat-history entry. Callers hold s.mu.
func (s *session) appendMessage(sender, body string) models.Message {
	message := models.Message{
		Id:     uuid.NewV4().String(),
		Sender: sender,
		Body:   body,
		SentAt: time.Now().Unix(),
	}
	s.messages = append(s.messages, message)
	return message
}

// snapshot copies the full field state so readers never observe a torn
// view of a concurrent mutation. Callers hold s.mu (read side suffices).
func (s *session) snapshot() models.PlayingFieldDto {
	players := make([]models.Player, 0, len(s.order))
	for _, name := range s.order {
		players = append(players, *s.players[name])
	}

	properties := make([]models.PropertyState, 0, len(s.properties))
	for _, property := range s.properties {
		properties = append(properties, *property)
	}
	sort.Slice(properties, func(i, j int) bool { return properties[i].PropertyId < properties[j].PropertyId })

	messages := make([]models.Message, len(s.messages))
	copy(messages, s.messages)

	return models.PlayingFieldDto{
		SessionId:     s.id,
		State:         s.state,
		MoveStatus:    s.moveStatus,
		CurrentPlayer: s.currentPlayer,
		Players:       players,
		Properties:    properties,
		Messages:      messages,
	}
}
