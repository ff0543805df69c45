package controllers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gomodule/redigo/redis"
	"github.com/sirupsen/logrus"

	"github.com/gamehub-dev/monopoly-backend/app/models"
	"github.com/gamehub-dev/monopoly-backend/pkg"
	"github.com/gamehub-dev/monopoly-backend/platform/cache"
	"github.com/gamehub-dev/monopoly-backend/platform/game"
)

type SessionController struct {
	engine *game.Engine
	pool   *redis.Pool
}

func NewSessionController(engine *game.Engine, pool *redis.Pool) *SessionController {
	return &SessionController{engine: engine, pool: pool}
}

// statusFor maps each engine error kind to a distinct HTTP status, so no
// kind is conflated with another on the wire.
func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, game.ErrAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, game.ErrAlreadyOwned):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, game.ErrInvalidState):
		return fiber.StatusConflict
	case errors.Is(err, game.ErrTurnViolation):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

func fail(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
}

func (sc *SessionController) CreateSession(c *fiber.Ctx) error {
	dto := new(models.CreateSessionDto)
	if err := c.BodyParser(dto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	if dto.SessionId == "" {
		dto.SessionId = pkg.RandString(8)
	}

	admin, _, err := sc.engine.CreateSession(dto.SessionId, dto.PlayerName, dto.Colour)
	if err != nil {
		return fail(c, err)
	}

	logrus.WithField("session", dto.SessionId).Info("session created")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"session_id": dto.SessionId, "admin": admin})
}

func (sc *SessionController) AddPlayer(c *fiber.Ctx) error {
	dto := new(models.AddPlayerDto)
	if err := c.BodyParser(dto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	player, _, err := sc.engine.AddPlayer(dto.SessionId, dto.PlayerName, dto.Colour)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(player)
}

func (sc *SessionController) GetPlayingField(c *fiber.Ctx) error {
	field, err := sc.engine.PlayingField(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(field)
}

func (sc *SessionController) GetMoveStatus(c *fiber.Ctx) error {
	status, err := sc.engine.CurrentMoveStatus(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"move_status": status})
}

// GetMessages serves the chat history mirrored to Redis by the socket layer.
func (sc *SessionController) GetMessages(c *fiber.Ctx) error {
	sessionId := c.Params("id")
	if _, err := sc.engine.CurrentMoveStatus(sessionId); err != nil {
		return fail(c, err)
	}

	conn := sc.pool.Get()
	defer conn.Close()

	raw, err := cache.LRange(fmt.Sprintf("%s.messages", sessionId), conn)
	if err != nil {
		logrus.WithError(err).Error("failed reading chat history")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	messages := make([]json.RawMessage, 0, len(raw))
	for _, entry := range raw {
		messages = append(messages, json.RawMessage(entry))
	}
	return c.JSON(messages)
}
