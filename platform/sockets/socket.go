package socket

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/gomodule/redigo/redis"
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/gamehub-dev/monopoly-backend/platform/cache"
	"github.com/gamehub-dev/monopoly-backend/platform/game"
)

// CreateSocketIOServer runs the realtime surface. Every mutating engine
// operation returns an Event; this layer owns delivery, broadcasting it to
// the session's room. Failures go back to the caller only, as error-message.
func CreateSocketIOServer(engine *game.Engine, pool *redis.Pool) {
	server, err := socketio.NewServer(nil)
	if err != nil {
		logrus.WithError(err).Fatal("failed creating socket.io server")
	}

	broadcast := func(ev game.Event) {
		payload, err := json.Marshal(ev.Payload)
		if err != nil {
			logrus.WithError(err).Error("failed marshalling event payload")
			return
		}
		server.BroadcastToRoom("/", ev.Session, ev.Name, string(payload))
	}

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		return nil
	})

	server.OnEvent("/", "join-session", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		sessionId, ok := result["session_id"]
		if !ok {
			s.Emit("error-message", "session_id not passed")
			return
		}

		player, ev, err := engine.AddPlayer(sessionId, result["player_name"], result["colour"])
		if err != nil && !errors.Is(err, game.ErrAlreadyExists) {
			// Session creators joined over REST already; for them joining
			// the room is all that is left.
			s.Emit("error-message", err.Error())
			s.Emit("failed")
			return
		}
		s.Join(sessionId)
		if err == nil {
			broadcast(ev)
			s.Emit("joined-game", player.Name)
		}
		logrus.WithField("session", sessionId).Debugf("%s joined room", s.ID())
	})

	server.OnEvent("/", "start-game", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		_, ev, err := engine.StartGame(result["session_id"])
		if err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		broadcast(ev)
		if payload, ok := ev.Payload.(map[string]string); ok {
			server.BroadcastToRoom("/", ev.Session, game.EventChangeTurn, payload["current_player"])
		}
	})

	server.OnEvent("/", "roll-dice", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		_, ev, err := engine.RollDice(result["session_id"], result["player_name"])
		if err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		broadcast(ev)
	})

	server.OnEvent("/", "buy-property", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		propertyId, err := strconv.Atoi(result["property_id"])
		if err != nil {
			s.Emit("error-message", "invalid property_id")
			return
		}

		_, ev, err := engine.BuyProperty(result["session_id"], result["player_name"], propertyId)
		if err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		broadcast(ev)
	})

	server.OnEvent("/", "pay-rent", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		propertyId, err := strconv.Atoi(result["property_id"])
		if err != nil {
			s.Emit("error-message", "invalid property_id")
			return
		}

		_, ev, err := engine.PayRent(result["session_id"], result["player_name"], propertyId)
		if err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		broadcast(ev)
	})

	server.OnEvent("/", "draw-chance", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		_, ev, err := engine.DrawChance(result["session_id"], result["player_name"])
		if err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		broadcast(ev)
	})

	server.OnEvent("/", "end-turn", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		_, ev, err := engine.AdvanceTurn(result["session_id"], result["player_name"])
		if err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		broadcast(ev)
	})

	server.OnEvent("/", "send-message", func(s socketio.Conn, jsonStr string) {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)

		message, ev, err := engine.AddChatMessage(result["session_id"], result["player_name"], result["body"])
		if err != nil {
			s.Emit("error-message", err.Error())
			return
		}

		conn := pool.Get()
		defer conn.Close()
		entry, _ := json.Marshal(message)
		if err := cache.RPush(fmt.Sprintf("%s.messages", result["session_id"]), entry, conn); err != nil {
			logrus.WithError(err).Error("failed mirroring chat message")
		}
		broadcast(ev)
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		logrus.WithError(e).Error("socket error")
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		for _, room := range s.Rooms() {
			server.BroadcastToRoom("/", room, "player-left")
		}
		s.LeaveAll()
	})

	go server.Serve()
	defer server.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
	})

	addr := os.Getenv("SOCKET_ADDR")
	if addr == "" {
		addr = ":8000"
	}

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", server)
	if err := http.ListenAndServe(addr, c.Handler(mux)); err != nil {
		logrus.WithError(err).Fatal("socket server stopped")
	}
}
