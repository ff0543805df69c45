package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/gamehub-dev/monopoly-backend/app/models"
	"github.com/gamehub-dev/monopoly-backend/platform/board"
	"github.com/gamehub-dev/monopoly-backend/platform/game"
)

func setupApp() *fiber.App {
	catalog := board.NewCatalog([]models.Property{
		{Id: 7, Name: "Euston Road", Price: 200, Fines: []int{50, 100}},
	})
	engine := game.New(catalog, []models.ChanceCard{{Description: "dividend", Money: 50}})
	sc := NewSessionController(engine, nil)

	app := fiber.New()
	route := app.Group("/session")
	route.Post("/create", sc.CreateSession)
	route.Post("/add-player", sc.AddPlayer)
	route.Get("/:id", sc.GetPlayingField)
	route.Get("/:id/move-status", sc.GetMoveStatus)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s failed: %v", path, err)
	}
	return resp
}

func TestCreateSessionEndpoint(t *testing.T) {
	app := setupApp()

	resp := postJSON(t, app, "/session/create", models.CreateSessionDto{
		SessionId: "S1", PlayerName: "Alice", Colour: "red",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create = %d, want 201", resp.StatusCode)
	}

	var created struct {
		SessionId string        `json:"session_id"`
		Admin     models.Player `json:"admin"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.SessionId != "S1" || created.Admin.Role != models.RoleAdmin {
		t.Errorf("created = %+v", created)
	}

	// Duplicate ids conflict.
	resp = postJSON(t, app, "/session/create", models.CreateSessionDto{
		SessionId: "S1", PlayerName: "Eve",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("duplicate create = %d, want 409", resp.StatusCode)
	}
}

func TestCreateSessionGeneratesIdWhenMissing(t *testing.T) {
	app := setupApp()

	resp := postJSON(t, app, "/session/create", models.CreateSessionDto{PlayerName: "Alice"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create = %d, want 201", resp.StatusCode)
	}
	var created struct {
		SessionId string `json:"session_id"`
	}
	json.NewDecoder(resp.Body).Decode(&created)
	if created.SessionId == "" {
		t.Error("no session id generated")
	}
}

func TestAddPlayerAndPlayingFieldEndpoints(t *testing.T) {
	app := setupApp()
	postJSON(t, app, "/session/create", models.CreateSessionDto{SessionId: "S1", PlayerName: "Alice"})

	resp := postJSON(t, app, "/session/add-player", models.AddPlayerDto{
		SessionId: "S1", PlayerName: "Bob", Colour: "blue",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("add-player = %d, want 200", resp.StatusCode)
	}

	req, _ := http.NewRequest(http.MethodGet, "/session/S1", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("playing field request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("playing field = %d, want 200", resp.StatusCode)
	}
	var field models.PlayingFieldDto
	if err := json.NewDecoder(resp.Body).Decode(&field); err != nil {
		t.Fatalf("decode field: %v", err)
	}
	if len(field.Players) != 2 || field.State != models.StateLobby {
		t.Errorf("field = %+v", field)
	}

	req, _ = http.NewRequest(http.MethodGet, "/session/missing", nil)
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing session = %d, want 404", resp.StatusCode)
	}
}

func TestMoveStatusEndpoint(t *testing.T) {
	app := setupApp()
	postJSON(t, app, "/session/create", models.CreateSessionDto{SessionId: "S1", PlayerName: "Alice"})

	req, _ := http.NewRequest(http.MethodGet, "/session/S1/move-status", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("move-status request failed: %v", err)
	}
	var body struct {
		MoveStatus models.MoveStatus `json:"move_status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode move status: %v", err)
	}
	if body.MoveStatus != models.MoveStart {
		t.Errorf("move status = %s, want START", body.MoveStatus)
	}
}
