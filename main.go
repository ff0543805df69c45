package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/sirupsen/logrus"

	"github.com/gamehub-dev/monopoly-backend/app/controllers"
	"github.com/gamehub-dev/monopoly-backend/pkg/routes"
	"github.com/gamehub-dev/monopoly-backend/platform/board"
	"github.com/gamehub-dev/monopoly-backend/platform/cache"
	"github.com/gamehub-dev/monopoly-backend/platform/game"
	"github.com/gamehub-dev/monopoly-backend/platform/logging"
	socket "github.com/gamehub-dev/monopoly-backend/platform/sockets"
)

func main() {
	logging.Init()

	catalog, err := board.LoadCatalog("platform/board/properties.json")
	if err != nil {
		logrus.WithError(err).Fatal("failed loading property catalog")
	}
	chance, err := board.LoadChanceCards("platform/board/chance.json")
	if err != nil {
		logrus.WithError(err).Fatal("failed loading chance deck")
	}

	engine := game.New(catalog, chance)
	pool := cache.CreateRedisPool()
	defer pool.Close()

	app := fiber.New()
	app.Use(cors.New())

	routes.AuthRoutes(app)
	routes.SessionRoutes(app, controllers.NewSessionController(engine, pool))

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: controllers.JWTSecret(),
	}))
	app.Get("/user/cur", controllers.Cur)

	go socket.CreateSocketIOServer(engine, pool)

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":4101"
	}
	if err := app.Listen(addr); err != nil {
		logrus.WithError(err).Fatal("http server stopped")
	}
}
