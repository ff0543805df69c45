package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gamehub-dev/monopoly-backend/app/controllers"
)

func SessionRoutes(a *fiber.App, sc *controllers.SessionController) {
	route := a.Group("/session")

	route.Post("/create", sc.CreateSession)
	route.Post("/add-player", sc.AddPlayer)
	route.Get("/:id", sc.GetPlayingField)
	route.Get("/:id/move-status", sc.GetMoveStatus)
	route.Get("/:id/messages", sc.GetMessages)
}
