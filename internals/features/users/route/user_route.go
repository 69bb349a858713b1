package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userCtrl "presensiku_backend/internals/features/users/controller"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userCtrl.NewUserController(db)

	g := api.Group("/users")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Put("/:id", ctrl.Update)
}
