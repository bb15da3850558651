package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/academics/groups/controller"
)

func GroupRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewGroupController(db)

	groups := api.Group("/groups")
	groups.Get("/", ctrl.List)
	groups.Post("/", ctrl.Create)
	groups.Get("/:id", ctrl.GetByID)
	groups.Put("/:id", ctrl.Update)
	groups.Delete("/:id", ctrl.Delete)
}
