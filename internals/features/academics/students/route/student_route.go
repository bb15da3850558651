package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/academics/students/controller"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	students := api.Group("/students")
	students.Get("/", ctrl.List)
	students.Post("/", ctrl.Create)
	students.Get("/:id", ctrl.GetByID)
	students.Put("/:id", ctrl.Update)
	students.Delete("/:id", ctrl.Delete)
}
