package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/finance/expenses/controller"
)

func ExpenseRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewExpenseController(db)

	expenses := api.Group("/expenses")
	expenses.Get("/", ctrl.List)
	expenses.Post("/", ctrl.Create)
	expenses.Put("/:id", ctrl.Update)
	expenses.Delete("/:id", ctrl.Delete)
}
