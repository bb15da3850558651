package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/finance/payments/controller"
)

// Pembayaran immutable: tidak ada PUT.
func PaymentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaymentController(db)

	payments := api.Group("/payments")
	payments.Get("/", ctrl.List)
	payments.Post("/", ctrl.Create)
	payments.Delete("/:id", ctrl.Delete)
}
