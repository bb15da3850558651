package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bimbelku_backend/internals/features/dashboard/controller"
)

func DashboardRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDashboardController(db)

	dashboard := api.Group("/dashboard")
	dashboard.Get("/stats", ctrl.Stats)
	dashboard.Get("/monthly-chart", ctrl.MonthlyChart)
	dashboard.Get("/unpaid-students", ctrl.UnpaidStudents)
	dashboard.Get("/top-groups", ctrl.TopGroups)
}
