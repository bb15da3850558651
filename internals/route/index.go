// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "bimbelku_backend/internals/features/admins/auth/route"
	dashboardRoute "bimbelku_backend/internals/features/dashboard/route"
	groupRoute "bimbelku_backend/internals/features/academics/groups/route"
	studentRoute "bimbelku_backend/internals/features/academics/students/route"
	expenseRoute "bimbelku_backend/internals/features/finance/expenses/route"
	paymentRoute "bimbelku_backend/internals/features/finance/payments/route"
	authMW "bimbelku_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PROTECTED (JWT) =====================
	log.Println("[INFO] Setting up protected routes...")
	api := app.Group("/", authMW.AuthMiddleware())

	groupRoute.GroupRoutes(api, db)
	studentRoute.StudentRoutes(api, db)
	paymentRoute.PaymentRoutes(api, db)
	expenseRoute.ExpenseRoutes(api, db)
	dashboardRoute.DashboardRoutes(api, db)
}
