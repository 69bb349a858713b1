package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attCtrl "presensiku_backend/internals/features/attendance/controller"
	middlewares "presensiku_backend/internals/middlewares"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := attCtrl.NewAttendanceController(db)

	g := api.Group("/attendance")
	g.Post("/", ctrl.Create)
	g.Post("/analysis", middlewares.AnalysisRateLimiter(), ctrl.Analyze)
	g.Get("/history/:user_id", ctrl.History)
	g.Get("/summary/:user_id/:year/:month", ctrl.MonthlySummary)
}
