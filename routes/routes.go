package routes

import (
	"net/http"
	"time"

	"clinicbook/handlers"
	"clinicbook/middleware"
	"clinicbook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the handlers the route registrars need.
type HandlerBundle struct {
	Auth     *handlers.AuthHandler
	Booking  *handlers.BookingHandler
	Staff    *handlers.StaffAppointmentHandler
	Doctor   *handlers.DoctorHandler
	Treat    *handlers.TreatmentHandler
	Schedule *handlers.ScheduleHandler
	Settings *handlers.SettingsHandler
}

// RegisterUserRoutes registers registration and login endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)
		api.GET("/me", middleware.RequireAuth(), hb.Auth.Me)
	}
}

// RegisterCatalogueRoutes registers the public doctor and treatment listings.
func RegisterCatalogueRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/doctors", hb.Doctor.ListDoctors)
		api.GET("/treatments", hb.Treat.ListTreatments)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
// Slot browsing is public and appointment creation allows anonymous callers
// so the engine can accept guest bookings.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/appointments/available-slots", hb.Booking.GetAvailableSlots)
		api.POST("/appointments", middleware.OptionalAuth(), hb.Booking.CreateAppointment)
		api.GET("/appointments", middleware.RequireAuth(), hb.Booking.GetMyAppointments)
	}
}

// RegisterStaffRoutes sets up endpoints for clinic staff operations.
func RegisterStaffRoutes(r *gin.Engine, hb *HandlerBundle) {
	staff := r.Group("/api/staff")
	{
		staff.Use(middleware.RequireStaff())

		staff.GET("/appointments", hb.Staff.ListAppointments)
		staff.PATCH("/appointments/:id/status", hb.Staff.UpdateAppointmentStatus)

		staff.POST("/doctors", hb.Doctor.CreateDoctor)
		staff.PUT("/doctors/:id", hb.Doctor.UpdateDoctor)

		staff.POST("/treatments", hb.Treat.CreateTreatment)
		staff.PUT("/treatments/:id", hb.Treat.UpdateTreatment)

		staff.GET("/schedules", hb.Schedule.ListDoctorSchedules)
		staff.POST("/schedules", hb.Schedule.CreateSchedule)
		staff.PUT("/schedules/:id", hb.Schedule.UpdateSchedule)
		staff.DELETE("/schedules/:id", hb.Schedule.DeactivateSchedule)
		staff.POST("/schedules/exceptions", hb.Schedule.CreateException)
		staff.DELETE("/schedules/exceptions/:id", hb.Schedule.DeleteException)

		staff.GET("/clinic-settings/daily-limit", hb.Settings.GetDailyLimit)
		staff.PUT("/clinic-settings/daily-limit", hb.Settings.UpdateDailyLimit)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterCatalogueRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterStaffRoutes(r, hb)
	RegisterHealthRoute(r)
}
