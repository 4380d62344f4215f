package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicbook/config"
	"clinicbook/database"
	appointmentRepo "clinicbook/database/repository/appointment"
	doctorRepo "clinicbook/database/repository/doctor"
	scheduleRepo "clinicbook/database/repository/schedule"
	settingsRepo "clinicbook/database/repository/settings"
	treatmentRepo "clinicbook/database/repository/treatment"
	userRepoPkg "clinicbook/database/repository/user"
	"clinicbook/handlers"
	"clinicbook/middleware"
	"clinicbook/routes"
	"clinicbook/services/booking"
	"clinicbook/services/clinic"
	"clinicbook/services/user"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	docRepo := doctorRepo.NewMongoDoctorRepo()
	treatRepo := treatmentRepo.NewMongoTreatmentRepo()
	schedRepo := scheduleRepo.NewMongoScheduleRepo()
	setRepo := settingsRepo.NewMongoSettingsRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := apptRepo.EnsureIndexes(ctx); err != nil {
			cancel()
			logger.Sugar().Fatalf("main: failed to ensure appointment indexes: %v", err)
		}
		cancel()
	}

	// services.
	settingsService := &clinic.DefaultSettingsService{
		Repo:  setRepo,
		Cache: utils.GetCacheClient(),
	}
	bookingService := &booking.DefaultBookingService{
		Doctors:           docRepo,
		Treatments:        treatRepo,
		Schedules:         schedRepo,
		Appointments:      apptRepo,
		DailyLimits:       settingsService,
		SlotStrideMinutes: config.AppConfig.SlotStrideMinutes,
		MaxCommitAttempts: config.AppConfig.BookingMaxAttempts,
	}
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Auth:     handlers.NewAuthHandler(userService),
		Booking:  handlers.NewBookingHandler(bookingService, apptRepo, treatRepo),
		Staff:    handlers.NewStaffAppointmentHandler(apptRepo),
		Doctor:   handlers.NewDoctorHandler(docRepo),
		Treat:    handlers.NewTreatmentHandler(treatRepo),
		Schedule: handlers.NewScheduleHandler(schedRepo),
		Settings: handlers.NewSettingsHandler(settingsService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
