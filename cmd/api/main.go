package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glowlabs/salon-backend-go/internal/config"
	appHTTP "github.com/glowlabs/salon-backend-go/internal/handler/http"
	"github.com/glowlabs/salon-backend-go/internal/handler/http/middleware"
	"github.com/glowlabs/salon-backend-go/internal/pkg/cron"
	"github.com/glowlabs/salon-backend-go/internal/pkg/database"
	"github.com/glowlabs/salon-backend-go/internal/pkg/jwt"
	"github.com/glowlabs/salon-backend-go/internal/pkg/sse"
	"github.com/glowlabs/salon-backend-go/internal/repository/postgresql"
	appointmentService "github.com/glowlabs/salon-backend-go/internal/service/appointment"
	clientService "github.com/glowlabs/salon-backend-go/internal/service/client"
	employeeService "github.com/glowlabs/salon-backend-go/internal/service/employee"
	"github.com/glowlabs/salon-backend-go/internal/service/master"
	notificationService "github.com/glowlabs/salon-backend-go/internal/service/notification"
	shiftService "github.com/glowlabs/salon-backend-go/internal/service/shift"
	tenantService "github.com/glowlabs/salon-backend-go/internal/service/tenant"
	waitlistService "github.com/glowlabs/salon-backend-go/internal/service/waitlist"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	redisClient, err := database.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		fmt.Println("Error connecting to redis:", err)
		return
	}

	tenantRepo := postgresql.NewTenantRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	clientRepo := postgresql.NewClientRepository(db)
	serviceRepo := postgresql.NewServiceRepository(db)
	facilityRepo := postgresql.NewFacilityRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	appointmentRepo := postgresql.NewAppointmentRepository(db)
	waitlistRepo := postgresql.NewWaitlistRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	hub := sse.NewHub()

	notifSvc := notificationService.NewNotificationService(notificationRepo, hub, notificationService.Config{})
	waitlistSvc := waitlistService.NewWaitlistService(db, waitlistRepo, appointmentRepo, notifSvc, cfg.Waitlist.ClaimTTL)
	appointmentSvc := appointmentService.NewAppointmentService(
		db,
		appointmentRepo,
		shiftRepo,
		employeeRepo,
		serviceRepo,
		facilityRepo,
		waitlistSvc,
		appointmentService.Policy{
			PreventDoubleBooking: cfg.Appointment.PreventDoubleBooking,
			StrictOvernight:      cfg.Appointment.StrictOvernight,
		},
	)
	tenantSvc := tenantService.NewTenantService(tenantRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	clientSvc := clientService.NewClientService(clientRepo)
	masterSvc := master.NewMasterService(serviceRepo, facilityRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo)

	scheduler := cron.NewScheduler()
	waitlistJobs := cron.NewWaitlistJobs(waitlistRepo)
	waitlistJobs.Register(scheduler, cfg.Waitlist.SweepInterval)
	scheduler.Start()

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		JWTService:          JWTService,
		TenantHandler:       appHTTP.NewTenantHandler(tenantSvc),
		EmployeeHandler:     appHTTP.NewEmployeeHandler(employeeSvc),
		ClientHandler:       appHTTP.NewClientHandler(clientSvc),
		MasterHandler:       appHTTP.NewMasterHandler(masterSvc),
		AuthHandler:         appHTTP.NewAuthHandler(JWTService),
		ShiftHandler:        appHTTP.NewShiftHandler(shiftSvc),
		AppointmentHandler:  appHTTP.NewAppointmentHandler(appointmentSvc),
		WaitlistHandler:     appHTTP.NewWaitlistHandler(waitlistSvc),
		NotificationHandler: appHTTP.NewNotificationHandler(notifSvc, JWTService),
		RedisClient:         redisClient,
		ClaimRateLimit: middleware.RateLimitConfig{
			Enabled:        cfg.RateLimit.Enabled,
			Prefix:         "ratelimit:claim",
			Capacity:       cfg.RateLimit.Capacity,
			RefillTokens:   cfg.RateLimit.RefillTokens,
			RefillInterval: cfg.RateLimit.RefillInterval,
			TTL:            cfg.RateLimit.TTL,
		},
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Shutdown error:", err)
	}
	scheduler.Stop()
	notifSvc.Stop()
}
